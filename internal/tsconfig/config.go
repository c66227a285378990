package tsconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
	"github.com/typeslocal/types-local/internal/platform"
)

// FileName is the default project configuration file name.
const FileName = "tsconfig.json"

const (
	keyCompilerOptions = "compilerOptions"
	keyBaseURL         = "baseUrl"
	keyPaths           = "paths"
)

// ProjectConfig is a parsed tsconfig.json. A nil CompilerOptions means the
// key is absent from the file.
type ProjectConfig struct {
	CompilerOptions *CompilerOptions

	fields *hujson.Object
}

// CompilerOptions holds the compiler options managed by this tool. Nil fields
// are absent from the file. Other options are preserved as read.
type CompilerOptions struct {
	BaseURL *string
	Paths   *Paths

	fields *hujson.Object
}

// IsEmpty reports whether no option at all is set.
func (co *CompilerOptions) IsEmpty() bool {
	if co.BaseURL != nil || co.Paths != nil {
		return false
	}
	if co.fields == nil {
		return true
	}
	for _, m := range co.fields.Members {
		if name := memberName(m); name != keyBaseURL && name != keyPaths {
			return false
		}
	}
	return true
}

// Option returns the raw JSON of a compiler option this package does not
// model, such as "strict" or "target".
func (co *CompilerOptions) Option(name string) (json.RawMessage, bool) {
	if name == keyBaseURL || name == keyPaths {
		return nil, false
	}
	v, ok := lookup(co.fields, name)
	if !ok {
		return nil, false
	}
	c := v.Clone()
	c.Minimize()
	return json.RawMessage(c.Pack()), true
}

// Path returns the path to the configuration file inside projectRoot.
func Path(projectRoot, fileName string) string {
	if fileName == "" {
		fileName = FileName
	}
	if filepath.IsAbs(fileName) {
		return fileName
	}
	return filepath.Join(projectRoot, fileName)
}

// Load reads and parses the configuration file at path. A missing file or
// malformed content yields a *ConfigReadError.
func Load(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigReadError{Path: path, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, &ConfigReadError{Path: path, Err: err}
	}
	return cfg, nil
}

// Save writes cfg to path, replacing the file atomically.
func Save(path string, cfg *ProjectConfig) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}
	if err := platform.WriteFile(path, data); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}
	return nil
}

// Parse decodes a tsconfig.json document. Only standard JSON is accepted:
// comments and trailing commas are rejected.
func Parse(data []byte) (*ProjectConfig, error) {
	root, err := hujson.Parse(data)
	if err != nil {
		return nil, err
	}
	if !root.IsStandard() {
		return nil, errNotStandard
	}
	fields, err := asObject(root)
	if err != nil {
		return nil, err
	}

	cfg := &ProjectConfig{fields: fields}
	if v, ok := lookup(fields, keyCompilerOptions); ok {
		co, err := parseCompilerOptions(*v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyCompilerOptions, err)
		}
		cfg.CompilerOptions = co
	}
	return cfg, nil
}

func parseCompilerOptions(v hujson.Value) (*CompilerOptions, error) {
	fields, err := asObject(v)
	if err != nil {
		return nil, err
	}

	co := &CompilerOptions{fields: fields}
	if v, ok := lookup(fields, keyBaseURL); ok {
		base, err := asString(*v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyBaseURL, err)
		}
		co.BaseURL = &base
	}
	if v, ok := lookup(fields, keyPaths); ok {
		paths, err := parsePaths(*v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyPaths, err)
		}
		co.Paths = paths
	}
	return co, nil
}

// Marshal renders cfg with 4-space indentation and no trailing newline.
func Marshal(cfg *ProjectConfig) ([]byte, error) {
	if cfg == nil {
		cfg = &ProjectConfig{}
	}

	root := hujson.Value{Value: cfg.object()}
	root.Minimize()

	var buf bytes.Buffer
	if err := json.Indent(&buf, root.Pack(), "", "    "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// object returns the document as a syntax tree, unknown members in their
// original positions and managed keys appended when new.
func (c *ProjectConfig) object() *hujson.Object {
	obj := cloneObject(c.fields)
	if c.CompilerOptions == nil {
		deleteMember(obj, keyCompilerOptions)
	} else {
		setMember(obj, keyCompilerOptions, c.CompilerOptions.object())
	}
	return obj
}

func (co *CompilerOptions) object() *hujson.Object {
	obj := cloneObject(co.fields)

	if co.BaseURL == nil {
		deleteMember(obj, keyBaseURL)
	} else {
		setMember(obj, keyBaseURL, hujson.String(*co.BaseURL))
	}

	if co.Paths == nil {
		deleteMember(obj, keyPaths)
	} else {
		setMember(obj, keyPaths, co.Paths.object())
	}

	return obj
}
