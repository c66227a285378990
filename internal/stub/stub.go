package stub

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/semver/v3"
	"github.com/typeslocal/types-local/internal/branding"
	"github.com/typeslocal/types-local/internal/platform"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// File names inside a stub directory.
const (
	TypingsFile    = "index.d.ts"
	DescriptorFile = "package.json"
)

// DefaultVersion is the placeholder version written to generated descriptors.
const DefaultVersion = "0.0.0"

// Package is the package.json descriptor of a stub.
type Package struct {
	Name        string `json:"name"`
	Typings     string `json:"typings"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// Options tunes generated stubs.
type Options struct {
	// Version is written to package.json. It must be a valid semantic
	// version; empty means DefaultVersion.
	Version string
}

// templateData holds the variables available to stub templates.
type templateData struct {
	Module    string
	Package   string
	Generator string
}

// PackageName returns the descriptor name for module, e.g. "@types/mkdirp".
func PackageName(module string) string {
	return "@types/" + module
}

// NewPackage returns the descriptor generated for module.
func NewPackage(module, version string) *Package {
	if version == "" {
		version = DefaultVersion
	}
	return &Package{
		Name:        PackageName(module),
		Typings:     TypingsFile,
		Version:     version,
		Description: fmt.Sprintf("Local type declarations for %s", module),
	}
}

// Root returns the stub root directory of a project.
func Root(projectRoot string) string {
	return filepath.Join(projectRoot, branding.RootDir())
}

// Dir returns the stub directory for module inside a project.
func Dir(projectRoot, module string) string {
	return filepath.Join(Root(projectRoot), filepath.FromSlash(module))
}

// Create writes the stub package for module, creating the stub root when
// needed. Existing files are overwritten, so repeated calls leave the same
// result.
func Create(projectRoot, module string, opts Options) (*Package, error) {
	if err := ValidateModuleName(module); err != nil {
		return nil, err
	}
	if err := ValidateVersion(opts.Version); err != nil {
		return nil, err
	}

	dir := Dir(projectRoot, module)
	if err := platform.EnsureDir(dir); err != nil {
		return nil, err
	}

	typings, err := renderTypings(module)
	if err != nil {
		return nil, err
	}
	if err := platform.WriteFile(filepath.Join(dir, TypingsFile), typings); err != nil {
		return nil, err
	}

	pkg := NewPackage(module, opts.Version)
	data, err := marshalPackage(pkg)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", DescriptorFile, err)
	}
	if err := platform.WriteFile(filepath.Join(dir, DescriptorFile), data); err != nil {
		return nil, err
	}

	return pkg, nil
}

// Remove deletes the stub directory for module. Scope directories and the stub
// root are removed once they hold no other module, as reported by Modules. Removing a stub that does
// not exist is a no-op.
func Remove(projectRoot, module string) error {
	if err := ValidateModuleName(module); err != nil {
		return err
	}

	dir := Dir(projectRoot, module)
	if _, err := os.Lstat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("checking %s: %w", dir, err)
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing %s: %w", dir, err)
	}

	root := Root(projectRoot)
	if err := platform.PruneEmptyParents(filepath.Dir(dir), root); err != nil {
		return err
	}

	// Empty scope directories are not modules and must not keep the root.
	remaining, err := Modules(projectRoot)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		if err := os.RemoveAll(root); err != nil {
			return fmt.Errorf("removing %s: %w", root, err)
		}
	}
	return nil
}

// Exists reports whether a stub directory exists for module.
func Exists(projectRoot, module string) bool {
	return platform.IsDir(Dir(projectRoot, module))
}

// Read parses the package.json of an existing stub.
func Read(projectRoot, module string) (*Package, error) {
	path := filepath.Join(Dir(projectRoot, module), DescriptorFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &pkg, nil
}

// Modules returns the module names that have a stub directory, sorted.
// Scoped stubs are reported as "@scope/name". A missing stub root yields none.
func Modules(projectRoot string) ([]string, error) {
	root := Root(projectRoot)
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	var modules []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if !strings.HasPrefix(e.Name(), "@") {
			modules = append(modules, e.Name())
			continue
		}

		scoped, err := os.ReadDir(filepath.Join(root, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filepath.Join(root, e.Name()), err)
		}
		for _, s := range scoped {
			if s.IsDir() {
				modules = append(modules, e.Name()+"/"+s.Name())
			}
		}
	}

	sort.Strings(modules)
	return modules, nil
}

// ValidateVersion checks that v is a strict semantic version, as npm requires
// for package.json. Empty stands for DefaultVersion and is accepted.
func ValidateVersion(v string) error {
	if v == "" {
		return nil
	}
	if _, err := semver.StrictNewVersion(v); err != nil {
		return fmt.Errorf("invalid stub version %q: %w", v, err)
	}
	return nil
}

func renderTypings(module string) ([]byte, error) {
	const name = "templates/index.d.ts.tmpl"

	tmpl, err := template.ParseFS(templateFS, name)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	data := templateData{
		Module:    module,
		Package:   PackageName(module),
		Generator: branding.CLIName(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func marshalPackage(pkg *Package) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(pkg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
