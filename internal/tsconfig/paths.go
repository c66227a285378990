package tsconfig

import (
	"fmt"
	"path"

	"github.com/tailscale/hujson"
	"github.com/typeslocal/types-local/internal/branding"
)

// DefaultBaseURL is the baseUrl written whenever an alias exists. Alias
// targets are resolved relative to it.
const DefaultBaseURL = "."

// Paths is the compilerOptions.paths mapping from module name to target
// locations. Iteration follows insertion order.
type Paths struct {
	order   []string
	targets map[string][]string
}

// Alias is a single paths entry.
type Alias struct {
	Module  string
	Targets []string
}

// NewPaths returns an empty mapping.
func NewPaths() *Paths {
	return &Paths{targets: make(map[string][]string)}
}

func parsePaths(v hujson.Value) (*Paths, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}

	p := NewPaths()
	for _, m := range obj.Members {
		module := memberName(m)
		targets, err := asStrings(m.Value)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", module, err)
		}
		p.Set(module, targets)
	}
	return p, nil
}

// Get returns the targets for module.
func (p *Paths) Get(module string) ([]string, bool) {
	t, ok := p.targets[module]
	return t, ok
}

// Set replaces the targets for module, keeping its position if present.
func (p *Paths) Set(module string, targets []string) {
	if _, ok := p.targets[module]; !ok {
		p.order = append(p.order, module)
	}
	p.targets[module] = append([]string(nil), targets...)
}

// Delete removes module. It reports whether the entry existed.
func (p *Paths) Delete(module string) bool {
	if _, ok := p.targets[module]; !ok {
		return false
	}
	delete(p.targets, module)
	for i, m := range p.order {
		if m == module {
			p.order = append(p.order[:i:i], p.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (p *Paths) Len() int { return len(p.order) }

// Aliases returns the entries in order.
func (p *Paths) Aliases() []Alias {
	out := make([]Alias, 0, len(p.order))
	for _, m := range p.order {
		out = append(out, Alias{Module: m, Targets: append([]string(nil), p.targets[m]...)})
	}
	return out
}

func (p *Paths) object() *hujson.Object {
	obj := &hujson.Object{}
	for _, m := range p.order {
		setMember(obj, m, stringArray(p.targets[m]))
	}
	return obj
}

// Aliases returns the paths entries of cfg, or nil when there are none.
func (c *ProjectConfig) Aliases() []Alias {
	if c.CompilerOptions == nil || c.CompilerOptions.Paths == nil {
		return nil
	}
	return c.CompilerOptions.Paths.Aliases()
}

// AliasTarget returns the path alias target for a module's stub directory,
// e.g. "types-local/mkdirp". Targets always use forward slashes.
func AliasTarget(module string) string {
	return path.Join(branding.RootDir(), module)
}

// AddEntry registers the path alias for module, creating compilerOptions and
// paths as needed and pointing baseUrl at the project root. Any previous
// targets for module are replaced.
func AddEntry(cfg *ProjectConfig, module string) *ProjectConfig {
	if cfg.CompilerOptions == nil {
		cfg.CompilerOptions = &CompilerOptions{}
	}
	co := cfg.CompilerOptions

	base := DefaultBaseURL
	co.BaseURL = &base

	if co.Paths == nil {
		co.Paths = NewPaths()
	}
	co.Paths.Set(module, []string{AliasTarget(module)})

	return cfg
}

// RemoveOptions controls pruning in RemoveEntry.
type RemoveOptions struct {
	// PruneCompilerOptions deletes compilerOptions once it is left empty.
	// When false an empty compilerOptions object stays in the file.
	PruneCompilerOptions bool
}

// RemoveEntry deletes the path alias for module. When no alias remains, the
// paths key and the baseUrl set by AddEntry are removed as well. It is a no-op
// if module has no alias.
func RemoveEntry(cfg *ProjectConfig, module string, opts RemoveOptions) *ProjectConfig {
	co := cfg.CompilerOptions
	if co == nil || co.Paths == nil {
		return cfg
	}
	if !co.Paths.Delete(module) {
		return cfg
	}
	if co.Paths.Len() > 0 {
		return cfg
	}

	co.Paths = nil
	if co.BaseURL != nil && *co.BaseURL == DefaultBaseURL {
		co.BaseURL = nil
	}
	if opts.PruneCompilerOptions && co.IsEmpty() {
		cfg.CompilerOptions = nil
	}
	return cfg
}
