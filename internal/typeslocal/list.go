package typeslocal

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/typeslocal/types-local/internal/stub"
	"github.com/typeslocal/types-local/internal/tsconfig"
)

// Entry describes one module known to the project, either through its stub
// directory, its path alias, or both.
type Entry struct {
	Module   string   `json:"module"`
	HasStub  bool     `json:"hasStub"`
	HasAlias bool     `json:"hasAlias"`
	Targets  []string `json:"targets,omitempty"`
	Version  string   `json:"version,omitempty"`
}

// Paired reports whether the module has both a stub and an alias.
func (e Entry) Paired() bool { return e.HasStub && e.HasAlias }

// List returns every module found in the stub tree or in
// compilerOptions.paths, sorted by name. Aliases that point elsewhere than
// the stub tree are included too.
func List(projectRoot string, opts Options) ([]Entry, error) {
	cfg, err := tsconfig.Load(tsconfig.Path(projectRoot, opts.TSConfig))
	if err != nil {
		return nil, err
	}
	return collect(projectRoot, cfg)
}

func collect(projectRoot string, cfg *tsconfig.ProjectConfig) ([]Entry, error) {
	byModule := make(map[string]*Entry)
	get := func(m string) *Entry {
		e, ok := byModule[m]
		if !ok {
			e = &Entry{Module: m}
			byModule[m] = e
		}
		return e
	}

	for _, a := range cfg.Aliases() {
		e := get(a.Module)
		e.HasAlias = true
		e.Targets = a.Targets
	}

	modules, err := stub.Modules(projectRoot)
	if err != nil {
		return nil, err
	}
	for _, m := range modules {
		e := get(m)
		e.HasStub = true
		if pkg, err := stub.Read(projectRoot, m); err == nil {
			e.Version = pkg.Version
		}
	}

	entries := make([]Entry, 0, len(byModule))
	for _, e := range byModule {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Module < entries[j].Module })
	return entries, nil
}

// ProblemKind classifies a Check finding.
type ProblemKind string

const (
	OrphanStub        ProblemKind = "orphan-stub"
	OrphanAlias       ProblemKind = "orphan-alias"
	TargetMismatch    ProblemKind = "target-mismatch"
	BaseURLMismatch   ProblemKind = "baseurl-mismatch"
	MissingTypings    ProblemKind = "missing-typings"
	InvalidDescriptor ProblemKind = "invalid-descriptor"
)

// Problem is one inconsistency between the stub tree and tsconfig.json.
type Problem struct {
	Module string      `json:"module,omitempty"`
	Kind   ProblemKind `json:"kind"`
	Detail string      `json:"detail"`
}

// Report is the outcome of Check.
type Report struct {
	Entries  []Entry   `json:"entries"`
	Problems []Problem `json:"problems"`
}

// OK reports whether no problem was found.
func (r *Report) OK() bool { return len(r.Problems) == 0 }

// Check verifies that every stub has exactly the alias Create would write and
// vice versa, that baseUrl is set for them, and that every stub holds a
// typings file and a schema-valid descriptor. Aliases pointing outside the
// stub tree are left alone.
func Check(projectRoot string, opts Options) (*Report, error) {
	cfg, err := tsconfig.Load(tsconfig.Path(projectRoot, opts.TSConfig))
	if err != nil {
		return nil, err
	}

	entries, err := collect(projectRoot, cfg)
	if err != nil {
		return nil, err
	}

	report := &Report{Entries: entries}
	add := func(module string, kind ProblemKind, format string, args ...any) {
		report.Problems = append(report.Problems, Problem{
			Module: module,
			Kind:   kind,
			Detail: fmt.Sprintf(format, args...),
		})
	}

	managed := 0
	for _, e := range entries {
		want := tsconfig.AliasTarget(e.Module)

		switch {
		case e.HasStub && !e.HasAlias:
			add(e.Module, OrphanStub, "stub directory exists but compilerOptions.paths has no entry")
		case e.HasAlias && !e.HasStub:
			if slices.Contains(e.Targets, want) {
				add(e.Module, OrphanAlias, "path alias points at %s, which does not exist", want)
			}
		case e.Paired():
			managed++
			if !slices.Equal(e.Targets, []string{want}) {
				add(e.Module, TargetMismatch, "path alias is %v, want [%s]", e.Targets, want)
			}
		}

		if !e.HasStub {
			continue
		}
		dir := stub.Dir(projectRoot, e.Module)
		if _, err := os.Stat(filepath.Join(dir, stub.TypingsFile)); err != nil {
			add(e.Module, MissingTypings, "%s is missing", stub.TypingsFile)
		}
		result, err := stub.ValidateStub(projectRoot, e.Module)
		switch {
		case err != nil:
			add(e.Module, InvalidDescriptor, "%v", err)
		case !result.Valid:
			for _, issue := range result.Issues {
				add(e.Module, InvalidDescriptor, "%s", issue)
			}
		}
	}

	if managed > 0 {
		co := cfg.CompilerOptions
		if co.BaseURL == nil || *co.BaseURL != tsconfig.DefaultBaseURL {
			add("", BaseURLMismatch, "compilerOptions.baseUrl must be %q for stub aliases to resolve", tsconfig.DefaultBaseURL)
		}
	}

	return report, nil
}
