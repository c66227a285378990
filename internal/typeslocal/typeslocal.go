package typeslocal

import (
	"errors"

	"github.com/typeslocal/types-local/internal/stub"
	"github.com/typeslocal/types-local/internal/tsconfig"
)

// Options configures Create and Remove.
type Options struct {
	// TSConfig is the configuration file, relative to the project root unless
	// absolute. Empty means tsconfig.json.
	TSConfig string

	// StubVersion is written to generated package.json files. Empty means
	// stub.DefaultVersion.
	StubVersion string

	// PruneCompilerOptions deletes compilerOptions when removal leaves it
	// empty. By default it is kept as {}.
	PruneCompilerOptions bool
}

// Result describes a completed Create or Remove.
type Result struct {
	ConfigPath string
	Modules    []string
}

// Create scaffolds a stub package and registers a path alias for each module,
// in order. tsconfig.json is read before anything is written; if it cannot be
// read no stub is touched. On a filesystem failure the aliases of the modules
// already scaffolded are still saved and a *FilesystemError is returned.
func Create(projectRoot string, modules []string, opts Options) (*Result, error) {
	names, err := prepare(modules)
	if err != nil {
		return nil, err
	}
	if err := stub.ValidateVersion(opts.StubVersion); err != nil {
		return nil, err
	}

	return apply(projectRoot, names, opts, "create", func(cfg *tsconfig.ProjectConfig, module string) error {
		if _, err := stub.Create(projectRoot, module, stub.Options{Version: opts.StubVersion}); err != nil {
			return err
		}
		tsconfig.AddEntry(cfg, module)
		return nil
	})
}

// CreateOne is Create for a single module.
func CreateOne(projectRoot, module string, opts Options) (*Result, error) {
	return Create(projectRoot, []string{module}, opts)
}

// Remove deletes the stub package and the path alias of each module, in
// order. Modules without a stub or alias are skipped silently.
func Remove(projectRoot string, modules []string, opts Options) (*Result, error) {
	names, err := prepare(modules)
	if err != nil {
		return nil, err
	}

	removeOpts := tsconfig.RemoveOptions{PruneCompilerOptions: opts.PruneCompilerOptions}
	return apply(projectRoot, names, opts, "remove", func(cfg *tsconfig.ProjectConfig, module string) error {
		if err := stub.Remove(projectRoot, module); err != nil {
			return err
		}
		tsconfig.RemoveEntry(cfg, module, removeOpts)
		return nil
	})
}

// RemoveOne is Remove for a single module.
func RemoveOne(projectRoot, module string, opts Options) (*Result, error) {
	return Remove(projectRoot, []string{module}, opts)
}

// prepare validates names and drops repeats, keeping first-seen order.
func prepare(modules []string) ([]string, error) {
	if len(modules) == 0 {
		return nil, ErrNoModules
	}

	seen := make(map[string]bool, len(modules))
	names := make([]string, 0, len(modules))
	for _, m := range modules {
		if err := stub.ValidateModuleName(m); err != nil {
			return nil, err
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		names = append(names, m)
	}
	return names, nil
}

// apply loads the config once, runs step per module, and saves the config
// once, including after a failed step.
func apply(projectRoot string, names []string, opts Options, op string, step func(*tsconfig.ProjectConfig, string) error) (*Result, error) {
	configPath := tsconfig.Path(projectRoot, opts.TSConfig)
	cfg, err := tsconfig.Load(configPath)
	if err != nil {
		return nil, err
	}

	result := &Result{ConfigPath: configPath}
	var stepErr error
	for _, m := range names {
		if err := step(cfg, m); err != nil {
			stepErr = &FilesystemError{Op: op, Module: m, Path: stub.Dir(projectRoot, m), Err: err}
			break
		}
		result.Modules = append(result.Modules, m)
	}

	if len(result.Modules) == 0 && stepErr != nil {
		return result, stepErr
	}

	if err := tsconfig.Save(configPath, cfg); err != nil {
		saveErr := &FilesystemError{Op: "write", Path: configPath, Err: err}
		return result, errors.Join(stepErr, saveErr)
	}
	return result, stepErr
}
