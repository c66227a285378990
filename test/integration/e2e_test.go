//go:build integration

package integration_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/typeslocal/types-local/internal/config"
	"github.com/typeslocal/types-local/internal/stub"
	"github.com/typeslocal/types-local/internal/typeslocal"
)

// TestFullFlowCreateCheckRemove walks a project through the whole lifecycle:
// create stubs -> verify files and aliases -> doctor -> remove -> verify cleanup.
func TestFullFlowCreateCheckRemove(t *testing.T) {
	env := setupTestEnv(t, "{}")
	modules := []string{"mkdirp", "dts-gen", "@scope/pkg"}

	// Step 1: Create all stubs in one call.
	result, err := typeslocal.Create(env.ProjectDir, modules, typeslocal.Options{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(result.Modules) != len(modules) {
		t.Fatalf("processed %v, want %v", result.Modules, modules)
	}

	// Step 2: Every module has a stub and an alias.
	tsconfigPath := filepath.Join(env.ProjectDir, "tsconfig.json")
	var cfg struct {
		CompilerOptions struct {
			BaseURL string              `json:"baseUrl"`
			Paths   map[string][]string `json:"paths"`
		} `json:"compilerOptions"`
	}
	if err := json.Unmarshal([]byte(readFile(t, tsconfigPath)), &cfg); err != nil {
		t.Fatalf("tsconfig.json is not valid JSON: %v", err)
	}
	if cfg.CompilerOptions.BaseURL != "." {
		t.Errorf("baseUrl = %q, want %q", cfg.CompilerOptions.BaseURL, ".")
	}
	for _, m := range modules {
		dir := filepath.Join(env.ProjectDir, "types-local", filepath.FromSlash(m))
		assertDirExists(t, dir)
		assertFileExists(t, filepath.Join(dir, "index.d.ts"))
		assertFileContains(t, filepath.Join(dir, "package.json"), `"name": "@types/`+m+`"`)

		targets := cfg.CompilerOptions.Paths[m]
		if len(targets) != 1 || targets[0] != "types-local/"+m {
			t.Errorf("paths[%q] = %v", m, targets)
		}
	}

	// Step 3: The project checks out clean.
	report, err := typeslocal.Check(env.ProjectDir, typeslocal.Options{})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !report.OK() {
		t.Errorf("unexpected problems: %v", report.Problems)
	}

	// Step 4: Remove everything again.
	if _, err := typeslocal.Remove(env.ProjectDir, modules, typeslocal.Options{}); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	assertFileNotExists(t, filepath.Join(env.ProjectDir, "types-local"))
	if got := readFile(t, tsconfigPath); got != "{\n    \"compilerOptions\": {}\n}" {
		t.Errorf("tsconfig.json after remove = %q", got)
	}

	// Unrelated project files survive.
	assertFileExists(t, filepath.Join(env.ProjectDir, "src", "index.ts"))
}

// TestFullFlowUserSettings drives Create and Remove with options resolved from
// ~/.types-local/config.yaml, as the CLI does.
func TestFullFlowUserSettings(t *testing.T) {
	env := setupTestEnv(t, `{"compilerOptions": {"strict": true}}`)
	writeFile(t, filepath.Join(env.HomeDir, ".types-local", "config.yaml"),
		"stub_version: 1.0.0\nprune_compiler_options: true\n")
	if err := config.Load(); err != nil {
		t.Fatalf("config.Load() error: %v", err)
	}

	opts := typeslocal.Options{
		TSConfig:             config.TSConfig(),
		StubVersion:          config.StubVersion(),
		PruneCompilerOptions: config.PruneCompilerOptions(),
	}
	if opts.StubVersion != "1.0.0" || !opts.PruneCompilerOptions {
		t.Fatalf("settings not loaded: %+v", opts)
	}

	if _, err := typeslocal.CreateOne(env.ProjectDir, "mkdirp", opts); err != nil {
		t.Fatalf("CreateOne: %v", err)
	}
	pkg, err := stub.Read(env.ProjectDir, "mkdirp")
	if err != nil {
		t.Fatalf("stub.Read: %v", err)
	}
	if pkg.Version != "1.0.0" {
		t.Errorf("stub version = %q, want %q", pkg.Version, "1.0.0")
	}

	if _, err := typeslocal.RemoveOne(env.ProjectDir, "mkdirp", opts); err != nil {
		t.Fatalf("RemoveOne: %v", err)
	}
	// compilerOptions still holds "strict", so pruning keeps it.
	want := "{\n    \"compilerOptions\": {\n        \"strict\": true\n    }\n}"
	if got := readFile(t, filepath.Join(env.ProjectDir, "tsconfig.json")); got != want {
		t.Errorf("tsconfig.json = %q, want %q", got, want)
	}
}

// TestFullFlowRecreateAfterManualDelete covers a stub deleted by hand: doctor
// reports the dangling alias and a second create repairs it.
func TestFullFlowRecreateAfterManualDelete(t *testing.T) {
	env := setupTestEnv(t, "{}")

	if _, err := typeslocal.CreateOne(env.ProjectDir, "mkdirp", typeslocal.Options{}); err != nil {
		t.Fatalf("CreateOne: %v", err)
	}
	if err := stub.Remove(env.ProjectDir, "mkdirp"); err != nil {
		t.Fatalf("stub.Remove: %v", err)
	}

	report, err := typeslocal.Check(env.ProjectDir, typeslocal.Options{})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(report.Problems) != 1 || report.Problems[0].Kind != typeslocal.OrphanAlias {
		t.Fatalf("problems = %v, want one orphan alias", report.Problems)
	}

	if _, err := typeslocal.CreateOne(env.ProjectDir, "mkdirp", typeslocal.Options{}); err != nil {
		t.Fatalf("CreateOne (repair): %v", err)
	}
	report, err = typeslocal.Check(env.ProjectDir, typeslocal.Options{})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !report.OK() {
		t.Errorf("problems after repair: %v", report.Problems)
	}
}
