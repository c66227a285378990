package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "types-local" {
		t.Errorf("CLIName() = %q, want %q", got, "types-local")
	}
	if got := RootDir(); got != "types-local" {
		t.Errorf("RootDir() = %q, want %q", got, "types-local")
	}
	if got := HomeDir(); got != ".types-local" {
		t.Errorf("HomeDir() = %q, want %q", got, ".types-local")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("tsconfig"); got != "TYPES_LOCAL_TSCONFIG" {
		t.Errorf("EnvVar() = %q, want %q", got, "TYPES_LOCAL_TSCONFIG")
	}
}
