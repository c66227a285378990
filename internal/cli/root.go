package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/typeslocal/types-local/internal/branding"
	"github.com/typeslocal/types-local/internal/config"
	"github.com/typeslocal/types-local/internal/typeslocal"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Shared flags for all project commands.
var (
	projectDir   string
	tsconfigFile string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&projectDir, "project", "", "Project root containing tsconfig.json (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&tsconfigFile, "tsconfig", "", "Compiler configuration file, relative to the project root (default: tsconfig.json)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds local type-declaration stub packages under types-local/
and keeps the compilerOptions.paths aliases in tsconfig.json in sync with them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// projectOptions resolves the project root and the options for a command.
// Flags win over config values, which win over built-in defaults.
func projectOptions(cmd *cobra.Command) (string, typeslocal.Options, error) {
	root := projectDir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", typeslocal.Options{}, fmt.Errorf("getting current directory: %w", err)
		}
		root = cwd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return "", typeslocal.Options{}, fmt.Errorf("resolving project root: %w", err)
	}

	opts := typeslocal.Options{
		TSConfig:             config.TSConfig(),
		StubVersion:          config.StubVersion(),
		PruneCompilerOptions: config.PruneCompilerOptions(),
	}
	if cmd.Flags().Changed("tsconfig") {
		opts.TSConfig = tsconfigFile
	}
	return root, opts, nil
}
