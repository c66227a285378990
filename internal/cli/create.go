package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/typeslocal/types-local/internal/typeslocal"
)

var createStubVersion string

func init() {
	createCmd.Flags().StringVar(&createStubVersion, "stub-version", "", "Version written to the generated package.json (default from config: stub_version)")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:     "create <module>...",
	Aliases: []string{"add"},
	Short:   "Scaffold local type stubs and register their path aliases",
	Long: `Create types-local/<module>/ with an index.d.ts and a package.json named
@types/<module>, and map <module> to it in compilerOptions.paths.

tsconfig.json must already exist (an empty {} is fine).

Examples:
  types-local create mkdirp
  types-local create mkdirp dts-gen @scope/pkg`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, opts, err := projectOptions(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("stub-version") {
			opts.StubVersion = createStubVersion
		}

		result, err := typeslocal.Create(root, args, opts)
		printModules(cmd, "Created", result)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", result.ConfigPath)
		return nil
	},
}

func printModules(cmd *cobra.Command, verb string, result *typeslocal.Result) {
	if result == nil {
		return
	}
	for _, m := range result.Modules {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, m)
	}
}
