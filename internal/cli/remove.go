package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/typeslocal/types-local/internal/typeslocal"
)

var removePrune bool

func init() {
	removeCmd.Flags().BoolVar(&removePrune, "prune", false, "Delete compilerOptions when it is left empty (default from config: prune_compiler_options)")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <module>...",
	Aliases: []string{"rm", "uninstall"},
	Short:   "Remove local type stubs and their path aliases",
	Long: `Delete types-local/<module>/ and its compilerOptions.paths entry. The
types-local directory is removed once no stub is left, and paths and baseUrl
are removed once no alias is left. Unknown modules are ignored.

Example:
  types-local remove mkdirp`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, opts, err := projectOptions(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("prune") {
			opts.PruneCompilerOptions = removePrune
		}

		result, err := typeslocal.Remove(root, args, opts)
		printModules(cmd, "Removed", result)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", result.ConfigPath)
		return nil
	},
}
