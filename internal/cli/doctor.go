package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/typeslocal/types-local/internal/typeslocal"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that stubs and path aliases agree",
	Long: `Report stub directories without a path alias, aliases into types-local/
without a stub, aliases with unexpected targets, a baseUrl other than ".", and
stubs with a missing index.d.ts or an invalid package.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, opts, err := projectOptions(cmd)
		if err != nil {
			return err
		}

		report, err := typeslocal.Check(root, opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if report.OK() {
			fmt.Fprintf(out, "  [OK] %d module(s), stubs and aliases in sync\n", len(report.Entries))
			return nil
		}

		for _, p := range report.Problems {
			if p.Module == "" {
				fmt.Fprintf(out, "  [!!] %s: %s\n", p.Kind, p.Detail)
				continue
			}
			fmt.Fprintf(out, "  [!!] %s %s: %s\n", p.Module, p.Kind, p.Detail)
		}
		return fmt.Errorf("%d problem(s) found", len(report.Problems))
	},
}
