package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/typeslocal/types-local/internal/typeslocal"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List local type stubs and path aliases",
	Long:  `List every module that has a stub under types-local/ or an entry in compilerOptions.paths.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	root, opts, err := projectOptions(cmd)
	if err != nil {
		return err
	}

	entries, err := typeslocal.List(root, opts)
	if err != nil {
		return err
	}

	if listJSON {
		if entries == nil {
			entries = []typeslocal.Entry{}
		}
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling list: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No local type stubs.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODULE\tSTUB\tALIAS\tVERSION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Module, yesNo(e.HasStub), aliasColumn(e), dash(e.Version))
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func aliasColumn(e typeslocal.Entry) string {
	if !e.HasAlias {
		return "-"
	}
	return strings.Join(e.Targets, ",")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
