package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/typeslocal/types-local/internal/branding"
	"github.com/typeslocal/types-local/internal/config"
)

var (
	versionShort bool
	versionJSON  bool
)

// versionInfo is the --json output: build info plus the settings that shape
// generated stubs.
type versionInfo struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	Date        string `json:"date"`
	StubRoot    string `json:"stub_root"`
	StubVersion string `json:"stub_version"`
	ConfigFile  string `json:"config_file"`
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		if versionJSON {
			info := versionInfo{
				Version:     buildVersion,
				Commit:      buildCommit,
				Date:        buildDate,
				StubRoot:    branding.RootDir(),
				StubVersion: config.StubVersion(),
				ConfigFile:  config.FilePath(),
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
		fmt.Fprintf(out, "stubs: %s/<module> (version %s)\n", branding.RootDir(), config.StubVersion())
		return nil
	},
}
