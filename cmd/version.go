package cmd

import (
	"fmt"
	"io"
	"runtime"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

// buildInfo describes the running binary.
type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
	Target  string `json:"target"`
}

func currentBuildInfo() buildInfo {
	return buildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
		Target:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// writeBuildInfo prints the build details as aligned text or as a JSON object.
func writeBuildInfo(w io.Writer, info buildInfo, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(info)
	}
	_, err := fmt.Fprintf(w, "salesrank CLI\n  Version: %s\n  Commit:  %s\n  Built:   %s\n  Runtime: %s (%s)\n",
		info.Version, info.Commit, info.Date, info.Go, info.Target)
	return err
}

// versionCmd shows the build details of the binary.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of salesrank.",
	Long: `Print the release version, commit, build date, Go runtime and target platform.
Pass --json to get the same details as a JSON object.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		return writeBuildInfo(cmd.OutOrStdout(), currentBuildInfo(), asJSON)
	},
}

func init() {
	versionCmd.Flags().Bool("json", false, "Print version details as JSON")
}
