package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dvm/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show dvm version information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	switch format {
	case "pretty":
		fmt.Printf("dvm %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Printf("commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Printf("built:  %s\n", version.BuildDate)
		}
		return nil
	case "json":
		payload := versionPayload{
			Tool:      "dvm",
			Version:   version.Version,
			GitCommit: version.GitCommit,
			BuildDate: version.BuildDate,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
