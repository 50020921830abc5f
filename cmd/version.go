package cmd

import (
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records build metadata injected through ldflags in main
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

func userAgent() string {
	return "tmdb-cli/" + version
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("tmdb: %s\n", version)
			cmd.Printf("Build Time: %s\n", buildTime)
		},
	}
}
