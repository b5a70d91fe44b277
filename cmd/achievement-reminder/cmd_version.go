package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.buildTime=...".
var (
	version   = "dev"
	buildTime = "unknown"
)

func initVersionCmd() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: msgs.App.VersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", msgs.App.VersionTitle)
			fmt.Fprintf(out, "%s: %s(%s)\n", msgs.App.VersionLabel, version, buildTime)
			fmt.Fprintf(out, "%s: %s\n", msgs.App.GoVersionLabel, runtime.Version())
			fmt.Fprintf(out, "%s: %s/%s\n", msgs.App.PlatformLabel, runtime.GOOS, runtime.GOARCH)
		},
	}

	rootCmd.AddCommand(versionCmd)
}
