package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/decorx/pkg/core/version"
)

var (
	Version   = version.Toolkit
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionComponents bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "decorx v%s\n", Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)

		if versionComponents {
			fmt.Fprintln(out, "  Komponenten:")
			for _, name := range version.Components() {
				fmt.Fprintf(out, "    %-10s %s\n", name, version.ComponentVersion(name))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionComponents, "components", false, "Versionen der Komponenten anzeigen")
}
