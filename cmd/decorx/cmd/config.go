package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/decorx/foundation/core/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Konfiguration anzeigen",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Zeigt die wirksame Konfiguration",
	Long: `Gibt die geladene Konfiguration inklusive Standardwerten im
Ausgabeformat aus. Umgebungsvariablen (DECORX_OUTPUT_FORMAT, ...) werden
in der Kopfzeile genannt, wenn sie gesetzt sind.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Listet die durchsuchten Config-Dateien",
	Args:  cobra.NoArgs,
	RunE:  runConfigPaths,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathsCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	errOut := cmd.ErrOrStderr()
	source := cfg.FilePath()
	if source == "" {
		source = "Standardwerte"
	}
	fmt.Fprintln(errOut, styleMuted.Render("# Quelle: "+source))

	for _, key := range []string{config.KeyOutputFormat, config.KeyOutputIndent, config.KeyLogLevel, config.KeyLogFormat} {
		env := cfg.EnvKey(key)
		if v, ok := os.LookupEnv(env); ok {
			fmt.Fprintln(errOut, styleWarning.Render(fmt.Sprintf("# %s=%s", env, v)))
		}
	}

	return writeDocument(cmd, cfg.Data())
}

func runConfigPaths(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, path := range config.ListPossibleConfigFiles(config.DefaultDiscoveryOptions()) {
		marker := styleMuted.Render("-")
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			marker = styleSuccess.Render("✓")
		}
		fmt.Fprintf(out, "%s %s\n", marker, path)
	}
	return nil
}
