package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/decorx/foundation/core/decorator"
)

var extendCmd = &cobra.Command{
	Use:   "extend <ziel> <quelle>...",
	Short: "Kopiert alle Schlüssel der Quellen in das Ziel",
	Long: `Kopiert alle Schlüssel jeder Quelle in das Ziel. Spätere Quellen
überschreiben frühere Werte.

Beispiele:
  decorx extend base.json patch.json
  decorx extend -o yaml base.yaml a.json b.toml
  cat base.json | decorx extend - patch.json`,
	Args: cobra.MinimumNArgs(2),
	RunE: runExtend,
}

var augmentCmd = &cobra.Command{
	Use:   "augment <ziel> <quelle>",
	Short: "Ergänzt fehlende oder null-Werte aus der Quelle",
	Long: `Übernimmt Schlüssel der Quelle nur, wenn das Ziel dort keinen Wert
oder null hat. false und 0 im Ziel bleiben erhalten.

Beispiele:
  decorx augment settings.json defaults.json`,
	Args: cobra.ExactArgs(2),
	RunE: runAugment,
}

var overrideCmd = &cobra.Command{
	Use:   "override <ziel> <quelle>",
	Short: "Überschreibt nur vorhandene Schlüssel",
	Long: `Übernimmt Schlüssel der Quelle nur, wenn das Ziel sie bereits hat.
Neue Schlüssel werden nie angelegt.

Beispiele:
  decorx override settings.toml local.toml`,
	Args: cobra.ExactArgs(2),
	RunE: runOverride,
}

func init() {
	rootCmd.AddCommand(extendCmd)
	rootCmd.AddCommand(augmentCmd)
	rootCmd.AddCommand(overrideCmd)
}

func runExtend(cmd *cobra.Command, args []string) error {
	docs, err := readDocuments(cmd, args)
	if err != nil {
		return err
	}

	timer := logger.StartTimer("extend").WithField("sources", len(docs)-1)
	result := decorator.Decorate(docs[0]).Extend(docs[1:]...).Component()
	timer.Stop()

	return writeDocument(cmd, result)
}

func runAugment(cmd *cobra.Command, args []string) error {
	docs, err := readDocuments(cmd, args)
	if err != nil {
		return err
	}
	return writeDocument(cmd, decorator.Decorate(docs[0]).Augment(docs[1]).Component())
}

func runOverride(cmd *cobra.Command, args []string) error {
	docs, err := readDocuments(cmd, args)
	if err != nil {
		return err
	}
	return writeDocument(cmd, decorator.Decorate(docs[0]).Override(docs[1]).Component())
}
