package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/decorx/foundation/core/decorator"
	dxlog "github.com/msto63/decorx/foundation/core/log"
)

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Berechnet die Differenz zweier Dokumente",
	Long: `Startet mit einer Kopie von a. Für jeden Schlüssel von b wird der
Eintrag entfernt, wenn beide Seiten strikt gleiche Werte haben, sonst
wird der Wert aus b übernommen.

Beispiele:
  decorx diff old.json new.json
  decorx diff -o yaml old.yaml new.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

var intersectCmd = &cobra.Command{
	Use:   "intersect <a> <b>",
	Short: "Gibt die Einträge aus, die in beiden Dokumenten gleich sind",
	Long: `Gibt die Einträge von a aus, deren Wert strikt gleich dem Wert unter
demselben Schlüssel in b ist.

Beispiele:
  decorx intersect a.json b.json`,
	Args: cobra.ExactArgs(2),
	RunE: runIntersect,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(intersectCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	docs, err := readDocuments(cmd, args)
	if err != nil {
		return err
	}

	result := decorator.Decorate(docs[0]).Difference(docs[1])
	logger.Debug("difference computed", dxlog.Field("keys", result.Len()))
	return writeDocument(cmd, result)
}

func runIntersect(cmd *cobra.Command, args []string) error {
	docs, err := readDocuments(cmd, args)
	if err != nil {
		return err
	}

	result := decorator.Decorate(docs[0]).Intersection(docs[1])
	logger.Debug("intersection computed", dxlog.Field("keys", result.Len()))
	return writeDocument(cmd, result)
}
