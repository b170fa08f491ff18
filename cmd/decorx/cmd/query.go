package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/decorx/foundation/core/decorator"
	dxerror "github.com/msto63/decorx/foundation/core/error"
)

var valuesCmd = &cobra.Command{
	Use:   "values <datei>",
	Short: "Gibt die Werte in Einfügereihenfolge aus",
	Long: `Gibt jeden Wert der obersten Ebene als kompaktes JSON in einer eigenen
Zeile aus.

Beispiele:
  decorx values person.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValues,
}

var sizeCmd = &cobra.Command{
	Use:   "size <datei>",
	Short: "Gibt die Anzahl der Schlüssel aus",
	Args:  cobra.ExactArgs(1),
	RunE:  runSize,
}

var hasCmd = &cobra.Command{
	Use:   "has <datei> <schlüssel>...",
	Short: "Prüft, ob alle Schlüssel einen wahren Wert haben",
	Long: `Prüft, ob jeder Schlüssel einen wahren Wert hat. 0, "", false und
null zählen als fehlend.

Exit-Status 0 wenn alle vorhanden, 1 sonst.

Beispiele:
  decorx has person.json id name`,
	Args: cobra.MinimumNArgs(2),
	RunE: runHas,
}

var containsCmd = &cobra.Command{
	Use:   "contains <datei> <wert>",
	Short: "Prüft, ob ein Wert im Dokument vorkommt",
	Long: `Prüft, ob ein Wert der obersten Ebene strikt gleich dem angegebenen
Wert ist. Der Wert wird als JSON-Literal gelesen, sonst als Zeichenkette.

Exit-Status 0 wenn gefunden, 1 sonst.

Beispiele:
  decorx contains person.json 32
  decorx contains person.json jsmith
  decorx contains flags.json true`,
	Args: cobra.ExactArgs(2),
	RunE: runContains,
}

func init() {
	rootCmd.AddCommand(valuesCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(hasCmd)
	rootCmd.AddCommand(containsCmd)
}

func runValues(cmd *cobra.Command, args []string) error {
	o, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, v := range decorator.Decorate(o).Values() {
		line, err := json.Marshal(v)
		if err != nil {
			return dxerror.Wrap(err, "cannot encode value").
				WithCode(dxerror.CodeInvalidFormat).
				WithOperation("cmd.values")
		}
		fmt.Fprintln(out, string(line))
	}
	return nil
}

func runSize(cmd *cobra.Command, args []string) error {
	o, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), decorator.Decorate(o).Size())
	return nil
}

func runHas(cmd *cobra.Command, args []string) error {
	o, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	ok := decorator.Decorate(o).Has(args[1:]...)
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	if !ok {
		return errNegative
	}
	return nil
}

func runContains(cmd *cobra.Command, args []string) error {
	o, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	ok := decorator.Decorate(o).Contains(parseValue(args[1]))
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	if !ok {
		return errNegative
	}
	return nil
}
