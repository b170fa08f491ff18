package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/decorx/foundation/core/decorator"
	dxlog "github.com/msto63/decorx/foundation/core/log"
)

var (
	setConst  bool
	setRemove []string
)

var setCmd = &cobra.Command{
	Use:   "set <datei> [schlüssel=wert]...",
	Short: "Setzt oder entfernt Schlüssel und gibt das Dokument aus",
	Long: `Setzt Schlüssel auf der obersten Ebene. Werte werden als JSON-Literal
gelesen, sonst als Zeichenkette. Mit --const werden die Schlüssel als
Konstanten angelegt: der Name wird in Großbuchstaben umgewandelt, der Wert
muss primitiv sein und spätere Zuweisungen werden ignoriert.

Die Datei selbst wird nicht verändert.

Beispiele:
  decorx set person.json age=33 active=true
  decorx set person.json --remove endDate
  decorx set config.json --const version=2 version=3   # bleibt 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().BoolVar(&setConst, "const", false, "Schlüssel als Konstanten anlegen")
	setCmd.Flags().StringSliceVarP(&setRemove, "remove", "r", nil, "Schlüssel entfernen (vor dem Setzen)")
}

func runSet(cmd *cobra.Command, args []string) error {
	o, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	d := decorator.Decorate(o)
	for _, key := range setRemove {
		removed := d.Remove(key)
		logger.Debug("key removed", dxlog.Fields{"key": key, "value": formatValue(removed)})
	}

	for _, arg := range args[1:] {
		key, value, err := parseAssignment(arg)
		if err != nil {
			return err
		}

		if setConst {
			if _, err := d.Constant(key, value); err != nil {
				return err
			}
			continue
		}
		d.Add(key, value)
	}

	return writeDocument(cmd, d.Component())
}
