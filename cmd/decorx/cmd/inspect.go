package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/msto63/decorx/foundation/core/object"
)

var (
	inspectDump  bool
	inspectWidth int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <datei>",
	Short: "Zeigt Schlüssel, Art und Wert jedes Eintrags",
	Long: `Zeigt für jeden Schlüssel der obersten Ebene die Art (string, number,
boolean, null, object) und den Wert. Mit --dump wird zusätzlich die
Go-Struktur des Dokuments ausgegeben.

Beispiele:
  decorx inspect person.json
  decorx inspect --dump settings.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&inspectDump, "dump", false, "Go-Struktur mit go-spew ausgeben")
	inspectCmd.Flags().IntVar(&inspectWidth, "width", 60, "Maximale Breite der Wertspalte")
}

func runInspect(cmd *cobra.Command, args []string) error {
	o, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleHeader.Render(fmt.Sprintf("%s (%d Schlüssel)", args[0], o.Len())))
	o.Range(func(k string, v any) bool {
		fmt.Fprintf(out, "%s%s%s\n",
			styleKey.Render(k),
			styleKind.Render(object.KindOf(v).String()),
			truncate(formatValue(v), inspectWidth))
		return true
	})

	if inspectDump {
		fmt.Fprintln(out)
		dumper := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
		dumper.Fdump(out, o.ToMap())
	}
	return nil
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 3 || len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + styleMuted.Render("...")
}
