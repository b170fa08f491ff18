package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/decorx/foundation/core/decorator"
	dxlog "github.com/msto63/decorx/foundation/core/log"
)

var compareQuiet bool

var likeCmd = &cobra.Command{
	Use:   "like <form> <dokument>",
	Short: "Prüft, ob ein Dokument die Form erfüllt",
	Long: `Prüft, ob jeder Schlüssel der Form mit einem Wert ungleich null im
Dokument mit einem Wert gleicher Art (oder null) vorkommt. Zusätzliche
Schlüssel im Dokument sind erlaubt.

Exit-Status 0 bei Übereinstimmung, 1 sonst.

Beispiele:
  decorx like person.json candidate.yaml
  decorx like -q shape.json data.json && echo ok`,
	Args: cobra.ExactArgs(2),
	RunE: runLike,
}

var equalsCmd = &cobra.Command{
	Use:   "equals <form> <dokument>",
	Short: "Prüft strukturelle Gleichheit in beide Richtungen",
	Long: `Wie like, zusätzlich muss jeder Schlüssel des Dokuments mit einem Wert
ungleich null in der Form mit gleicher Art vorkommen.

Exit-Status 0 bei Übereinstimmung, 1 sonst.

Beispiele:
  decorx equals a.json b.json`,
	Args: cobra.ExactArgs(2),
	RunE: runEquals,
}

func init() {
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(equalsCmd)

	likeCmd.Flags().BoolVarP(&compareQuiet, "quiet", "q", false, "Nur Exit-Status, keine Ausgabe")
	equalsCmd.Flags().BoolVarP(&compareQuiet, "quiet", "q", false, "Nur Exit-Status, keine Ausgabe")
}

func runLike(cmd *cobra.Command, args []string) error {
	return runCompare(cmd, args, false)
}

func runEquals(cmd *cobra.Command, args []string) error {
	return runCompare(cmd, args, true)
}

func runCompare(cmd *cobra.Command, args []string, both bool) error {
	docs, err := readDocuments(cmd, args)
	if err != nil {
		return err
	}

	spec := decorator.NewSpecification(docs[0])
	ok := spec.Like(docs[1])
	if both {
		ok = spec.Equals(docs[1])
	}

	var mismatches []decorator.Mismatch
	if !ok {
		for _, m := range spec.Mismatches(docs[1]) {
			if both || !m.Reverse {
				mismatches = append(mismatches, m)
			}
		}
	}

	logger.Debug("structural comparison", dxlog.Fields{
		"mode":       cmd.Name(),
		"compatible": ok,
		"mismatches": len(mismatches),
	})

	if !compareQuiet {
		printVerdict(cmd, ok, mismatches)
	}
	if !ok {
		return errNegative
	}
	return nil
}

func printVerdict(cmd *cobra.Command, ok bool, mismatches []decorator.Mismatch) {
	out := cmd.OutOrStdout()
	if ok {
		fmt.Fprintln(out, styleSuccess.Render("✓ kompatibel"))
		return
	}

	fmt.Fprintln(out, styleError.Render("✗ nicht kompatibel"))
	for _, m := range mismatches {
		fmt.Fprintf(out, "  %s %s\n", styleMuted.Render("-"), m.String())
	}
}
