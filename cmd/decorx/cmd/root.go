package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/decorx/foundation/core/config"
	"github.com/msto63/decorx/foundation/core/document"
	dxerror "github.com/msto63/decorx/foundation/core/error"
	dxlog "github.com/msto63/decorx/foundation/core/log"
	"github.com/msto63/decorx/pkg/core/logging"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string
	outputIndent int
)

// State resolved once per run in PersistentPreRunE
var (
	cfg       *config.Config
	logger    *dxlog.Logger
	outFormat document.Format
	outIndent int
)

// errNegative marks a negative answer of like/equals/has/contains. The
// verdict has already been printed, so Execute reports nothing more.
var errNegative = errors.New("negative result")

var rootCmd = &cobra.Command{
	Use:   "decorx",
	Short: "decorx - Objekt-Dekoratoren für JSON, YAML und TOML",
	Long: `decorx wendet Mixin-, Mengen- und Strukturvergleichsoperationen
auf Dokumente an. Jedes Dokument ist ein geordnetes Objekt aus JSON,
YAML oder TOML; "-" liest von stdin.

Befehle:
  extend, augment, override   Mixins
  diff, intersect             Mengenoperationen
  like, equals                Strukturvergleich
  values, size, has, contains Abfragen
  set, inspect                Bearbeiten und Untersuchen`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints errors to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errNegative) {
		printError(err)
		if logger != nil {
			logger.LogError(err)
		}
	}
	return err
}

// ExitCode maps the result of Execute to a process exit status. Usage
// errors from cobra exit with 2.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNegative):
		return 1
	}
	if dxErr, ok := dxerror.As(err); ok {
		return dxErr.Code().ExitStatus()
	}
	return 2
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: .decorx.toml, ~/.config/decorx/decorx.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Ausgabeformat: json, yaml, toml (default aus Config)")
	rootCmd.PersistentFlags().IntVar(&outputIndent, "indent", -1, "Einrückung der Ausgabe (0 = kompakt bei JSON)")
}

// setup loads the configuration, builds the run logger and resolves the
// output format. Flags win over config values.
func setup(cmd *cobra.Command, args []string) error {
	cfg, logger = nil, nil

	var err error
	if cfgFile != "" {
		cfg, err = config.LoadWithOptions(cfgFile, config.LoadOptions{
			EnvPrefix: config.EnvPrefix,
			Defaults:  config.DefaultValues(),
		})
	} else {
		cfg, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	if err := cfg.Validate(nil).Err(); err != nil {
		return err
	}

	logger, err = logging.FromConfig(cfg, cmd.CommandPath(), verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	name := outputFormat
	if name == "" {
		name = cfg.GetString(config.KeyOutputFormat, "json")
	}
	outFormat, err = document.ParseFormat(name)
	if err != nil {
		return err
	}
	if outFormat == document.FormatAuto {
		outFormat = document.FormatJSON
	}

	outIndent = outputIndent
	if outIndent < 0 {
		outIndent = cfg.GetInt(config.KeyOutputIndent, document.DefaultIndent)
	}

	logger.Debug("run configured", dxlog.Fields{
		"config": cfg.FilePath(),
		"output": outFormat.String(),
		"indent": outIndent,
		"args":   strings.Join(args, " "),
	})
	return nil
}

func printError(err error) {
	fmt.Fprintln(rootCmd.ErrOrStderr(), styleError.Render("Fehler:"), err.Error())
}
