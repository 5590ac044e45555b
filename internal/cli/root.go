// Package cli implements the ecc command tree.
package cli

import (
	"context"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-weierstrass/internal/config"
	"github.com/smallyu/go-weierstrass/pkg/curve"
	"github.com/smallyu/go-weierstrass/pkg/integer"
)

// Version is filled in at build time with -ldflags.
var Version string

// app carries state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *logrus.Logger

	// Built once from cfg.Curve; gen is nil without a configured generator.
	curve curve.Curve[integer.Big]
	gen   *curve.Point[integer.Big]
}

// NewRootCommand builds the ecc command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "ecc",
		Short: "Prime field and elliptic curve arithmetic.",
		Long: `Arithmetic over prime fields and short-Weierstrass curves y^2 = x^3 + ax + b.

Negative numbers must follow --, after any flags:

  ecc field pow 17 --prime 31 -- -3
  ecc point mul --prime 223 --b 7 -- -1 47 71`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.SetFlagErrorFunc(flagError)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "increase logging verbosity")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.String("curve", "secp256k1", "named curve")
	pf.String("prime", "", "field prime (overrides --curve)")
	pf.String("a", "", "curve coefficient a")
	pf.String("b", "", "curve coefficient b")
	pf.String("gx", "", "generator x coordinate")
	pf.String("gy", "", "generator y coordinate")

	root.AddCommand(
		newFieldCommand(a),
		newPointCommand(a),
		newCrossCheckCommand(a),
		newVersionCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Log, a.verbose)
	if err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())
	cv, gen, err := cfg.Curve.Build()
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.curve, a.gen = cv, gen
	log.WithField("config", a.configPath).Debug("configuration loaded")
	return nil
}

func newLogger(c config.Log, verbose bool) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	if verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetLevel(level)
	if c.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log, nil
}

// flagError points at -- when pflag mistakes a negative number for a
// shorthand flag.
func flagError(_ *cobra.Command, err error) error {
	const prefix = "unknown shorthand flag: '"
	msg := err.Error()
	if strings.HasPrefix(msg, prefix) && len(msg) > len(prefix) && unicode.IsDigit(rune(msg[len(prefix)])) {
		return errors.Wrap(err, "negative numbers must follow --")
	}
	return err
}

// Execute runs the command tree and prints the error, if any.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln("Error:", err)
		return err
	}
	return nil
}
