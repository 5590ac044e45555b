package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-weierstrass/internal/crosscheck"
)

func newCrossCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crosscheck",
		Short: "Compare the arithmetic against third-party implementations.",
		Long: `Run random field and group operations through this library and through
decred secp256k1, gnark-crypto and edwards25519, and report any disagreement.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := crosscheck.Run(cmd.Context(), crosscheck.Options{
				Rounds:  a.cfg.CrossCheck.Rounds,
				Workers: a.cfg.CrossCheck.Workers,
			}, a.log)
			if err != nil {
				return err
			}
			for _, m := range report.Mismatches {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			if !report.OK() {
				return errors.Errorf("%d of %d checks disagreed", len(report.Mismatches), report.Checks)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d checks\n", report.Checks)
			return nil
		},
	}
	cmd.Flags().Int("rounds", 64, "rounds per oracle")
	cmd.Flags().Int("workers", 4, "concurrent workers")
	return cmd
}
