package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bee2lab/btok"
)

// newCheckCmd wires the standalone Check/Check2 validators: read a
// certificate body's fields (via a no-trust-anchor Unwrap) and report
// whether names, dates, and public key pass validation, optionally against
// a parent certificate's validity period.
func newCheckCmd() *cobra.Command {
	var (
		certPath   string
		issuerPath string
		useGmsm    bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a CVCertificate's fields without verifying its signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			cert, err := os.ReadFile(certPath)
			if err != nil {
				return fmt.Errorf("reading certificate: %w", err)
			}

			eng := newEngine(useGmsm)
			cvc, err := eng.Unwrap(cert, nil)
			if err != nil {
				return fmt.Errorf("parsing certificate: %w", err)
			}

			if issuerPath == "" {
				if err := btok.Check(cvc); err != nil {
					return fmt.Errorf("check failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}

			issuerCert, err := os.ReadFile(issuerPath)
			if err != nil {
				return fmt.Errorf("reading issuer certificate: %w", err)
			}
			cvca, err := eng.Unwrap(issuerCert, nil)
			if err != nil {
				return fmt.Errorf("parsing issuer certificate: %w", err)
			}
			if err := btok.Check2(cvc, cvca); err != nil {
				return fmt.Errorf("check2 failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&certPath, "cert", "", "path to the CVCertificate to check")
	cmd.Flags().StringVar(&issuerPath, "issuer-cert", "", "path to the issuer's certificate, for the Check2 issuer-consistency check")
	cmd.Flags().BoolVar(&useGmsm, "gmsm", false, "use the gmsm SM2 adapter instead of the default")
	cmd.MarkFlagRequired("cert")

	return cmd
}
