package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bee2lab/btok"
)

// newUnwrapCmd wires the engine's Unwrap operation: read a CVCertificate
// from a file, verify it against an optional trust anchor public key, and
// print its fields.
func newUnwrapCmd() *cobra.Command {
	var (
		certPath string
		pubPath  string
		useGmsm  bool
	)

	cmd := &cobra.Command{
		Use:   "unwrap",
		Short: "Parse and optionally verify a CVCertificate",
		RunE: func(cmd *cobra.Command, args []string) error {
			cert, err := os.ReadFile(certPath)
			if err != nil {
				return fmt.Errorf("reading certificate: %w", err)
			}

			var pub []byte
			if pubPath != "" {
				pub, err = os.ReadFile(pubPath)
				if err != nil {
					return fmt.Errorf("reading public key: %w", err)
				}
			}

			eng := newEngine(useGmsm)
			cvc, err := eng.Unwrap(cert, pub)
			if err != nil {
				return fmt.Errorf("unwrapping certificate: %w", err)
			}

			printCVC(cmd, cvc, len(pub) != 0)
			return nil
		},
	}

	cmd.Flags().StringVar(&certPath, "cert", "", "path to the CVCertificate to parse")
	cmd.Flags().StringVar(&pubPath, "pub", "", "path to a trust-anchor public key (verifies the signature if set)")
	cmd.Flags().BoolVar(&useGmsm, "gmsm", false, "use the gmsm SM2 adapter instead of the default")
	cmd.MarkFlagRequired("cert")

	return cmd
}

func printCVC(cmd *cobra.Command, cvc *btok.CVC, verified bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "authority: %s\n", cvc.Authority)
	fmt.Fprintf(out, "holder:    %s\n", cvc.Holder)
	fmt.Fprintf(out, "from:      %02d%02d%02d\n", cvc.From.Year(), cvc.From.Month(), cvc.From.Day())
	fmt.Fprintf(out, "until:     %02d%02d%02d\n", cvc.Until.Year(), cvc.Until.Month(), cvc.Until.Day())
	fmt.Fprintf(out, "pubkey:    %x\n", cvc.PubKey)
	if len(cvc.HATEid) != 0 {
		fmt.Fprintf(out, "hat eid:   %x\n", cvc.HATEid)
	}
	if len(cvc.HATESign) != 0 {
		fmt.Fprintf(out, "hat esign: %x\n", cvc.HATESign)
	}
	fmt.Fprintf(out, "signature: %x\n", cvc.Sig)
	if verified {
		fmt.Fprintln(out, "signature verified against the supplied public key")
	} else {
		fmt.Fprintln(out, "signature not verified (no --pub given)")
	}
}
