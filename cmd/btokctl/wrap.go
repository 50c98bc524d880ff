package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bee2lab/btok"
	"github.com/bee2lab/btok/internal/gmsmadapter"
)

// newEngine builds an Engine with the default bign adapter, or the gmsm
// adapter when useGmsm is set.
func newEngine(useGmsm bool) *btok.Engine {
	if useGmsm {
		return btok.NewEngine(btok.WithAdapter(gmsmadapter.New()))
	}
	return btok.NewEngine()
}

// newWrapCmd wires the engine's Wrap operation: build an unsigned CVC from
// flags, read the signer's private key from a file, write the signed
// CVCertificate DER encoding to a file.
func newWrapCmd() *cobra.Command {
	var (
		authority, holder string
		from, until       string
		privPath          string
		outPath           string
		useGmsm           bool
	)

	cmd := &cobra.Command{
		Use:   "wrap",
		Short: "Build and sign a CVCertificate",
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := os.ReadFile(privPath)
			if err != nil {
				return fmt.Errorf("reading private key: %w", err)
			}

			fromDate, err := parseDate(from)
			if err != nil {
				return fmt.Errorf("parsing --from: %w", err)
			}
			untilDate, err := parseDate(until)
			if err != nil {
				return fmt.Errorf("parsing --until: %w", err)
			}

			cvc := &btok.CVC{
				Authority: authority,
				Holder:    holder,
				From:      fromDate,
				Until:     untilDate,
			}

			eng := newEngine(useGmsm)
			out, err := eng.Wrap(cvc, priv)
			if err != nil {
				return fmt.Errorf("wrapping certificate: %w", err)
			}
			if err := os.WriteFile(outPath, out, 0o644); err != nil {
				return fmt.Errorf("writing certificate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(out), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&authority, "authority", "", "issuer name (8-12 chars)")
	cmd.Flags().StringVar(&holder, "holder", "", "subject name (8-12 chars)")
	cmd.Flags().StringVar(&from, "from", "", "validity start date, YYMMDD")
	cmd.Flags().StringVar(&until, "until", "", "validity end date, YYMMDD")
	cmd.Flags().StringVar(&privPath, "priv", "", "path to the signer's raw private key")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the signed certificate")
	cmd.Flags().BoolVar(&useGmsm, "gmsm", false, "use the gmsm SM2 adapter instead of the default")
	cmd.MarkFlagRequired("authority")
	cmd.MarkFlagRequired("holder")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("until")
	cmd.MarkFlagRequired("priv")
	cmd.MarkFlagRequired("out")

	return cmd
}
