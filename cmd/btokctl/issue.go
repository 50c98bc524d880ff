package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bee2lab/btok"
)

// newIssueCmd wires the engine's Issue operation: build an unsigned CVC
// from flags, sign it with the issuing authority's certificate and private
// key, and write the resulting certificate to a file.
func newIssueCmd() *cobra.Command {
	var (
		holder         string
		pubPath        string
		from, until    string
		issuerCertPath string
		issuerPrivPath string
		outPath        string
		useGmsm        bool
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a CVCertificate signed by an existing authority",
		RunE: func(cmd *cobra.Command, args []string) error {
			issuerCert, err := os.ReadFile(issuerCertPath)
			if err != nil {
				return fmt.Errorf("reading issuer certificate: %w", err)
			}
			issuerPriv, err := os.ReadFile(issuerPrivPath)
			if err != nil {
				return fmt.Errorf("reading issuer private key: %w", err)
			}
			pub, err := os.ReadFile(pubPath)
			if err != nil {
				return fmt.Errorf("reading subject public key: %w", err)
			}

			fromDate, err := parseDate(from)
			if err != nil {
				return fmt.Errorf("parsing --from: %w", err)
			}
			untilDate, err := parseDate(until)
			if err != nil {
				return fmt.Errorf("parsing --until: %w", err)
			}

			eng := newEngine(useGmsm)

			// The issued certificate's authority is the issuer's own holder
			// name; Issue enforces this via Check2, so peek it here only to
			// populate the field before handing off.
			cvca, err := eng.Unwrap(issuerCert, nil)
			if err != nil {
				return fmt.Errorf("reading issuer certificate: %w", err)
			}

			cvc := &btok.CVC{
				Authority: cvca.Holder,
				Holder:    holder,
				PubKey:    pub,
				From:      fromDate,
				Until:     untilDate,
			}

			out, err := eng.Issue(cvc, issuerCert, issuerPriv)
			if err != nil {
				return fmt.Errorf("issuing certificate: %w", err)
			}
			if err := os.WriteFile(outPath, out, 0o644); err != nil {
				return fmt.Errorf("writing certificate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(out), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&holder, "holder", "", "subject name (8-12 chars)")
	cmd.Flags().StringVar(&pubPath, "pub", "", "path to the subject's raw public key")
	cmd.Flags().StringVar(&from, "from", "", "validity start date, YYMMDD")
	cmd.Flags().StringVar(&until, "until", "", "validity end date, YYMMDD")
	cmd.Flags().StringVar(&issuerCertPath, "issuer-cert", "", "path to the issuing authority's own certificate")
	cmd.Flags().StringVar(&issuerPrivPath, "issuer-priv", "", "path to the issuing authority's private key")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the issued certificate")
	cmd.Flags().BoolVar(&useGmsm, "gmsm", false, "use the gmsm SM2 adapter instead of the default")
	cmd.MarkFlagRequired("holder")
	cmd.MarkFlagRequired("pub")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("until")
	cmd.MarkFlagRequired("issuer-cert")
	cmd.MarkFlagRequired("issuer-priv")
	cmd.MarkFlagRequired("out")

	return cmd
}
