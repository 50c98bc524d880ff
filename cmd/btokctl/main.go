// Command btokctl exercises the btok engine against files on disk: wrap a
// CertificateBody into a signed CVCertificate, unwrap and verify one, issue
// a certificate from an issuer's own keypair, or check one's fields
// without touching any signature.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "btokctl",
		Short: "Inspect and produce STB 34.101.79 CV-Certificates",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(
		newWrapCmd(),
		newUnwrapCmd(),
		newIssueCmd(),
		newCheckCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("btokctl: %s", err)
	}
}
