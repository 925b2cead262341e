package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzabaluev/cryptoxide/ed25519"
)

// exchange derives the same shared secret on both sides: each party passes
// the peer's public key and its own secret key.
func exchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange <public-key-hex> <secret-key-hex>",
		Short: "Derive the X25519 shared secret between an Ed25519 keypair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			public, err := decodeHexKey("public key", args[0], ed25519.PublicKeySize)
			if err != nil {
				return err
			}
			secret, err := decodeHexKey("secret key", args[1], ed25519.PrivateKeySize)
			if err != nil {
				return err
			}

			shared := ed25519.Exchange(public, secret)
			fmt.Printf("%x\n", shared)
			return nil
		},
	}
}
