package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzabaluev/cryptoxide/ed25519"
)

func keygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an Ed25519 keypair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var seed []byte
			if seedHex != "" {
				var err error
				if seed, err = decodeHexKey("seed", seedHex, ed25519.SeedSize); err != nil {
					return err
				}
			} else {
				seed = make([]byte, ed25519.SeedSize)
				if _, err := rand.Read(seed); err != nil {
					return err
				}
			}

			secret, public := ed25519.Keypair(seed)
			fmt.Printf("secret: %s\n", hex.EncodeToString(secret[:]))
			fmt.Printf("public: %s\n", hex.EncodeToString(public[:]))
			return nil
		},
	}
	cmd.Flags().StringVar(&seedHex, "seed", "", "derive the keypair from this 32-byte hex seed")
	return cmd
}
