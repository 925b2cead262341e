package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzabaluev/cryptoxide/ed25519"
)

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <public-key-hex> <signature-hex> [message]",
		Short: "Verify an Ed25519 signature",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			public, err := decodeHexKey("public key", args[0], ed25519.PublicKeySize)
			if err != nil {
				return err
			}
			sig, err := decodeHexKey("signature", args[1], ed25519.SignatureSize)
			if err != nil {
				return err
			}
			message, err := readMessage(args, 2)
			if err != nil {
				return err
			}

			if !ed25519.Verify(message, public, sig) {
				return fmt.Errorf("signature verification failed")
			}
			fmt.Println("signature verified")
			return nil
		},
	}
	cmd.Flags().StringVar(&messageFile, "file", "", "read the message from this file")
	return cmd
}
