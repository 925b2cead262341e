package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzabaluev/cryptoxide/ed25519"
)

func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign <secret-key-hex> [message]",
		Short: "Sign a message with an Ed25519 secret key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := decodeHexKey("secret key", args[0], ed25519.PrivateKeySize)
			if err != nil {
				return err
			}
			message, err := readMessage(args, 1)
			if err != nil {
				return err
			}

			sig := ed25519.Sign(message, secret)
			fmt.Printf("%x\n", sig)
			return nil
		},
	}
	cmd.Flags().StringVar(&messageFile, "file", "", "read the message from this file")
	return cmd
}
