package commands

import (
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"
)

func digestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest [file]",
		Short: "Hash a file or standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var h hash.Hash
			var err error
			switch digestAlgo {
			case "sha512":
				h = sha512.New()
			case "blake2b-256":
				h, err = blake2b.New256(nil)
			case "blake2b-512":
				h, err = blake2b.New512(nil)
			default:
				return fmt.Errorf("unknown algorithm %q (sha512, blake2b-256, blake2b-512)", digestAlgo)
			}
			if err != nil {
				return err
			}

			var r io.Reader = os.Stdin
			name := "-"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
				name = args[0]
			}

			if _, err := io.Copy(h, r); err != nil {
				return err
			}
			fmt.Printf("%x  %s\n", h.Sum(nil), name)
			return nil
		},
	}
	cmd.Flags().StringVar(&digestAlgo, "algo", "sha512", "digest algorithm: sha512, blake2b-256, blake2b-512")
	return cmd
}
