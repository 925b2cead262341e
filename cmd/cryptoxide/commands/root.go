package commands

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	seedHex     string
	messageFile string
	digestAlgo  string
)

func Execute() error {
	root := &cobra.Command{
		Use:           "cryptoxide",
		Short:         "Curve25519/Ed25519 signing and key exchange tool",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(keygenCmd(), signCmd(), verifyCmd(), exchangeCmd(), digestCmd())
	return root.Execute()
}

// decodeHexKey decodes a hex command-line argument and checks its length.
func decodeHexKey(name, s string, size int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %v", name, err)
	}
	if len(b) != size {
		return nil, fmt.Errorf("%s must be %d bytes, got %d", name, size, len(b))
	}
	return b, nil
}

// readMessage returns the contents of the --file flag when set, the
// positional argument at pos otherwise.
func readMessage(args []string, pos int) ([]byte, error) {
	if messageFile != "" {
		return os.ReadFile(messageFile)
	}
	if pos < len(args) {
		return []byte(args[pos]), nil
	}
	return nil, fmt.Errorf("message argument or --file required")
}
