package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JurmiThinley/jobtrackr/pkg/token"
)

// tokenKeyGenerateCmd represents the token-key > generate command
var tokenKeyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a token signing key",
	Long: `
Generate a token signing key

Use this command to generate a new Base64-encoded 256 bit key for signing
bearer tokens. Once generated, this key should be placed into the environment
of the JobTrackr server. Rotating the key invalidates all outstanding tokens.

Example:

$ export JOBTRACKR_TOKEN_KEY="$(jobtrackrctl token-key generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		bytes := make([]byte, token.MinKeyLength)
		if _, err := rand.Read(bytes); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to generate key:", err)
			os.Exit(1)
		}
		fmt.Printf("%s", base64.StdEncoding.Strict().EncodeToString(bytes))
	},
}

func init() {
	tokenKeyCmd.AddCommand(tokenKeyGenerateCmd)
}
