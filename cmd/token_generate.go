package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/minta-io/minta/pkg/client"
)

var (
	tokenGenerateConsumerID string
	tokenGenerateIssuer     string
	tokenGenerateClaims     []string
)

// tokenGenerateCmd represents the token generate command
var tokenGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a signed token for a consumer",
	Long: `Requests a signed token from the server. The signing secret is resolved
at the credential gateway for the given consumer; the token carries the
provided issuer claim and expires after the server-configured validity window.`,
	Example: `  minta token generate --consumer consumer-1 --iss service-a
  minta token generate --consumer consumer-1 --iss service-a --claim sub=user-1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := getClient()
		if err != nil {
			return err
		}

		extra := make(map[string]any, len(tokenGenerateClaims))
		for _, pair := range tokenGenerateClaims {
			key, value, found := strings.Cut(pair, "=")
			if !found || key == "" {
				return fmt.Errorf("invalid claim %q, expected key=value", pair)
			}
			extra[key] = value
		}

		log.Debug().
			Str("consumer_id", tokenGenerateConsumerID).
			Msg("Requesting token...")

		tok, correlation, err := cli.GenerateToken(
			cmd.Context(),
			tokenGenerateConsumerID,
			tokenGenerateIssuer,
			client.GenerateTokenOptions{ExtraClaims: extra},
		)
		if err != nil {
			log.Debug().Str("correlation", correlation).Msg("request failed")
			return fmt.Errorf("generating token: %w", err)
		}

		log.Info().Msg("Token generated!")
		fmt.Println(tok)
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenGenerateCmd)

	tokenGenerateCmd.Flags().StringVar(&tokenGenerateConsumerID, "consumer", "", "Consumer ID registered at the gateway")
	tokenGenerateCmd.Flags().StringVar(&tokenGenerateIssuer, "iss", "", "Issuer claim for the token")
	tokenGenerateCmd.Flags().StringArrayVar(&tokenGenerateClaims, "claim", nil, "Extra claim as key=value (repeatable)")

	_ = tokenGenerateCmd.MarkFlagRequired("consumer")
	_ = tokenGenerateCmd.MarkFlagRequired("iss")
}
