package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/knowledge-engine/recommender/internal/recommend"
)

// APIKeyEnvVar is read when --api-key is not given
const APIKeyEnvVar = "LLM_API_KEY"

var (
	preference string
	modelLabel string
	apiKey     string
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend [preference...]",
	Short: "Ask for recommendations once and print the reply",
	Long: `Send one recommendation request and print the reply.

Provider failures are printed like replies and do not change the exit status.`,
	Example: `  recommender recommend --preference "laptop for programming around $1200"
  recommender recommend -m "grok-4 (flagship)" headphones with great ANC`,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVarP(&preference, "preference", "p", "", "what you are looking for")
	recommendCmd.Flags().StringVarP(&modelLabel, "model", "m", recommend.DefaultModelLabel, "model label, see \"recommender models\"")
	recommendCmd.Flags().StringVar(&apiKey, "api-key", "", "provider API key (default $"+APIKeyEnvVar+")")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	pref := preference
	if pref == "" {
		pref = strings.Join(args, " ")
	}
	if strings.TrimSpace(pref) == "" {
		return errors.New("a preference is required (--preference or positional arguments)")
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	key := apiKey
	if key == "" {
		key = os.Getenv(APIKeyEnvVar)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	resp := a.requester.Recommend(ctx, recommend.Request{
		Preference: pref,
		Credential: key,
		Model:      modelLabel,
	})

	printf(cmd, "%s\n", resp.Display())
	return nil
}
