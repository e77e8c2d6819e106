package main

import (
	"github.com/spf13/cobra"

	"github.com/knowledge-engine/recommender/internal/recommend"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the product listing embedded into prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		printf(cmd, "%s\n", a.requester.Catalog.Render())
		return nil
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the accepted model labels",
	Run: func(cmd *cobra.Command, args []string) {
		for _, label := range recommend.ModelLabels() {
			id, _ := recommend.ResolveModel(label)
			marker := " "
			if label == recommend.DefaultModelLabel {
				marker = "*"
			}
			printf(cmd, "%s %s -> %s\n", marker, label, id)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(modelsCmd)
}
