package entities

import (
	"github.com/similar-manga/mdserial/cmd"
	"github.com/spf13/cobra"
)

var entitiesCmd = &cobra.Command{
	Use:   "entities",
	Short: "entities command",
	Long: `
Actions that decode local MangaDex payloads into entities.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	cmd.RootCmd.AddCommand(entitiesCmd)
}
