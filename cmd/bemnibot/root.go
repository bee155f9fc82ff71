package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bemnibot",
	Short: "Telegram deadline countdown bot",
	Long: `A Telegram bot that keeps group chats honest about their deadline,
with daily countdown reminders that escalate as the date approaches.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
