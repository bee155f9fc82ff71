package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/Yab112/BemniTelegeramBot/internal/config"
)

// dbCheckCmd verifies database connectivity
var dbCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify database connectivity",
	Long: `Connect to the database and verify it answers.

Example:
  bemnibot db check`,
	Run: func(cmd *cobra.Command, args []string) {
		dbURL := config.DatabaseURL()
		if dbURL == "" {
			fmt.Println("❌ Database connection failed: DB_URL environment variable is required")
			os.Exit(1)
		}

		conn, err := sql.Open("postgres", dbURL)
		if err != nil {
			fmt.Println("❌ Database connection failed:", err)
			os.Exit(1)
		}
		defer func() { _ = conn.Close() }()

		if err := conn.Ping(); err != nil {
			fmt.Println("❌ Database connection failed:", err)
			os.Exit(1)
		}

		fmt.Println("✅ Database connection successful!")
	},
}

func init() {
	dbCmd.AddCommand(dbCheckCmd)
}
