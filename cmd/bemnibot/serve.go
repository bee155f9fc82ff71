package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Yab112/BemniTelegeramBot/internal/bot"
	"github.com/Yab112/BemniTelegeramBot/internal/config"
	"github.com/Yab112/BemniTelegeramBot/internal/db"
	"github.com/Yab112/BemniTelegeramBot/internal/health"
	storegorm "github.com/Yab112/BemniTelegeramBot/internal/store/gorm"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the deadline countdown bot",
	Long: `Run the deadline countdown bot.

Requires the BOT_TOKEN and DB_URL environment variables.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
			log.SetLevel(level)
		}

		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Info("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		gormDB, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		b, err := bot.New(bot.Config{
			Token: cfg.BotToken,
			Clock: cfg.ReminderTime,
			Zone:  cfg.ReminderZone,
		}, storegorm.NewDeadlinesStore(gormDB))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bot init failed: %v\n", err)
			os.Exit(1)
		}

		healthSrv := health.NewServer(storegorm.NewHealthStore(gormDB), cfg.Port)
		go func() {
			log.Infof("Health endpoints at http://0.0.0.0:%d", cfg.Port)
			if err := healthSrv.Start(); err != nil && err != http.ErrServerClosed {
				log.Errorf("Health server failed: %v", err)
			}
		}()

		go func() {
			if err := b.Start(); err != nil {
				log.Errorf("Bot failed: %v", err)
				os.Exit(1)
			}
		}()

		// Block until we receive a signal
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Infof("Received signal: %v, stopping bot...", sig)

		b.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := healthSrv.Shutdown(ctx); err != nil {
			log.Errorf("Health server shutdown failed: %v", err)
		}
		if err := db.Close(gormDB); err != nil {
			log.Errorf("Closing database failed: %v", err)
		}

		log.Info("Bot stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
