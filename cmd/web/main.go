package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/powerwestjava/solar-atlas/pkg/server"
	"github.com/powerwestjava/solar-atlas/pkg/services/analytics"
	"github.com/powerwestjava/solar-atlas/pkg/services/assistant"
	"github.com/powerwestjava/solar-atlas/pkg/services/config"
	"github.com/powerwestjava/solar-atlas/pkg/services/project"
	"github.com/powerwestjava/solar-atlas/pkg/store/csvlog"
	"github.com/powerwestjava/solar-atlas/pkg/store/memory"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the PowerWestJava solar planning backend",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file (defaults and environment are used when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var completer assistant.Completer
	if cfg.Assistant.APIKey == "" {
		logger.Warn().Msg("GROQ_API_KEY is missing; chat requests will fail with a not-configured error")
	} else {
		completer, err = assistant.NewGroqCompleter(assistant.GroqConfig{
			APIKey:      cfg.Assistant.APIKey,
			BaseURL:     cfg.Assistant.BaseURL,
			Model:       cfg.Assistant.Model,
			Temperature: cfg.Assistant.Temperature,
			MaxTokens:   cfg.Assistant.MaxTokens,
			Timeout:     time.Duration(cfg.Assistant.TimeoutSeconds) * time.Second,
		})
		if err != nil {
			return fmt.Errorf("failed to create chat client: %w", err)
		}
		logger.Info().Msg("chat completion client initialized")
	}
	guard := assistant.NewGuard(completer)

	projects := project.NewService(memory.NewProjectStore())

	var monitor analytics.Monitor
	source, err := csvlog.NewFileSource(cfg.Monitoring.CSVPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.Monitoring.CSVPath).
			Msg("monitoring csv unavailable; dashboard will serve empty data")
		monitor = analytics.NewMonitor(emptySource{})
	} else {
		monitor = analytics.NewMonitor(source)
	}

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		CORSOrigins:     cfg.Server.CORSOrigins,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Guard:    guard,
			Projects: projects,
			Monitor:  monitor,
			Logger:   logger,
		},
	})

	return api.Start()
}
