package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/alpharadar/alpharadar/internal/blockchain"
	"github.com/alpharadar/alpharadar/internal/config"
	"github.com/alpharadar/alpharadar/internal/http_api"
	"github.com/alpharadar/alpharadar/internal/metrics"
	"github.com/alpharadar/alpharadar/internal/notificator"
	"github.com/alpharadar/alpharadar/internal/radar"
	"github.com/alpharadar/alpharadar/internal/repository"
	"github.com/alpharadar/alpharadar/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "alpharadar",
		Usage: "AlphaRadar is a Telegram bot that notifies about new wallet transactions",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bot-token", Aliases: []string{"t"}, Usage: "Telegram bot token"},
			&cli.StringFlag{Name: "api-key", Aliases: []string{"k"}, Usage: "Vybe API key"},
			&cli.StringFlag{Name: "api-url", Aliases: []string{"u"}, Usage: "Vybe API base URL"},
			&cli.StringFlag{Name: "tx-path", Usage: "Wallet transactions endpoint segment (txs or transactions)"},
			&cli.StringFlag{Name: "explorer-url", Aliases: []string{"e"}, Usage: "Explorer transaction URL prefix"},
			&cli.DurationFlag{Name: "poll-interval", Aliases: []string{"i"}, Usage: "Interval between polling ticks"},
			&cli.DurationFlag{Name: "initial-delay", Usage: "Delay before the first polling tick"},
			&cli.DurationFlag{Name: "fetch-timeout", Usage: "Timeout of a single wallet fetch"},
			&cli.BoolFlag{Name: "seed-on-first-sight", Aliases: []string{"s"}, Usage: "Do not notify about the first transaction seen for a wallet"},
			&cli.IntFlag{Name: "api-port", Aliases: []string{"p"}, Usage: "Operational HTTP API port (0 disables it)"},
			&cli.BoolFlag{Name: "development", Aliases: []string{"D"}, Usage: "Development mode"},
		},
		Action: func(c *cli.Context) error {
			return run(c)
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	// Load configuration from environment variables
	cfg := config.LoadFromEnv()

	// Override with flags if set
	if c.IsSet("bot-token") {
		cfg.BotToken = c.String("bot-token")
	}
	if c.IsSet("api-key") {
		cfg.VybeAPIKey = c.String("api-key")
	}
	if c.IsSet("api-url") {
		cfg.VybeAPIURL = c.String("api-url")
	}
	if c.IsSet("tx-path") {
		cfg.VybeTxPath = c.String("tx-path")
	}
	if c.IsSet("explorer-url") {
		cfg.ExplorerTxURL = c.String("explorer-url")
	}
	if c.IsSet("poll-interval") {
		cfg.PollInterval = c.Duration("poll-interval")
	}
	if c.IsSet("initial-delay") {
		cfg.InitialDelay = c.Duration("initial-delay")
	}
	if c.IsSet("fetch-timeout") {
		cfg.FetchTimeout = c.Duration("fetch-timeout")
	}
	if c.IsSet("seed-on-first-sight") {
		cfg.SeedOnFirstSight = c.Bool("seed-on-first-sight")
	}
	if c.IsSet("api-port") {
		cfg.APIPort = c.Int("api-port")
	}
	if c.IsSet("development") {
		cfg.Development = c.Bool("development")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Development)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	metrics.MustRegister()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// In-memory subscription state
	registry := repository.NewRegistry(log.Named("registry"))
	tracker := repository.NewTracker()

	// Initialize transaction API client
	vybe := blockchain.NewVybe(cfg.VybeAPIURL, cfg.VybeAPIKey, cfg.VybeTxPath, cfg.FetchTimeout, log.Named("vybe"))

	// Initialize notificator
	telegram, err := notificator.NewTelegramNotificator(log.Named("telegram"), cfg.BotToken)
	if err != nil {
		return err
	}
	notif := notificator.NewNotificator(log.Named("notificator"), telegram)

	// Create Radar instance
	radarApp := radar.NewRadar(registry, tracker, vybe, notif, log.Named("radar"), cfg)
	telegram.SetCommandHandler(radarApp)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		telegram.Start(ctx)
	}()
	go func() {
		defer wg.Done()
		radarApp.Run(ctx)
	}()

	if cfg.APIPort > 0 {
		apiServer := http_api.NewHTTPServer(radarApp, cfg.APIPort, log.Named("http"))
		go func() {
			if err := apiServer.Start(); err != nil {
				log.Error("HTTP server stopped", "error", err)
			}
		}()
		defer func() {
			if err := apiServer.Shutdown(); err != nil {
				log.Error("Failed to shut down HTTP server", "error", err)
			}
		}()
	}

	log.Info("🚀 Bot is now running")
	<-ctx.Done()
	log.Info("Shutting down")
	wg.Wait()

	return nil
}
