package main

import (
	"context"
	"encoding/base64"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/rahulrajrrk/finance-tracker/internal/bot"
	"github.com/rahulrajrrk/finance-tracker/internal/catalog"
	"github.com/rahulrajrrk/finance-tracker/internal/config"
	"github.com/rahulrajrrk/finance-tracker/internal/handler"
	"github.com/rahulrajrrk/finance-tracker/internal/repository"
	"github.com/rahulrajrrk/finance-tracker/internal/server"
	"github.com/rahulrajrrk/finance-tracker/internal/service"
	"github.com/rahulrajrrk/finance-tracker/internal/session"
	"github.com/rahulrajrrk/finance-tracker/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, firebaseOptions(cfg)...)
	if err != nil {
		logger.Error("failed to init firebase app", "err", err)
		os.Exit(1)
	}
	fs, err := store.New(ctx, app)
	if err != nil {
		logger.Error("failed to connect firestore", "err", err)
		os.Exit(1)
	}
	defer fs.Close()

	// repositories
	customerRepo := repository.CustomerRepository{DB: fs}
	txRepo := repository.TransactionRepository{DB: fs}
	expenseRepo := repository.ExpenseRepository{DB: fs}
	whatsAppRepo := repository.WhatsAppRepository{DB: fs}

	// services
	ledgerSvc := service.LedgerService{
		Customers:     customerRepo,
		Transactions:  txRepo,
		Expenses:      expenseRepo,
		Subscriptions: whatsAppRepo,
	}
	statsSvc := service.StatsService{Transactions: txRepo, Expenses: expenseRepo}
	serviceMaster := catalog.NewStatic()

	// telegram bot
	orch := bot.Orchestrator{
		Sessions: session.NewMemory(),
		Ledger:   ledgerSvc,
		Stats:    statsSvc,
		Currency: cfg.CurrencySymbol,
		Logger:   logger,
	}
	if cfg.TelegramBotToken == "" {
		logger.Warn("TELEGRAM_BOT_TOKEN not set; bot not started")
	} else {
		tg, err := bot.NewTelegram(cfg.TelegramBotToken, orch, logger)
		if err != nil {
			logger.Error("failed to init telegram bot", "err", err)
			os.Exit(1)
		}
		go func() {
			if err := tg.Run(ctx); err != nil {
				logger.Error("telegram bot stopped", "err", err)
			}
		}()
	}

	// handlers
	healthHandler := handler.HealthHandler{Store: fs}
	customerHandler := handler.CustomerHandler{Repo: customerRepo}
	transactionHandler := handler.TransactionHandler{Repo: txRepo}
	expenseHandler := handler.ExpenseHandler{Repo: expenseRepo}
	whatsAppHandler := handler.WhatsAppHandler{Repo: whatsAppRepo}
	servicesHandler := handler.ServicesHandler{Catalog: serviceMaster}
	statsHandler := handler.StatsHandler{Stats: statsSvc}
	exportHandler := handler.ExportHandler{Transactions: txRepo, Expenses: expenseRepo}

	router := server.NewRouter(logger, healthHandler, customerHandler, transactionHandler,
		expenseHandler, whatsAppHandler, servicesHandler, statsHandler, exportHandler)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func firebaseOptions(cfg config.Config) []option.ClientOption {
	if cfg.FirebaseCredFile == "" {
		return nil
	}

	cred := cfg.FirebaseCredFile
	// Allow inline JSON or base64-encoded JSON in env to avoid writing a file.
	if strings.HasPrefix(strings.TrimSpace(cred), "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cred))}
	}
	if decoded, err := base64.StdEncoding.DecodeString(cred); err == nil && strings.HasPrefix(strings.TrimSpace(string(decoded)), "{") {
		return []option.ClientOption{option.WithCredentialsJSON(decoded)}
	}

	return []option.ClientOption{option.WithCredentialsFile(cred)}
}
