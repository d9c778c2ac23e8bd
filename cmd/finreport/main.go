package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"finreport/internal/amqp"
	"finreport/internal/archive"
	"finreport/internal/cli"
	"finreport/internal/config"
	"finreport/internal/ledger"
	ledgergoogle "finreport/internal/ledger/google"
	ledgermemory "finreport/internal/ledger/memory"
	ledgerxlsx "finreport/internal/ledger/xlsx"
	"finreport/internal/log"
	"finreport/internal/market"
	"finreport/internal/report"
	"finreport/internal/settings"
)

const (
	promptMainDate = "Введите дату и время в формате YYYY-MM-DD HH:MM:SS для страницы «Главная» (или X, чтобы пропустить):"
	promptRetry    = "Неверный формат даты. Попробуйте ещё раз:"
	promptEvent    = "Введите дату и время в формате YYYY-MM-DD HH:MM:SS для страницы «События» (или X, чтобы пропустить):"
	promptPeriod   = "Введите период: W — неделя, M — месяц, Y — год, ALL — всё время (или X, чтобы пропустить):"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := newLedgerSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize ledger source",
			log.FieldComponent, log.ComponentLedger, log.FieldError, err.Error())
		os.Exit(1)
	}

	prefs := settings.Load(cfg.SettingsFile, logger)

	httpc := market.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout})
	rates := market.NewExchangeClient(cfg.ExchangeRatesAPIKey, logger, httpc)
	quotes := market.NewQuoteClient(cfg.AlphaVantageAPIKey, logger, httpc)

	builder := report.NewBuilder(source, rates, quotes, prefs, logger)
	builder.SetTopCount(cfg.TopTransactions)

	repo := cli.OpenArchive(logger, cfg.ArchiveDBPath)
	if repo != nil {
		defer repo.Close()
	}

	var notifier *amqp.Client
	if cfg.AMQPURL != "" {
		notifier, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
		if err != nil {
			logger.Warn("AMQP unavailable, continuing without notifications",
				log.FieldComponent, log.ComponentAMQP, log.FieldError, err.Error())
		} else {
			defer notifier.Close()
		}
	}

	app := &App{
		cfg:      cfg,
		logger:   logger.WithComponent(log.ComponentApp),
		builder:  builder,
		archive:  repo,
		notifier: notifier,
	}
	if err := app.Run(ctx, cli.NewPrompter(os.Stdin, os.Stdout)); err != nil {
		app.logger.Error("Report generation failed", log.FieldError, err.Error())
		os.Exit(1)
	}
}

// App drives one interactive reporting session.
type App struct {
	cfg      *config.Config
	logger   *log.Logger
	builder  *report.Builder
	archive  *archive.Repository
	notifier *amqp.Client
}

// Run asks for the Main page instant, then the Events page instant and
// period, generating each page the user did not skip.
func (a *App) Run(ctx context.Context, prompter *cli.Prompter) error {
	a.logSinceLastReport(ctx, archive.PageMain)

	if now, ok := prompter.ReadDate(promptMainDate, promptRetry); ok {
		page, err := a.builder.MainPage(ctx, now)
		if err != nil {
			return fmt.Errorf("main page: %w", err)
		}
		if err := a.emit(ctx, archive.PageMain, report.MainPageFile, now, page); err != nil {
			return err
		}
	}

	now, ok := prompter.ReadDate(promptEvent, promptRetry)
	if !ok {
		return nil
	}
	period, ok := prompter.ReadPeriod(promptPeriod)
	if !ok {
		return nil
	}
	page, err := a.builder.EventsPage(ctx, now, period)
	if err != nil {
		return fmt.Errorf("events page: %w", err)
	}
	return a.emit(ctx, archive.PageEvents, report.EventsPageFile, now, page)
}

// emit writes the page to disk, archives it, and publishes a notification.
func (a *App) emit(ctx context.Context, pageName, fileName string, referenceTime time.Time, page any) error {
	path := filepath.Join(a.cfg.OutputDir, fileName)
	if err := report.WriteJSON(path, page, a.logger); err != nil {
		return fmt.Errorf("write %s: %w", pageName, err)
	}
	a.logger.Info("Report page written",
		log.FieldPage, pageName, log.FieldPath, path)

	if a.archive == nil {
		return nil
	}
	payload, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("encode %s: %w", pageName, err)
	}
	id, err := a.archive.Save(ctx, pageName, referenceTime, payload)
	if err != nil {
		a.logger.Warn("Failed to archive report page",
			log.FieldPage, pageName, log.FieldError, err.Error())
		return nil
	}

	if a.notifier != nil {
		msg := amqp.NewReportGeneratedMessage(pageName, id, path)
		if err := a.notifier.PublishReportGenerated(ctx, msg); err != nil {
			a.logger.Warn("Failed to publish report notification",
				log.FieldPage, pageName, log.FieldError, err.Error())
		}
	}
	return nil
}

// logSinceLastReport surfaces how long ago the previous run happened, when
// the archive has one.
func (a *App) logSinceLastReport(ctx context.Context, pageName string) {
	if a.archive == nil {
		return
	}
	last, found, err := a.archive.LastGeneratedAt(ctx, pageName)
	if err != nil || !found {
		return
	}
	a.logger.Info("Previous report found",
		log.FieldPage, pageName,
		"generated_at", last.Format(cli.DateTimeLayout),
		log.FieldDuration, time.Since(last).Milliseconds())
}

func newLedgerSource(ctx context.Context, cfg *config.Config, logger *log.Logger) (ledger.Source, error) {
	switch cfg.Backend() {
	case ledger.BackendXLSX:
		return ledgerxlsx.New(cfg.OperationsFile, cfg.OperationsSheet, logger), nil
	case ledger.BackendSheets:
		return ledgergoogle.New(ctx, cfg.GoogleSpreadsheetID, cfg.GoogleSheetName, logger)
	case ledger.BackendMemory:
		return ledgermemory.New(nil), nil
	default:
		return nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
	}
}
