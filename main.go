package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/example/flashdeck/internal/config"
	"github.com/example/flashdeck/internal/database"
	"github.com/example/flashdeck/internal/errs"
	"github.com/example/flashdeck/internal/excel"
	"github.com/example/flashdeck/internal/scheduler"
	"github.com/example/flashdeck/internal/session"
)

func main() {
	importFile := flag.String("import", "", "path to an xlsx or csv file of cards to bulk-import")
	importDeck := flag.String("deck", "", "deck id that receives the imported cards")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	cards := database.NewCardRepository(db)
	decks := database.NewDeckRepository(db, cards)

	// Import mode: load cards into a deck and exit.
	if *importFile != "" {
		if *importDeck == "" {
			log.Fatal("-import requires -deck")
		}
		importConfig := excel.DefaultImportConfig()
		importConfig.FilePath = *importFile

		result, err := excel.ImportCards(cards, *importDeck, importConfig)
		if err != nil {
			log.Fatalf("import failed: %v", err)
		}
		log.Infow("import finished",
			"processed", result.TotalProcessed,
			"created", result.Created,
			"skipped", result.Skipped,
			"errors", len(result.Errors),
		)
		for _, e := range result.Errors {
			log.Warnw("import row failed", "detail", e)
		}
		return
	}

	sessions := session.NewStore(cfg.SessionFile)
	if account, err := sessions.Load(); err == nil {
		log.Infow("restored session", "user", account.Email)
	} else if !errors.Is(err, errs.ErrNotFound) {
		log.Warnw("could not restore session", "error", err)
	}

	sched := scheduler.New(decks, log)
	sched.Start()
	log.Infow("store ready", "driver", cfg.Driver, "sweep_at", scheduler.SweepTime)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Infof("received signal: %v", sig)

	sched.Stop()
	log.Info("stopped")
}
