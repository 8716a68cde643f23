package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/frasebot/internal/bot"
	"github.com/example/frasebot/internal/database"
	"github.com/example/frasebot/internal/excel"
	"github.com/example/frasebot/internal/textmatch"
	"github.com/example/frasebot/internal/trainer"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	phraseRepo := database.NewPhraseRepository(db)
	if err := ensureCatalog(phraseRepo); err != nil {
		log.Fatalf("Failed to load phrase catalog: %v", err)
	}

	catalog, err := phraseRepo.GetAll()
	if err != nil {
		log.Fatalf("Failed to read phrase catalog: %v", err)
	}

	tr, err := trainer.New(catalog, database.NewStore(db), trainer.Config{
		Match:      matchConfig(),
		StartLevel: os.Getenv("START_LEVEL"),
	})
	if err != nil {
		log.Fatalf("Failed to create trainer: %v", err)
	}

	b, err := bot.New(tr)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		b.Stop()
	}()

	log.Println("Bot started. Press Ctrl+C to stop.")
	if err := b.Start(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
	log.Println("Bot stopped successfully")
}

// ensureCatalog imports phrases from CATALOG_PATH when the table is empty
func ensureCatalog(repo *database.PhraseRepository) error {
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	path := os.Getenv("CATALOG_PATH")
	if path == "" {
		path = "data/phrases.json"
	}

	config := excel.DefaultImportConfig()
	config.FilePath = path
	result, err := excel.ImportPhrases(repo, config)
	if err != nil {
		return err
	}
	log.Printf("Imported %d phrases from %s (%d skipped)", result.Imported, path, result.Skipped)
	return nil
}

func matchConfig() textmatch.Config {
	cfg := textmatch.DefaultConfig()
	if raw := os.Getenv("OVERLAP_THRESHOLD"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 && v <= 1 {
			cfg.OverlapThreshold = v
		} else {
			log.Printf("Warning: invalid OVERLAP_THRESHOLD: %s", raw)
		}
	}
	if raw := os.Getenv("EDIT_THRESHOLD"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 && v <= 1 {
			cfg.EditThreshold = v
		} else {
			log.Printf("Warning: invalid EDIT_THRESHOLD: %s", raw)
		}
	}
	return cfg
}
