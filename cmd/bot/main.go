package main

import (
	"context"
	"log"
	"os"

	"bacabot/internal/adapters/discord"
	"bacabot/internal/application"
	"bacabot/internal/config"
	"bacabot/internal/infrastructure/database"
	"bacabot/internal/infrastructure/i18n"
	"bacabot/internal/infrastructure/lexicon"
	"bacabot/internal/infrastructure/ocr"
	"bacabot/internal/infrastructure/spellcheck"
	"bacabot/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfigurasi tidak valid: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Migrasi basis data gagal: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Gagal menginisialisasi basis data: %v", err)
	}
	defer pool.Close()

	base, err := lexicon.Default()
	if err != nil {
		log.Fatalf("❌ Kamus bawaan rusak: %v", err)
	}
	if cfg.LexiconPath != "" {
		custom, err := lexicon.LoadFile(cfg.LexiconPath)
		if err != nil {
			log.Fatalf("❌ Gagal memuat kamus %s: %v", cfg.LexiconPath, err)
		}
		base = base.Merge(custom)
	}

	lexiconRepo := database.NewLexiconRepository(pool)
	lexiconService := application.NewLexiconService(lexiconRepo, base.Lexicon())
	if err := lexiconService.Reload(ctx); err != nil {
		log.Fatalf("❌ Gagal memuat kamus kustom: %v", err)
	}

	var checker output.SpellChecker
	if cfg.LanguageToolURL != "" {
		checker = spellcheck.New(cfg.LanguageToolURL, nil)
		log.Printf("✅ Pemeriksaan ejaan aktif (%s)", cfg.LanguageToolURL)
	}

	readingService := application.NewReadingService(
		database.NewReadingRepository(pool),
		lexiconService,
		ocr.NewTesseractEngine(nil),
		checker,
		application.ReadingOptions{
			OCRLanguages:  cfg.OCRLanguages,
			MaxImageBytes: cfg.MaxImageBytes,
		},
	)

	bot, err := discord.NewBot(cfg, readingService, lexiconService, i18n.NewTranslator(cfg.DefaultLocale))
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Gagal menjalankan bot: %v", err)
		os.Exit(1)
	}
}
