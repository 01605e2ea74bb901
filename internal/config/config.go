package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultDatabaseURL    = "postgres://localhost:5432/bacabot?sslmode=disable"
	defaultMigrationsPath = "migrations"
	defaultLocale         = "id"
	defaultOCRLanguages   = "ind"
	defaultAutoReadLimit  = 500
	defaultMaxImageBytes  = 8 << 20
)

type Config struct {
	Token           string
	DatabaseURL     string
	GuildID         string
	MigrationsPath  string
	DefaultLocale   string
	LexiconPath     string
	OCRLanguages    []string
	LanguageToolURL string
	AutoReadLimit   int
	MaxImageBytes   int
}

// Load reads the configuration from the environment (and an optional .env
// file) and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Token:           getenv("TOKEN"),
		DatabaseURL:     getenv("DATABASE_URL"),
		GuildID:         getenv("GUILD_ID"),
		MigrationsPath:  getenv("MIGRATIONS_PATH"),
		DefaultLocale:   getenv("DEFAULT_LOCALE"),
		LexiconPath:     getenv("LEXICON_PATH"),
		LanguageToolURL: strings.TrimSpace(getenv("LANGUAGETOOL_URL")),
	}

	var err error
	if cfg.AutoReadLimit, err = intVar(getenv, "AUTO_READ_LIMIT", defaultAutoReadLimit); err != nil {
		return nil, err
	}
	if cfg.MaxImageBytes, err = intVar(getenv, "MAX_IMAGE_BYTES", defaultMaxImageBytes); err != nil {
		return nil, err
	}
	langs := getenv("OCR_LANGUAGES")
	if strings.TrimSpace(langs) == "" {
		langs = defaultOCRLanguages
	}
	for _, l := range strings.Split(langs, ",") {
		if l = strings.TrimSpace(l); l != "" {
			cfg.OCRLanguages = append(cfg.OCRLanguages, l)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func intVar(getenv func(string) string, name string, def int) (int, error) {
	raw := strings.TrimSpace(getenv(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("config: %s harus bilangan bulat positif (%q)", name, raw)
	}
	return n, nil
}

// validate applies the rules on the loaded configuration and fills defaults.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN wajib diisi")
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID harus ID server Discord (hanya angka)")
		}
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Local default when DATABASE_URL is not provided.
		c.DatabaseURL = defaultDatabaseURL
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL tidak valid (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL tidak valid (%q): scheme atau host kosong", c.DatabaseURL)
	}

	if c.LanguageToolURL != "" {
		u, err := url.Parse(c.LanguageToolURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config: LANGUAGETOOL_URL tidak valid (%q)", c.LanguageToolURL)
		}
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = defaultMigrationsPath
	}
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = defaultLocale
	}
	return nil
}
