package config

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"aquashop/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

// Shop holds the retailer contact metadata shown on the contact page and in
// the checkout footer. Read-only input to the core.
type Shop struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Address string `yaml:"address"`
	City    string `yaml:"city"`
	Pincode string `yaml:"pincode"`
}

func (s Shop) FullAddress() string {
	return fmt.Sprintf("%s, %s - %s", s.Address, s.City, s.Pincode)
}

// Admin is the fixed administrator credential pair. Placeholder auth: the
// password is compared as-is at login, there is no account store behind it.
type Admin struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Seed is the startup document: shop metadata, handoff recipient, admin
// credential and the initial catalog. A default copy is embedded; SEED_FILE
// points at an override.
type Seed struct {
	Shop           Shop          `yaml:"shop"`
	WhatsAppNumber string        `yaml:"whatsappNumber"`
	Admin          Admin         `yaml:"admin"`
	Catalog        []domain.Fish `yaml:"catalog"`
}

type Config struct {
	Port         string
	LogFile      string
	GeminiAPIKey string
	Seed         Seed
}

func Load() (Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./aquashop.log"
	}

	raw := defaultSeed
	seedFile := os.Getenv("SEED_FILE")
	if seedFile != "" {
		b, err := os.ReadFile(seedFile)
		if err != nil {
			return Config{}, fmt.Errorf("read seed file %s: %w", seedFile, err)
		}
		raw = b
	}

	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Config{}, fmt.Errorf("parse seed: %w", err)
	}

	// Env overrides for the secrets so the YAML can ship without them.
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		seed.Admin.Email = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		seed.Admin.Password = v
	}
	if v := os.Getenv("WHATSAPP_NUMBER"); v != "" {
		seed.WhatsAppNumber = v
	}

	cfg := Config{
		Port:         port,
		LogFile:      logFile,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Seed:         seed,
	}
	log.Printf("[config] PORT=%s LOG_FILE=%s SEED_FILE=%s shop=%q catalog=%d gemini_key_set=%t",
		cfg.Port, cfg.LogFile, seedFile, seed.Shop.Name, len(seed.Catalog), cfg.GeminiAPIKey != "")
	return cfg, nil
}
