package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	portal "github.com/naradigital/go-portal"
	"github.com/naradigital/go-portal/internal/di"
	"github.com/naradigital/go-portal/internal/herocontent"
	"github.com/naradigital/go-portal/internal/i18n"
	"github.com/naradigital/go-portal/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg := portal.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Format = "console"
	if dir := os.Getenv("PORTAL_BUNDLE_DIR"); dir != "" {
		cfg.I18N.BundleDir = dir
	}

	bundle := i18n.NewBundle()
	bundle.AddNamespace("en", "common", map[string]any{
		"welcome": "Welcome to the portal",
		"nav":     map[string]any{"home": "Home", "research": "Research"},
	})
	bundle.AddNamespace("si", "common", map[string]any{
		"welcome": "පෝර්ටලයට සාදරයෙන් පිළිගනිමු",
	})
	bundle.AddNamespace("ta", "common", map[string]any{
		"welcome": "போர்ட்டலுக்கு வரவேற்கிறோம்",
	})

	opts := []di.Option{di.WithBundle(bundle)}
	if dsn := os.Getenv("PORTAL_SQLITE_DSN"); dsn != "" {
		db, err := storage.NewSQLiteDB(dsn)
		if err != nil {
			log.Fatalf("open sqlite: %v", err)
		}
		defer db.Close()
		if err := portal.RunMigrations(ctx, db); err != nil {
			log.Fatalf("migrate sqlite: %v", err)
		}
		opts = append(opts, di.WithBunDB(db))
	}

	module, err := portal.New(cfg, opts...)
	if err != nil {
		log.Fatalf("initialise portal: %v", err)
	}

	translator := module.Translator()
	locales := module.Locales()

	fmt.Println("== locale resolution ==")
	fmt.Printf("initial locale: %s\n", locales.ResolveInitial(ctx, "si-LK"))
	fmt.Printf("welcome [%s]: %s\n", locales.Active(), translator.Translate("common", "welcome"))

	if locales.ChangeLanguage(ctx, "ta") {
		fmt.Printf("welcome [%s]: %s\n", locales.Active(), translator.Translate("common", "welcome"))
	}
	fmt.Printf("missing key falls back: %s\n", translator.Translate("common", "nav.home"))

	fmt.Println("== page content ==")
	contentSvc := module.Content()
	page, err := contentSvc.Load(ctx, "homepage")
	if err != nil {
		log.Fatalf("load homepage: %v", err)
	}

	english := page.Hero.Translations["en"]
	english.Title = "National Aquatic Resources Portal"
	english.Description = "Research, advisories, and services for the fishing community."
	page.Hero.Translations["en"] = english

	saved, err := contentSvc.Save(ctx, portal.SaveRequest{
		PageID:  "homepage",
		Content: page,
	})
	if err != nil {
		log.Fatalf("save homepage: %v", err)
	}

	fmt.Printf("hero title (mirror): %s\n", saved.Hero.Mirror.Title)

	doc := herocontent.CloneDocument(saved.Document())
	pretty, _ := json.MarshalIndent(doc["hero"], "", "  ")
	fmt.Printf("persisted hero document:\n%s\n", pretty)

	fmt.Println("== pages ==")
	for _, def := range contentSvc.Pages() {
		fmt.Printf("- %s (%s)\n", def.Name, def.ID)
	}
}
