package main

import (
	"context"
	"flag"
	"log"
	"time"

	"career-connect/internal/app"
	"career-connect/internal/config"
	"career-connect/internal/repository"
	"career-connect/internal/scraper"
	"career-connect/internal/ws"
)

func main() {
	once := flag.Bool("once", false, "run a single refresh and exit")
	pages := flag.Int("pages", 0, "listing pages per category (0 = config default)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	maxPages := cfg.Scraper.MaxPages
	if *pages > 0 {
		maxPages = *pages
	}

	refresher := scraper.NewRefresher(
		repository.NewPostgresOpportunityRepository(c.DB),
		scraper.NewInternshalaScraper(cfg.Scraper.UserAgent),
		c.Cache,
		ws.NotifyOpportunitiesUpdated,
		c.Logger,
		maxPages,
	)

	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if err := refresher.Refresh(ctx); err != nil {
			log.Printf("refresh finished with errors: %v", err)
		}
	}

	run()
	if *once {
		return
	}

	ticker := time.NewTicker(cfg.Scraper.Interval)
	defer ticker.Stop()
	for range ticker.C {
		run()
	}
}
