package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/hanco1/D2Cdashboard/app"
	"github.com/hanco1/D2Cdashboard/config"
	"github.com/hanco1/D2Cdashboard/database"
	"github.com/hanco1/D2Cdashboard/form"
	"github.com/hanco1/D2Cdashboard/httpx"
	"github.com/hanco1/D2Cdashboard/log"
	"github.com/hanco1/D2Cdashboard/routes"
	"github.com/hanco1/D2Cdashboard/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	a := app.App{
		Form:   form.Default(),
		Config: cfg,
	}

	if cfg.DemoMode() {
		a.Store = store.NewMemory()
	} else {
		db, err := database.Open(cfg)
		if err != nil {
			log.Fatal("main.db.open:", err)
		}
		defer db.Close()

		if cfg.AdminPassword != "" {
			if err := httpx.SeedReviewer(db, cfg.AdminPassword); err != nil {
				log.Fatal("main.db.seed_reviewer:", err)
			}
		}

		a.Store = store.NewSQLite(db)
		a.BearerServer = httpx.NewBearerServer(db, cfg)
	}

	handler := routes.Wire(a)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
