package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"goexchange/adapters/postgres"
	"goexchange/api"
	"goexchange/internal/config"
	"goexchange/internal/errors"
	"goexchange/internal/logging"
	"goexchange/internal/parse"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(true)
	if err != nil {
		return err
	}
	log := logging.New(cfg.Logging.Level)
	defer log.Sync()

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}
	defer db.Close()

	repo := postgres.NewUniversityRepository(db)
	app := api.NewApp(repo, parse.New(), log)

	addr := ":" + cfg.Server.Port
	log.Infow("serving", "addr", addr)
	return http.ListenAndServe(addr, app.Router())
}
