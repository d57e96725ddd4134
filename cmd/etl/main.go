package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	_ "github.com/lib/pq"

	"goexchange/adapters/postgres"
	"goexchange/adapters/region"
	"goexchange/internal/cleaner"
	"goexchange/internal/config"
	"goexchange/internal/errors"
	"goexchange/internal/etl"
	"goexchange/internal/loader"
	"goexchange/internal/logging"
	"goexchange/internal/parse"
	"goexchange/internal/report"
)

func main() {
	root := &cobra.Command{
		Use:   "etl",
		Short: "ETL for university exchange-program workbooks",
	}
	root.AddCommand(runCmd(), initDBCmd(), reportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		input      string
		file       string
		dryRun     bool
		latestOnly bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Extract, clean, and load recruitment workbooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(!dryRun)
			if err != nil {
				return err
			}
			log := logging.New(cfg.Logging.Level)
			defer log.Sync()

			parser := parse.New()
			clean := cleaner.New(cfg.Data.ExcludedInstitutions)

			var load *loader.Loader
			if !dryRun {
				db, err := sqlx.Connect("postgres", cfg.Database.URL)
				if err != nil {
					return errors.Wrap(err, "failed to connect to database")
				}
				defer db.Close()
				repo := postgres.NewUniversityRepository(db)
				load = loader.New(repo, region.NewStaticLookup(), parser, log)
			} else {
				load = loader.New(nil, region.NewStaticLookup(), parser, log)
			}

			opts := etl.Options{
				Input:      cfg.Data.RawDataDir,
				LatestOnly: latestOnly,
				DryRun:     dryRun,
				Workers:    cfg.Data.Workers,
			}
			if input != "" {
				opts.Input = input
			}
			if file != "" {
				opts.Input = file
			}

			pipeline := etl.New(clean, load, log)
			_, err = pipeline.Run(context.Background(), opts)
			return err
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "input directory of workbooks (default RAW_DATA_DIR)")
	cmd.Flags().StringVar(&file, "file", "", "process a single workbook")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "run without loading to the database")
	cmd.Flags().BoolVar(&latestOnly, "latest-only", false, "only process the latest file by filename")
	return cmd
}

func initDBCmd() *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Create database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			ctx := context.Background()
			if drop {
				log.Warn("dropping existing tables")
				if err := postgres.DropSchema(ctx, db); err != nil {
					return err
				}
			}
			if err := postgres.CreateSchema(ctx, db); err != nil {
				return err
			}
			log.Info("database tables ready")
			return nil
		},
	}

	cmd.Flags().BoolVar(&drop, "drop", false, "drop and recreate tables")
	return cmd
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print per-exam score statistics for the loaded data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(true)
			if err != nil {
				return err
			}

			db, err := sqlx.Connect("postgres", cfg.Database.URL)
			if err != nil {
				return errors.Wrap(err, "failed to connect to database")
			}
			defer db.Close()

			rep, err := report.Build(context.Background(), postgres.NewUniversityRepository(db))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		},
	}
}
