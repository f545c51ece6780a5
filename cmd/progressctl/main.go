// cmd/progressctl/main.go
//
// progressctl inspects and resets stored learner progress.
//
//	progressctl show <user>   print the stored record as JSON
//	progressctl last          print the last active user
//	progressctl reset <user>  delete the record and the last-active pointer
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go_verb_master/internal/config"
	"go_verb_master/internal/model"
	"go_verb_master/internal/repository"

	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	configDir := os.Getenv("APP_CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect database: %v\n", err)
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	repo := repository.NewProgressRepository(repository.NewGormKVRepository())
	ctx := context.Background()

	if err := dispatch(ctx, repo, db, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			usage()
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "progressctl: %v\n", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func dispatch(ctx context.Context, repo repository.ProgressRepository, db *gorm.DB, args []string) error {
	switch args[0] {
	case "show":
		if len(args) != 2 {
			return errUsage
		}
		p, err := repo.Load(ctx, db, args[1])
		if err != nil {
			return err
		}
		out, err := repository.EncodeProgress(p)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "last":
		user, err := repo.LastActiveUser(ctx, db)
		if errors.Is(err, model.ErrNotFound) {
			fmt.Println("(none)")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(user)
	case "reset":
		if len(args) != 2 {
			return errUsage
		}
		if err := repo.Delete(ctx, db, args[1]); err != nil {
			return err
		}
		if err := repo.ClearLastActiveUser(ctx, db, args[1]); err != nil {
			return err
		}
		fmt.Printf("progress of %q deleted\n", args[1])
	default:
		return errUsage
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: progressctl show <user> | last | reset <user>")
}
