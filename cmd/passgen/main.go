package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen-go/internal/cli"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// .env only fills variables that are not already set.
	envErr := godotenv.Load()

	cfg, err := config.Parse(args)
	if err != nil {
		if config.IsHelp(err) {
			fmt.Fprintln(os.Stdout, err)
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	src, err := cfg.RandomSource()
	if err != nil {
		slog.Error("random source unavailable", "source", cfg.Source, "error", err)
		return 1
	}

	svc := service.NewGeneratorService(crypto.NewGenerator(src), service.WithHashParams(cfg.HashParams()))

	if cfg.Interactive || len(args) == 0 {
		app := cli.New(svc, os.Stdin, os.Stdout, cli.WithDefaultLength(cfg.Length), cli.WithHash(cfg.Hash))
		if err := app.Interactive(); err != nil {
			slog.Error("interactive session failed", "error", err)
			return 1
		}
		return 0
	}

	classes, err := cfg.CharacterClasses()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	app := cli.New(svc, os.Stdin, os.Stdout)
	if err := app.Generate(service.NewRequest(cfg.Length, classes, cfg.Hash), cfg.Count, cfg.JSON); err != nil {
		if !service.IsValidationError(err) {
			slog.Error("password generation failed", "error", err)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
