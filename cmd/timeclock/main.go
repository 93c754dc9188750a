package main

import (
	"fmt"
	"os"

	"timeclock/internal/api"
	"timeclock/internal/cli"
	"timeclock/internal/config"
	"timeclock/internal/reconcile"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	reconciler := reconcile.NewReconcilerWithEndHour(cfg.Entry.BackdateEndHour)
	apiInstance := api.New(repo, reconciler)

	app := cli.NewApp(apiInstance, cfg)
	root := cli.NewRootCommand(app)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
