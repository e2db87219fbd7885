package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/acme/dashboard/internal/infrastructure/config"
	"github.com/acme/dashboard/internal/infrastructure/migration"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: migrate [flags] <command>

Commands:
  up              apply all pending migrations
  down            roll back the most recent migration
  version         print the current schema version
  create <name>   create an empty up/down migration pair

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dir := flag.String("dir", "migrations", "migrations directory")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	command := flag.Arg(0)
	if command == "create" {
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "create needs a migration name")
			os.Exit(2)
		}
		up, down, err := migration.Create(*dir, flag.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "create migration: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(up)
		fmt.Println(down)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	runner := migration.NewRunner(*dir, cfg.Database.URL())
	switch command {
	case "up":
		err = runner.Up()
	case "down":
		err = runner.Down()
	case "version":
		var v uint
		var dirty bool
		v, dirty, err = runner.Version()
		if err == nil {
			fmt.Printf("version=%d dirty=%v\n", v, dirty)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", command)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", command, err)
		os.Exit(1)
	}
}
