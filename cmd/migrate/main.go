package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/yourusername/trivia-questions/internal/config"
	"github.com/yourusername/trivia-questions/pkg/database"
)

const usage = `Usage: migrate [-config path] <command>

Commands:
  up             применить все миграции
  down           откатить все миграции
  steps N        применить (N > 0) или откатить (N < 0) N миграций
  force V        записать версию V и снять флаг dirty (после неудачной миграции)
  version        показать текущую версию
`

func main() {
	configPath := flag.String("config", "config/config.yaml", "путь к файлу конфигурации")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Database.IsSQLite() {
		log.Fatal("SQL migrations are PostgreSQL only; SQLite schema is created by the server on startup")
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	m, err := database.NewMigrator(db, cfg.Database.MigrationsPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(m, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

// run выполняет одну команду migrate
func run(m *migrate.Migrate, args []string) error {
	var err error
	switch args[0] {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "steps":
		n, convErr := intArg(args)
		if convErr != nil {
			return convErr
		}
		err = m.Steps(n)
	case "force":
		v, convErr := intArg(args)
		if convErr != nil {
			return convErr
		}
		fmt.Printf("Forcing migration version to %d to clean dirty state...\n", v)
		err = m.Force(v)
	case "version":
		version, dirty, vErr := m.Version()
		if errors.Is(vErr, migrate.ErrNilVersion) {
			fmt.Println("No migrations applied yet")
			return nil
		}
		if vErr != nil {
			return vErr
		}
		fmt.Printf("Version: %d (dirty: %t)\n", version, dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n\n%s", args[0], usage)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("No change: database is already up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", args[0], err)
	}
	fmt.Printf("Success! %s done.\n", args[0])
	return nil
}

// intArg читает числовой аргумент команды
func intArg(args []string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("command %q requires a numeric argument", args[0])
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", args[1], err)
	}
	return n, nil
}
