package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/ManuelReschke/featurehub/internal/pkg/env"
)

// migrator is the subset of *migrate.Migrate the commands need.
type migrator interface {
	Up() error
	Steps(n int) error
	Migrate(version uint) error
	Version() (version uint, dirty bool, err error)
}

var errUsage = errors.New("usage")

func main() {
	env.SetupEnvFile()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	m, err := migrate.New("file://"+env.GetEnv("MIGRATIONS_PATH", "migrations"), databaseURL())
	if err != nil {
		log.Fatalf("init migrations: %v", err)
	}
	defer func() {
		if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
			log.Printf("close migrations: %v, %v", sourceErr, dbErr)
		}
	}()

	msg, err := run(m, os.Args[1:])
	if errors.Is(err, errUsage) {
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
	log.Println(msg)
}

func databaseURL() string {
	user := env.GetEnv("DB_USER", "featurehub")
	host := env.GetEnv("DB_HOST", "db")
	port := env.GetEnv("DB_PORT", "3306")
	name := env.GetEnv("DB_NAME", "featurehub_db")

	log.Printf("migrating %s@%s:%s/%s", user, host, port, name)
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s?multiStatements=true",
		user, env.GetEnv("DB_PASSWORD", "featurehub"), host, port, name)
}

// run executes one CLI command and returns the line to report on success.
func run(m migrator, args []string) (string, error) {
	if len(args) == 0 {
		return "", errUsage
	}

	switch args[0] {
	case "up":
		err := m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			return "database is up to date", nil
		}
		if err != nil {
			return "", err
		}
		return "migrations applied", nil

	case "down":
		if err := m.Steps(-1); err != nil {
			return "", err
		}
		return "rolled back the last migration", nil

	case "goto":
		if len(args) < 2 {
			return "", fmt.Errorf("missing version number: %w", errUsage)
		}
		version, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid version number %q: %w", args[1], err)
		}
		err = m.Migrate(uint(version))
		if errors.Is(err, migrate.ErrNoChange) {
			return fmt.Sprintf("database is already at version %d", version), nil
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("migrated to version %d", version), nil

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return "no migrations applied yet", nil
		}
		if err != nil {
			return "", err
		}
		if dirty {
			return fmt.Sprintf("version %d (dirty)", version), nil
		}
		return fmt.Sprintf("version %d", version), nil

	default:
		return "", errUsage
	}
}

func printUsage() {
	fmt.Println("Usage: go run cmd/migrate/main.go [command]")
	fmt.Println("Commands:")
	fmt.Println("  up      - apply all pending migrations")
	fmt.Println("  down    - roll back the last migration")
	fmt.Println("  goto N  - migrate to version N")
	fmt.Println("  version - show the current migration version")
}
