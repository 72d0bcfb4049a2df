// Command migration applies the SQL schema under db/migrations to the Postgres
// document store.
package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/matchstats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/matchstats/internal/platform/logging"
)

type migrationConfig struct {
	DBURL                   string `env:"DB_URL,required,notEmpty"`
	DBDisablePreparedBinary bool   `env:"DB_DISABLE_PREPARED_BINARY_RESULT" envDefault:"true"`
	MigrationsDir           string `env:"MIGRATIONS_DIR"`
}

// Directories tried after MIGRATIONS_DIR: repo checkout, then container image.
var defaultMigrationDirs = []string{"./db/migrations", "/app/db/migrations"}

var logger = logging.NewJSON(logging.LevelInfo).With("service", "matchstats-migration")

// migrator is the subset of *migrate.Migrate the commands drive.
type migrator interface {
	Up() error
	Steps(n int) error
	Version() (uint, bool, error)
	Force(version int) error
	Migrate(version uint) error
}

type command struct {
	usage string
	run   func(m migrator, args []string, out io.Writer) error
}

var commands = map[string]command{
	"up": {usage: "up", run: func(m migrator, _ []string, _ io.Writer) error {
		return ignoreNoChange(m.Up())
	}},
	"down": {usage: "down [steps]", run: func(m migrator, args []string, _ io.Writer) error {
		steps := uint64(1)
		if len(args) > 0 {
			var err error
			if steps, err = parseNumber("down steps", args[0], 1, math.MaxInt32); err != nil {
				return err
			}
		}
		return ignoreNoChange(m.Steps(-int(steps)))
	}},
	"version": {usage: "version", run: func(m migrator, _ []string, out io.Writer) error {
		version, dirty, err := m.Version()
		switch {
		case crerr.Is(err, migrate.ErrNilVersion):
			_, err = fmt.Fprintln(out, "version: none\ndirty: false")
			return err
		case err != nil:
			return crerr.Wrap(err, "read version")
		}
		_, err = fmt.Fprintf(out, "version: %d\ndirty: %t\n", version, dirty)
		return err
	}},
	"force": {usage: "force <version>", run: func(m migrator, args []string, _ io.Writer) error {
		v, err := requiredNumber("version", args, 0, math.MaxInt)
		if err != nil {
			return err
		}
		return m.Force(int(v))
	}},
	"goto": {usage: "goto <version>", run: func(m migrator, args []string, _ io.Writer) error {
		v, err := requiredNumber("target version", args, 0, math.MaxUint)
		if err != nil {
			return err
		}
		return ignoreNoChange(m.Migrate(uint(v)))
	}},
}

var errUnknownCommand = crerr.New("unknown command")

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}
	name := strings.ToLower(strings.TrimSpace(os.Args[1]))
	if name == "migrate" {
		name = "goto"
	}
	if _, ok := commands[name]; !ok {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	_ = godotenv.Load()

	var cfg migrationConfig
	if err := env.Parse(&cfg); err != nil {
		fatal("load config", err)
	}
	dir, err := findMigrationsDir(cfg.MigrationsDir)
	if err != nil {
		fatal("resolve migrations dir", err)
	}

	source := "file://" + filepath.ToSlash(dir)
	m, err := migrate.New(source, postgres.DSN(cfg.DBURL, cfg.DBDisablePreparedBinary))
	if err != nil {
		fatal("create migrator", err)
	}

	err = run(m, name, os.Args[2:], os.Stdout)
	if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
		logger.Warn("close migrator", "source_error", srcErr, "db_error", dbErr)
	}
	if err != nil {
		fatal("migration failed", err)
	}

	logger.Info("migration command finished", "command", name, "source", source)
	_ = logger.Sync()
}

func run(m migrator, name string, args []string, out io.Writer) error {
	cmd, ok := commands[name]
	if !ok {
		return crerr.Wrapf(errUnknownCommand, "%q", name)
	}
	return cmd.run(m, args, out)
}

func requiredNumber(what string, args []string, lo, hi uint64) (uint64, error) {
	if len(args) == 0 {
		return 0, crerr.Newf("%s argument is required", what)
	}
	return parseNumber(what, args[0], lo, hi)
}

func parseNumber(what, raw string, lo, hi uint64) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, crerr.Wrapf(err, "invalid %s %q", what, raw)
	}
	if v < lo || v > hi {
		return 0, crerr.Newf("%s %d out of range [%d, %d]", what, v, lo, hi)
	}
	return v, nil
}

func ignoreNoChange(err error) error {
	if crerr.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func findMigrationsDir(configured string) (string, error) {
	candidates := defaultMigrationDirs
	if configured = strings.TrimSpace(configured); configured != "" {
		candidates = append([]string{configured}, candidates...)
	}

	for _, c := range candidates {
		abs, err := filepath.Abs(c)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", crerr.Newf("no migration directory among %v", candidates)
}

func fatal(msg string, err error) {
	logger.Error(msg, "error", err)
	_ = logger.Sync()
	os.Exit(1)
}

func printUsage(w io.Writer) {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(w, "usage: %s <command> [args]\n\ncommands:\n", name)
	for _, c := range []string{"up", "down", "version", "force", "goto"} {
		fmt.Fprintf(w, "  %s %s\n", name, commands[c].usage)
	}
}
