package database

import (
	"database/sql"
	"embed"
	"fmt"

	"desert-war-service/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var EmbedMigrations embed.FS

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// NewDB открывает соединение с БД согласно DB_DRIVER и применяет миграции.
func NewDB(cfg config.Config) (*sql.DB, error) {
	switch cfg.DBDriver {
	case DriverSQLite:
		return NewSQLiteDB(cfg.SQLitePath)
	case DriverPostgres, "":
		return NewPostgresDB(cfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

func NewPostgresDB(cfg config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	if err = MigrateDB(db, DriverPostgres); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// NewSQLiteDB открывает встроенную SQLite. Путь ":memory:" подходит для тестов:
// пул ограничен одним соединением, чтобы все запросы видели одну и ту же БД.
func NewSQLiteDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err = MigrateDB(db, DriverSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func MigrateDB(db *sql.DB, driver string) error {
	goose.SetBaseFS(EmbedMigrations)

	dialect, dir := "postgres", "migrations/postgres"
	if driver == DriverSQLite {
		dialect, dir = "sqlite3", "migrations/sqlite"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return err
	}

	return nil
}
