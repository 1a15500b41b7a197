package cmd

import (
	"context"
	"database/sql"
	"fmt"

	migrations "github.com/frahmantamala/grievance-portal/db"
	"github.com/frahmantamala/grievance-portal/internal"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const driverName = "pgx"

// initDB opens the shared connection pool used by both sqlx and gorm.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	dbConn, err := sqlx.Connect(driverName, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return dbConn, nil
}

// openGorm wraps an existing pool so gorm and sqlx share connections.
func openGorm(sqlDB *sql.DB) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}
	return gdb, nil
}

// runMigrations applies (or rolls back one step of) the embedded goose migrations.
func runMigrations(ctx context.Context, sqlDB *sql.DB, rollback bool) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetTableName("schema_migrations")
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if rollback {
		if err := goose.DownContext(ctx, sqlDB, migrations.MigrationsDir); err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		return nil
	}

	if err := goose.UpContext(ctx, sqlDB, migrations.MigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
