// Package migrations applies versioned SQL schema files at startup.
package migrations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/db"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/logger"
)

// Migrator applies SQL migration files exactly once each, tracked in the
// schema_migrations table by the numeric prefix of the file name.
type Migrator struct {
	db  *db.PostgresDB
	log zerolog.Logger
}

// NewMigrator creates a new Migrator
func NewMigrator(database *db.PostgresDB) *Migrator {
	return &Migrator{
		db:  database,
		log: logger.WithComponent("migrator"),
	}
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	_, err := m.db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (m *Migrator) isApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	err := m.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// ApplyFile runs one migration file inside a transaction and records its
// version. Already-applied versions are skipped.
func (m *Migrator) ApplyFile(ctx context.Context, filePath string) error {
	if err := m.ensureVersionTable(ctx); err != nil {
		return err
	}

	filename := filepath.Base(filePath)
	version := strings.Split(filename, "_")[0]

	applied, err := m.isApplied(ctx, version)
	if err != nil {
		return err
	}
	if applied {
		m.log.Debug().Str("file", filename).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	err = m.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("error executing migration %s: %w", filename, err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
			version, time.Now()); err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	m.log.Info().Str("file", filename).Msg("Migration applied")
	return nil
}

// ApplyDirectory runs every .sql file in the directory in lexical order
func (m *Migrator) ApplyDirectory(ctx context.Context, dirPath string) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	for _, file := range sqlFiles {
		if err := m.ApplyFile(ctx, filepath.Join(dirPath, file)); err != nil {
			return err
		}
	}

	return nil
}
