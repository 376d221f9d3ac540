package schema

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/logger"
)

// Migrator applies the registry's declarations to a live database. Every
// statement is written check-before-create / ignore-on-drop, so each
// direction is safe to re-run.
type Migrator struct {
	db       *sql.DB
	registry *Registry
}

func NewMigrator(db *sql.DB, registry *Registry) *Migrator {
	return &Migrator{db: db, registry: registry}
}

// Up creates every missing table and index. Running it against a database
// that already has them is a no-op.
func (m *Migrator) Up(ctx context.Context) error {
	for _, model := range m.registry.All() {
		logger.Info("Ensuring table", "model", model.Name, "table", model.Table)
		if _, err := m.db.ExecContext(ctx, model.CreateSQL); err != nil {
			return fmt.Errorf("create table %s: %w", model.Table, err)
		}
		for _, idx := range model.Indexes {
			logger.Info("Ensuring index", "table", model.Table, "index", idx.Name)
			if _, err := m.db.ExecContext(ctx, idx.CreateSQL); err != nil {
				return fmt.Errorf("create index %s: %w", idx.Name, err)
			}
		}
	}
	return nil
}

// Down drops every declared index and table. Missing objects are ignored.
func (m *Migrator) Down(ctx context.Context) error {
	for _, model := range m.registry.All() {
		for _, idx := range model.Indexes {
			logger.Info("Dropping index", "table", model.Table, "index", idx.Name)
			if _, err := m.db.ExecContext(ctx, idx.DropSQL); err != nil {
				return fmt.Errorf("drop index %s: %w", idx.Name, err)
			}
		}
		logger.Info("Dropping table", "model", model.Name, "table", model.Table)
		if _, err := m.db.ExecContext(ctx, model.DropSQL); err != nil {
			return fmt.Errorf("drop table %s: %w", model.Table, err)
		}
	}
	return nil
}

// TableStatus describes one table's presence and that of its indexes.
type TableStatus struct {
	Model        string
	Table        string
	TableExists  bool
	IndexesFound map[string]bool
}

// Status reports which declared tables and indexes exist.
func (m *Migrator) Status(ctx context.Context) ([]TableStatus, error) {
	out := make([]TableStatus, 0)
	for _, model := range m.registry.All() {
		st := TableStatus{
			Model:        model.Name,
			Table:        model.Table,
			IndexesFound: make(map[string]bool),
		}

		err := m.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
			model.Table).Scan(&st.TableExists)
		if err != nil {
			return nil, fmt.Errorf("check table %s: %w", model.Table, err)
		}

		for _, idx := range model.Indexes {
			var found bool
			err := m.db.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = $1)`,
				idx.Name).Scan(&found)
			if err != nil {
				return nil, fmt.Errorf("check index %s: %w", idx.Name, err)
			}
			st.IndexesFound[idx.Name] = found
		}
		out = append(out, st)
	}
	return out, nil
}
