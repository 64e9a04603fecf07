// Package migration tracks and applies schema migrations. Each migration is
// registered in an init function and recorded in the admin_migrations table
// once applied, so reruns are idempotent.
package migration

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
)

// Migration is one reversible schema change. Name must be unique and is
// usually date-prefixed so lexical order matches creation order.
type Migration struct {
	Name string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

type record struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:191"`
	AppliedAt time.Time
}

func (record) TableName() string { return "admin_migrations" }

var registered []Migration

// Register adds a migration to the global set. Called from init functions
// in the migrations package.
func Register(m Migration) {
	registered = append(registered, m)
}

// Runner applies and rolls back the registered migrations against one DB.
type Runner struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Runner {
	return &Runner{db: db}
}

func (r *Runner) ensureTable() error {
	return r.db.AutoMigrate(&record{})
}

func (r *Runner) applied() (map[string]bool, error) {
	var rows []record
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	done := make(map[string]bool, len(rows))
	for _, row := range rows {
		done[row.Name] = true
	}
	return done, nil
}

func sorted() []Migration {
	ms := make([]Migration, len(registered))
	copy(ms, registered)
	sort.Slice(ms, func(i, j int) bool { return ms[i].Name < ms[j].Name })
	return ms
}

// Run applies every pending migration in name order.
func (r *Runner) Run() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	done, err := r.applied()
	if err != nil {
		return fmt.Errorf("migration: read applied: %w", err)
	}

	for _, m := range sorted() {
		if done[m.Name] {
			continue
		}

		if err := m.Up(r.db); err != nil {
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		if err := r.db.Create(&record{Name: m.Name, AppliedAt: time.Now()}).Error; err != nil {
			return fmt.Errorf("migration %s: record: %w", m.Name, err)
		}
		logger.Info("migration applied", "name", m.Name)
	}

	return nil
}

// Rollback reverts the most recently applied migration.
func (r *Runner) Rollback() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	var last record
	if err := r.db.Order("id DESC").First(&last).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Info("no migrations to roll back")
			return nil
		}
		return err
	}

	for _, m := range registered {
		if m.Name != last.Name {
			continue
		}
		if m.Down == nil {
			return fmt.Errorf("migration %s has no rollback", m.Name)
		}
		if err := m.Down(r.db); err != nil {
			return fmt.Errorf("rollback %s: %w", m.Name, err)
		}
		if err := r.db.Delete(&last).Error; err != nil {
			return err
		}
		logger.Info("migration rolled back", "name", m.Name)
		return nil
	}

	return fmt.Errorf("migration %s is recorded but not registered", last.Name)
}

// StatusRow describes one migration and whether it has been applied.
type StatusRow struct {
	Name    string
	Applied bool
}

// Status lists all registered migrations with their applied state.
func (r *Runner) Status() ([]StatusRow, error) {
	if err := r.ensureTable(); err != nil {
		return nil, err
	}

	done, err := r.applied()
	if err != nil {
		return nil, err
	}

	var rows []StatusRow
	for _, m := range sorted() {
		rows = append(rows, StatusRow{Name: m.Name, Applied: done[m.Name]})
	}
	return rows, nil
}
