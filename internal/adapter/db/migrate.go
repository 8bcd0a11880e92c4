package db

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrations embed.FS

// Migrate applies the schema files for the connection's driver in name order.
// The files are idempotent, so running it twice is harmless.
func Migrate(db *sqlx.DB) error {
	dir := path.Join("migrations", db.DriverName())
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return fmt.Errorf("no migrations for driver %q: %w", db.DriverName(), err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := migrations.ReadFile(path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		zap.L().Debug("applied migration", zap.String("file", name))
	}
	return nil
}
