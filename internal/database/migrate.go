package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/sublearn/sublearn/schemas"
)

// Migrate applies the embedded schema files for the given driver in filename
// order. Every statement uses IF NOT EXISTS, so running at each startup is
// safe.
func Migrate(ctx context.Context, db *sqlx.DB, driver string) error {
	pattern := fmt.Sprintf("migrations/%s/*.sql", driver)
	files, err := fs.Glob(schemas.Migrations, pattern)
	if err != nil {
		return fmt.Errorf("fs.Glob(%s) > %w", pattern, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations for driver %q", driver)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := schemas.Migrations.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read migration %s > %w", file, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s > %w", file, err)
		}
	}
	return nil
}
