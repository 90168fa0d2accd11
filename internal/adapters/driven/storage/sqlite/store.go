// Package sqlite provides the SQLite-backed document store.
//
// The document store is a queryable mirror of snippets held in the
// object store. All name filters are bound parameters; caller-supplied
// names are never interpolated into SQL text.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/stashd-io/stashd/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/stashd-io/stashd/internal/core/domain"
	"github.com/stashd-io/stashd/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.DocumentStore = (*Store)(nil)

// Store is a SQLite-based implementation of driven.DocumentStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.stashd/data/documents.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".stashd", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "documents.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Upsert stores or replaces the document for doc.Name.
// An existing name keeps its ID; new names get a fresh one.
func (s *Store) Upsert(ctx context.Context, doc *domain.SnippetDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snippets (id, name, content, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			content = excluded.content,
			updated_at = excluded.updated_at
	`, doc.ID, doc.Name, doc.Content, doc.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("upserting snippet document: %w", err)
	}

	// Reflect the persisted ID back for callers upserting an existing name.
	row := s.db.QueryRowContext(ctx, `SELECT id FROM snippets WHERE name = ?`, doc.Name)
	if err := row.Scan(&doc.ID); err != nil {
		return fmt.Errorf("reading snippet document id: %w", err)
	}
	return nil
}

// Query returns documents whose name equals the given name.
// The name is a bound parameter.
func (s *Store) Query(ctx context.Context, name string) ([]domain.SnippetDocument, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, content, updated_at
		FROM snippets WHERE name = ?
	`, name)
	if err != nil {
		return nil, fmt.Errorf("querying snippet documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.SnippetDocument
	for rows.Next() {
		var doc domain.SnippetDocument
		var updatedAt time.Time
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Content, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning snippet document: %w", err)
		}
		doc.UpdatedAt = updatedAt
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snippet documents: %w", err)
	}
	return docs, nil
}

func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_snippets.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}
