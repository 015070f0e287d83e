package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/archiveinsight/backend/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id                TEXT PRIMARY KEY,
	position          INTEGER NOT NULL,
	title             TEXT NOT NULL,
	user_id           TEXT NOT NULL DEFAULT '',
	year              INTEGER NOT NULL DEFAULT 0,
	branch            TEXT NOT NULL DEFAULT '',
	description       TEXT NOT NULL DEFAULT '',
	technologies      TEXT NOT NULL DEFAULT '[]',
	problem_statement TEXT NOT NULL DEFAULT '',
	objective         TEXT NOT NULL DEFAULT '',
	approach          TEXT NOT NULL DEFAULT '',
	expected_outcome  TEXT NOT NULL DEFAULT '',
	methodology       TEXT NOT NULL DEFAULT '',
	keywords          TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_projects_position ON projects(position);
`

const projectColumns = `id, title, user_id, year, branch, description, technologies,
	problem_statement, objective, approach, expected_outcome, methodology, keywords`

// SQLiteArchive is a project archive persisted in a SQLite database.
// Projects are listed in insertion order; upserting an existing id keeps its position.
type SQLiteArchive struct {
	db   *sql.DB
	path string
}

// NewSQLiteArchive opens (creating if needed) the archive database at path
func NewSQLiteArchive(path string) (*SQLiteArchive, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive schema: %w", err)
	}

	return &SQLiteArchive{db: db, path: path}, nil
}

// Close closes the database connection
func (a *SQLiteArchive) Close() error {
	return a.db.Close()
}

// Path returns the database file path
func (a *SQLiteArchive) Path() string {
	return a.path
}

// List returns every project in archive order
func (a *SQLiteArchive) List(ctx context.Context) ([]domain.ArchivedProject, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArchiveUnavailable, err)
	}
	defer rows.Close()

	projects := make([]domain.ArchivedProject, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArchiveUnavailable, err)
	}
	return projects, nil
}

// Get returns one project by id
func (a *SQLiteArchive) Get(ctx context.Context, id string) (*domain.ArchivedProject, error) {
	row := a.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert inserts project at the end of the archive, or updates it in place
func (a *SQLiteArchive) Upsert(ctx context.Context, project domain.ArchivedProject) error {
	return upsertProject(ctx, a.db, project)
}

// Seed upserts every project in order inside one transaction and returns how many were written
func (a *SQLiteArchive) Seed(ctx context.Context, projects []domain.ArchivedProject) (int, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, p := range projects {
		if err := upsertProject(ctx, tx, p); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing seed transaction: %w", err)
	}
	return len(projects), nil
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const upsertSQL = `
INSERT INTO projects (id, position, title, user_id, year, branch, description, technologies,
	problem_statement, objective, approach, expected_outcome, methodology, keywords)
VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM projects), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	title = excluded.title,
	user_id = excluded.user_id,
	year = excluded.year,
	branch = excluded.branch,
	description = excluded.description,
	technologies = excluded.technologies,
	problem_statement = excluded.problem_statement,
	objective = excluded.objective,
	approach = excluded.approach,
	expected_outcome = excluded.expected_outcome,
	methodology = excluded.methodology,
	keywords = excluded.keywords`

func upsertProject(ctx context.Context, exec execer, project domain.ArchivedProject) error {
	if project.ID == "" {
		return fmt.Errorf("%w: project id is required", domain.ErrInvalidProject)
	}

	technologies, err := encodeList(project.Technologies)
	if err != nil {
		return err
	}
	keywords, err := encodeList(project.Keywords)
	if err != nil {
		return err
	}

	_, err = exec.ExecContext(ctx, upsertSQL,
		project.ID, project.Title, project.UserID, project.Year, project.Branch, project.Description,
		technologies, project.ProblemStatement, project.Objective, project.Approach,
		project.ExpectedOutcome, project.Methodology, keywords,
	)
	if err != nil {
		return fmt.Errorf("upserting project %s: %w", project.ID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (domain.ArchivedProject, error) {
	var (
		p                      domain.ArchivedProject
		technologies, keywords string
	)
	err := row.Scan(&p.ID, &p.Title, &p.UserID, &p.Year, &p.Branch, &p.Description, &technologies,
		&p.ProblemStatement, &p.Objective, &p.Approach, &p.ExpectedOutcome, &p.Methodology, &keywords)
	if err != nil {
		return p, err
	}

	if p.Technologies, err = decodeList(technologies); err != nil {
		return p, fmt.Errorf("decoding technologies of %s: %w", p.ID, err)
	}
	if p.Keywords, err = decodeList(keywords); err != nil {
		return p, fmt.Errorf("decoding keywords of %s: %w", p.ID, err)
	}
	return p, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeList(s string) ([]string, error) {
	items := make([]string, 0)
	if s == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]string, 0)
	}
	return items, nil
}
