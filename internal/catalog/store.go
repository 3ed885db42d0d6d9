package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// AllCategories is the pseudo-category that matches every project.
const AllCategories = "All"

const schema = `
CREATE TABLE experiences (
	id           INTEGER PRIMARY KEY,
	role         TEXT NOT NULL,
	company      TEXT NOT NULL,
	period       TEXT NOT NULL,
	description  TEXT NOT NULL,
	achievements TEXT NOT NULL,
	technologies TEXT NOT NULL
);
CREATE TABLE projects (
	id           INTEGER PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL,
	technologies TEXT NOT NULL,
	image        TEXT NOT NULL,
	category     TEXT NOT NULL,
	demo_url     TEXT NOT NULL,
	github_url   TEXT NOT NULL
);
CREATE INDEX projects_category ON projects(category);
CREATE TABLE skills (
	id       INTEGER PRIMARY KEY,
	category TEXT NOT NULL,
	skills   TEXT NOT NULL
);`

// Store holds the catalog in an in-memory SQLite database. It is safe for
// concurrent use; Load swaps the whole catalog in one transaction so readers
// never see a half-replaced set.
type Store struct {
	db *sql.DB
}

// Open creates an empty store.
func Open(ctx context.Context) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Each connection to :memory: is its own database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Load replaces the stored catalog with c.
func (s *Store) Load(ctx context.Context, c *Content) (err error) {
	if c == nil {
		return errors.New("catalog: nil content")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, table := range []string{"experiences", "projects", "skills"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, e := range c.Experiences {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO experiences (id, role, company, period, description, achievements, technologies)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Role, e.Company, e.Period, e.Description, encodeList(e.Achievements), encodeList(e.Technologies))
		if err != nil {
			return fmt.Errorf("insert experience %d: %w", e.ID, err)
		}
	}
	for _, p := range c.Projects {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO projects (id, title, description, technologies, image, category, demo_url, github_url)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Title, p.Description, encodeList(p.Technologies), p.Image, p.Category, p.Links.Demo, p.Links.GitHub)
		if err != nil {
			return fmt.Errorf("insert project %d: %w", p.ID, err)
		}
	}
	for _, sk := range c.Skills {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO skills (id, category, skills) VALUES (?, ?, ?)`,
			sk.ID, sk.Category, encodeList(sk.Skills))
		if err != nil {
			return fmt.Errorf("insert skill category %d: %w", sk.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog: %w", err)
	}
	return nil
}

// Experiences returns the work history ordered by id.
func (s *Store) Experiences(ctx context.Context) ([]Experience, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, role, company, period, description, achievements, technologies
		 FROM experiences ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Experience{}
	for rows.Next() {
		var (
			e                  Experience
			achievements, tech string
		)
		if err := rows.Scan(&e.ID, &e.Role, &e.Company, &e.Period, &e.Description, &achievements, &tech); err != nil {
			return nil, err
		}
		if e.Achievements, err = decodeList(achievements); err != nil {
			return nil, err
		}
		if e.Technologies, err = decodeList(tech); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Projects returns projects ordered by id. An empty category or
// AllCategories returns every project; any other value matches exactly.
func (s *Store) Projects(ctx context.Context, category string) ([]Project, error) {
	query := `SELECT id, title, description, technologies, image, category, demo_url, github_url FROM projects`
	var args []any
	if category != "" && category != AllCategories {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Project{}
	for rows.Next() {
		var (
			p    Project
			tech string
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &tech, &p.Image, &p.Category, &p.Links.Demo, &p.Links.GitHub); err != nil {
			return nil, err
		}
		if p.Technologies, err = decodeList(tech); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Categories lists AllCategories followed by each distinct project category
// ordered by the lowest project id carrying it.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category FROM projects GROUP BY category ORDER BY MIN(id)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{AllCategories}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Skills returns the skill categories ordered by id.
func (s *Store) Skills(ctx context.Context) ([]SkillCategory, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, category, skills FROM skills ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SkillCategory{}
	for rows.Next() {
		var (
			sk     SkillCategory
			skills string
		)
		if err := rows.Scan(&sk.ID, &sk.Category, &skills); err != nil {
			return nil, err
		}
		if sk.Skills, err = decodeList(skills); err != nil {
			return nil, err
		}
		out = append(out, sk)
	}
	return out, rows.Err()
}

// Close releases the database. The catalog is lost.
func (s *Store) Close() error {
	return s.db.Close()
}

func encodeList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return string(b)
}

func decodeList(s string) ([]string, error) {
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}
