// Package catalog serves the portfolio's read-only records: work
// experience, projects and skills. Records are authored in YAML, embedded in
// the binary, and loaded into an in-memory SQLite database for querying.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embedded []byte

// EmbeddedName labels the built-in document in errors and logs.
const EmbeddedName = "content.yaml (embedded)"

// Experience is one position in the work history.
type Experience struct {
	ID           int      `yaml:"id" json:"id"`
	Role         string   `yaml:"role" json:"role"`
	Company      string   `yaml:"company" json:"company"`
	Period       string   `yaml:"period" json:"period"`
	Description  string   `yaml:"description" json:"description"`
	Achievements []string `yaml:"achievements" json:"achievements"`
	Technologies []string `yaml:"technologies" json:"technologies"`
}

// Links are a project's outbound URLs.
type Links struct {
	Demo   string `yaml:"demo" json:"demo"`
	GitHub string `yaml:"github" json:"github"`
}

// Project is a portfolio entry.
type Project struct {
	ID           int      `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Image        string   `yaml:"image" json:"image"`
	Category     string   `yaml:"category" json:"category"`
	Links        Links    `yaml:"links" json:"links"`
}

// SkillCategory groups related skills.
type SkillCategory struct {
	ID       int      `yaml:"id" json:"id"`
	Category string   `yaml:"category" json:"category"`
	Skills   []string `yaml:"skills" json:"skills"`
}

// Content is a whole catalog document.
type Content struct {
	Experiences []Experience    `yaml:"experiences"`
	Projects    []Project       `yaml:"projects"`
	Skills      []SkillCategory `yaml:"skills"`
}

// Default parses the embedded document.
func Default() (*Content, error) {
	return Parse(EmbeddedName, embedded)
}

// LoadFile reads and parses a document from disk.
func LoadFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return Parse(path, data)
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse decodes and validates a document. Unknown fields are rejected so a
// typo in a hand-edited file does not silently drop data.
func Parse(path string, data []byte) (*Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: path, Err: errors.New("document is empty")}
		}
		return nil, &ParseError{Path: path, Line: extractLine(err), Err: err}
	}
	if err := c.validate(); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &c, nil
}

func (c *Content) validate() error {
	seen := make(map[int]bool)
	for i, e := range c.Experiences {
		if e.ID <= 0 || e.Role == "" || e.Company == "" {
			return fmt.Errorf("experiences[%d]: id, role and company are required", i)
		}
		if seen[e.ID] {
			return fmt.Errorf("experiences[%d]: duplicate id %d", i, e.ID)
		}
		seen[e.ID] = true
	}

	clear(seen)
	for i, p := range c.Projects {
		if p.ID <= 0 || p.Title == "" || p.Category == "" {
			return fmt.Errorf("projects[%d]: id, title and category are required", i)
		}
		if p.Category == AllCategories {
			return fmt.Errorf("projects[%d]: category %q is reserved", i, AllCategories)
		}
		if seen[p.ID] {
			return fmt.Errorf("projects[%d]: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = true
	}

	clear(seen)
	for i, s := range c.Skills {
		if s.ID <= 0 || s.Category == "" {
			return fmt.Errorf("skills[%d]: id and category are required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("skills[%d]: duplicate id %d", i, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
