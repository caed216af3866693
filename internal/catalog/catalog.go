package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/balkashynov/wellbeing/internal/models"
)

// All is the category wildcard
const All = "All"

//go:embed seed.yaml
var defaultSeed []byte

var ErrUnknownCategory = errors.New("unknown category")

// Seed is the on-disk shape of the reference data
type Seed struct {
	Categories  []string                  `yaml:"categories"`
	Resources   []models.Resource         `yaml:"resources"`
	Coaches     []models.Coach            `yaml:"coaches"`
	Departments []models.DepartmentMetric `yaml:"departments"`
}

// Catalog holds the read-only resources, coaches and department metrics.
// Accessors return copies so callers cannot mutate the seed.
type Catalog struct {
	seed Seed
}

// Default returns the catalog built from the embedded seed
func Default() (*Catalog, error) {
	return Parse(defaultSeed)
}

// Load reads a seed file; an empty path selects the embedded seed
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates seed YAML
func Parse(data []byte) (*Catalog, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	if err := seed.validate(); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return &Catalog{seed: seed}, nil
}

func (s Seed) validate() error {
	known := make(map[string]bool, len(s.Categories))
	for _, c := range s.Categories {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("empty category name")
		}
		if strings.EqualFold(c, All) {
			return fmt.Errorf("%q is reserved", All)
		}
		known[c] = true
	}

	for i, r := range s.Resources {
		if strings.TrimSpace(r.Title) == "" {
			return fmt.Errorf("resource %d has no title", i+1)
		}
		if !known[r.Category] {
			return fmt.Errorf("resource %q: %w %q", r.Title, ErrUnknownCategory, r.Category)
		}
	}

	seen := make(map[string]bool, len(s.Coaches))
	for i, c := range s.Coaches {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("coach %d has no name", i+1)
		}
		key := strings.ToLower(c.Name)
		if seen[key] {
			return fmt.Errorf("duplicate coach %q", c.Name)
		}
		seen[key] = true
	}

	for i, d := range s.Departments {
		if strings.TrimSpace(d.Department) == "" {
			return fmt.Errorf("department %d has no name", i+1)
		}
	}
	return nil
}

// Categories returns the configured categories in seed order
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.seed.Categories...)
}

// CategoryOptions returns the selector choices: the wildcard then every category
func (c *Catalog) CategoryOptions() []string {
	return append([]string{All}, c.seed.Categories...)
}

// NormalizeCategory maps user input onto a configured category name,
// ignoring case. An empty input means All.
func (c *Catalog) NormalizeCategory(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, All) {
		return All, nil
	}
	for _, cat := range c.seed.Categories {
		if strings.EqualFold(cat, input) {
			return cat, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownCategory, input)
}

// Resources returns the resources whose category equals the given one;
// All matches every entry
func (c *Catalog) Resources(category string) ([]models.Resource, error) {
	category, err := c.NormalizeCategory(category)
	if err != nil {
		return nil, err
	}

	filtered := []models.Resource{}
	for _, r := range c.seed.Resources {
		if category == All || r.Category == category {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Coaches returns every coach in seed order
func (c *Catalog) Coaches() []models.Coach {
	return append([]models.Coach(nil), c.seed.Coaches...)
}

// CoachNames returns the names offered by the coach selector
func (c *Catalog) CoachNames() []string {
	names := make([]string, 0, len(c.seed.Coaches))
	for _, coach := range c.seed.Coaches {
		names = append(names, coach.Name)
	}
	return names
}

// CoachByName finds a coach, ignoring case
func (c *Catalog) CoachByName(name string) (models.Coach, bool) {
	name = strings.TrimSpace(name)
	for _, coach := range c.seed.Coaches {
		if strings.EqualFold(coach.Name, name) {
			return coach, true
		}
	}
	return models.Coach{}, false
}

// Departments returns the illustrative department metrics
func (c *Catalog) Departments() []models.DepartmentMetric {
	return append([]models.DepartmentMetric(nil), c.seed.Departments...)
}
