/*
Package catalog keeps named projection scenarios in memory.

PURPOSE:
  The API and the dashboard need the same list of scenarios: builtin
  presets plus whatever the operator keeps in a YAML file next to the
  binary. The catalog holds both behind one mutex and can reload the file
  without dropping the presets.

  There is no persistence layer here. The scenario file belongs to the
  operator; the catalog only reads it.

FILE SCHEMA:
  scenarios:
    - id: expansion-2027
      name: Expansion 2027
      description: Double hiring from year three
      plan:
        forecast_period: 6
        ramp_years: 3
        hires_per_year: [10, 10, 20, 20, 20, 20]
        revenue_goal: 220000

CONCURRENCY:
  All methods are safe for concurrent use. List returns copies in a
  stable order: builtins first, then file entries in load order. File
  entries shadow builtins with the same id.

USAGE:
  cat := catalog.NewWithDefaults()
  if err := cat.LoadFile("scenarios.yaml"); err != nil { ... }
  for _, e := range cat.List() { ... }

SEE ALSO:
  - watch.go: Reloads the file when it changes
  - factory: Parses the plan inside each entry
*/
package catalog

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/warp/cohort-engine/cohort"
	"github.com/warp/cohort-engine/factory"
)

// =============================================================================
// ENTRY
// =============================================================================

// Entry is one named scenario: identity plus a validated engine config.
type Entry struct {
	ID          string
	Name        string
	Description string
	Builtin     bool
	Config      cohort.Config
}

// clone returns a copy whose config does not alias the catalog's slices.
func (e Entry) clone() Entry {
	e.Config.HiresPerYear = append([]float64(nil), e.Config.HiresPerYear...)
	return e
}

// =============================================================================
// CATALOG
// =============================================================================

type Catalog struct {
	mu      sync.RWMutex
	planner *factory.PlanFactory
	builtin []Entry // seeded once, survives reloads
	loaded  []Entry // replaced wholesale by LoadFile
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{planner: factory.NewPlanFactory()}
}

// NewWithDefaults creates a catalog seeded with the builtin preset plans.
func NewWithDefaults() *Catalog {
	c := New()
	for _, pj := range []factory.PlanJSON{
		factory.BaselineGrowthPlan(),
		factory.SigmoidRampPlan(),
		factory.HighAttritionPlan(),
		factory.AggressiveHiringPlan(),
		factory.SteadyStatePlan(),
	} {
		cfg, err := c.planner.FromJSON(pj)
		if err != nil {
			// Presets are covered by tests; a broken one is a programming
			// error, not a runtime condition.
			panic(fmt.Sprintf("builtin plan %q invalid: %v", pj.ID, err))
		}
		c.builtin = append(c.builtin, Entry{
			ID:          pj.ID,
			Name:        pj.Name,
			Description: pj.Description,
			Builtin:     true,
			Config:      cfg,
		})
	}
	return c
}

// Put adds a scenario or replaces the loaded entry with the same id.
// Builtins are never overwritten in place; a put entry shadows them.
func (c *Catalog) Put(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e.Builtin = false
	for k := range c.loaded {
		if c.loaded[k].ID == e.ID {
			c.loaded[k] = e.clone()
			return
		}
	}
	c.loaded = append(c.loaded, e.clone())
}

// Get returns the scenario with the given id. Loaded entries shadow
// builtins. The returned entry is a copy.
func (c *Catalog) Get(id string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.loaded {
		if e.ID == id {
			return e.clone(), true
		}
	}
	for _, e := range c.builtin {
		if e.ID == id {
			return e.clone(), true
		}
	}
	return Entry{}, false
}

// List returns every scenario: builtins first (minus shadowed ones), then
// loaded entries in load order. All entries are copies.
func (c *Catalog) List() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	shadowed := make(map[string]bool, len(c.loaded))
	for _, e := range c.loaded {
		shadowed[e.ID] = true
	}

	out := make([]Entry, 0, len(c.builtin)+len(c.loaded))
	for _, e := range c.builtin {
		if !shadowed[e.ID] {
			out = append(out, e.clone())
		}
	}
	for _, e := range c.loaded {
		out = append(out, e.clone())
	}
	return out
}

// =============================================================================
// FILE LOADING
// =============================================================================

type fileSchema struct {
	Scenarios []scenarioYAML `yaml:"scenarios"`
}

type scenarioYAML struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Plan        factory.PlanJSON `yaml:"plan"`
}

// LoadFile replaces the loaded entries with the contents of a scenario
// YAML file. The load is all-or-nothing: any unreadable, unparsable, or
// invalid entry rejects the whole file and the previous entries stay.
// Builtins are never touched.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scenario file: %w", err)
	}

	var file fileSchema
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(file.Scenarios))
	seen := make(map[string]bool, len(file.Scenarios))
	for k, sc := range file.Scenarios {
		if sc.ID == "" {
			return fmt.Errorf("scenario %d in %s: missing id", k, path)
		}
		if seen[sc.ID] {
			return fmt.Errorf("scenario %d in %s: duplicate id %q", k, path, sc.ID)
		}
		seen[sc.ID] = true

		cfg, err := c.planner.FromJSON(sc.Plan)
		if err != nil {
			return fmt.Errorf("scenario %q in %s: %w", sc.ID, path, err)
		}
		entries = append(entries, Entry{
			ID:          sc.ID,
			Name:        sc.Name,
			Description: sc.Description,
			Config:      cfg,
		})
	}

	c.mu.Lock()
	c.loaded = entries
	c.mu.Unlock()
	return nil
}
