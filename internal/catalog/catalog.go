package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("neighborhood not found")
	ErrEmpty    = errors.New("catalog is empty")
)

// Neighborhood is a read-only catalog record compared by the scoring engine.
type Neighborhood struct {
	Name             string               `json:"name" yaml:"name"`
	Objective        map[Dimension]Metric `json:"objective" yaml:"objective"`
	Perception       map[Dimension]string `json:"perception" yaml:"perception"`
	RedditSampleSize int                  `json:"reddit_sample_size" yaml:"reddit_sample_size"`
	TradeoffNote     string               `json:"tradeoff_note" yaml:"tradeoff_note"`
}

// Metric returns the objective value for d. A dimension absent from the
// objective map is treated as unknown.
func (n Neighborhood) Metric(d Dimension) Metric {
	return n.Objective[d]
}

// Catalog is an immutable, name-keyed set of neighborhoods in declaration order.
type Catalog struct {
	items  []Neighborhood
	byName map[string]int
}

// New builds a Catalog. Names must be unique and non-empty.
func New(items []Neighborhood) (*Catalog, error) {
	c := &Catalog{
		items:  make([]Neighborhood, 0, len(items)),
		byName: make(map[string]int, len(items)),
	}
	for _, n := range items {
		if n.Name == "" {
			return nil, fmt.Errorf("neighborhood %d: name required", len(c.items))
		}
		if _, dup := c.byName[n.Name]; dup {
			return nil, fmt.Errorf("duplicate neighborhood %q", n.Name)
		}
		for d, m := range n.Objective {
			if !d.Valid() {
				return nil, fmt.Errorf("neighborhood %q: unknown dimension %q", n.Name, d)
			}
			if v, ok := m.Value(); ok && (v < 0 || v > 100) {
				return nil, fmt.Errorf("neighborhood %q: %s value %g outside [0,100]", n.Name, d, v)
			}
		}
		c.byName[n.Name] = len(c.items)
		c.items = append(c.items, n)
	}
	return c, nil
}

// Len returns the number of neighborhoods.
func (c *Catalog) Len() int { return len(c.items) }

// All returns a copy of the neighborhoods in declaration order.
func (c *Catalog) All() []Neighborhood {
	out := make([]Neighborhood, len(c.items))
	copy(out, c.items)
	return out
}

// Names returns the neighborhood names in declaration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.items))
	for i, n := range c.items {
		out[i] = n.Name
	}
	return out
}

// At returns the neighborhood at index i.
func (c *Catalog) At(i int) (Neighborhood, error) {
	if i < 0 || i >= len(c.items) {
		return Neighborhood{}, fmt.Errorf("index %d: %w", i, ErrNotFound)
	}
	return c.items[i], nil
}

// Get looks up a neighborhood by exact name.
func (c *Catalog) Get(name string) (Neighborhood, error) {
	i, ok := c.byName[name]
	if !ok {
		return Neighborhood{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return c.items[i], nil
}

// GetOr looks up name and falls back to the entry at index fallback when the
// name is unknown. If fallback is out of range the first entry is used.
func (c *Catalog) GetOr(name string, fallback int) (Neighborhood, error) {
	if len(c.items) == 0 {
		return Neighborhood{}, ErrEmpty
	}
	if n, err := c.Get(name); err == nil {
		return n, nil
	}
	if fallback < 0 || fallback >= len(c.items) {
		fallback = 0
	}
	return c.items[fallback], nil
}
