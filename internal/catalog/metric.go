package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Metric is an objective score that may be unknown. The zero value is unknown.
type Metric struct {
	value float64
	known bool
}

// Known returns a Metric carrying v.
func Known(v float64) Metric { return Metric{value: v, known: true} }

// Unknown returns a Metric with no data.
func Unknown() Metric { return Metric{} }

// FromPtr converts a nullable value, as scanned from a database column.
func FromPtr(v *float64) Metric {
	if v == nil {
		return Unknown()
	}
	return Known(*v)
}

// Value returns the score and whether it is known.
func (m Metric) Value() (float64, bool) { return m.value, m.known }

// IsKnown reports whether the metric carries data.
func (m Metric) IsKnown() bool { return m.known }

func (m Metric) String() string {
	if !m.known {
		return "unknown"
	}
	return fmt.Sprintf("%g", m.value)
}

func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.known {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}

func (m *Metric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = Unknown()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("metric: %w", err)
	}
	*m = Known(v)
	return nil
}

func (m Metric) MarshalYAML() (interface{}, error) {
	if !m.known {
		return nil, nil
	}
	return m.value, nil
}

// UnmarshalYAML is only invoked for non-null nodes; null leaves the zero
// value, which is unknown.
func (m *Metric) UnmarshalYAML(node *yaml.Node) error {
	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("metric at line %d: %w", node.Line, err)
	}
	*m = Known(v)
	return nil
}
