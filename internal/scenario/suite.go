package scenario

import (
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Suite is a set of pinned-output conformance cases.
type Suite struct {
	// Suite names the suite; used in reports and as an archive key.
	Suite string `yaml:"suite"`

	// Cases are executed in declaration order.
	Cases []Case `yaml:"cases"`
}

// Case pins the draws of one op sequence on a fresh generator.
type Case struct {
	// Name uniquely identifies the case within its suite.
	Name string `yaml:"name"`

	// Seed constructs the generator for this case.
	Seed int32 `yaml:"seed"`

	// Strategy selects the calling convention: "seeded" or "compat".
	Strategy string `yaml:"strategy"`

	// Ops is the sequence of operations to draw.
	Ops []OpStep `yaml:"ops"`

	// Expect holds the encoded draws, one entry per draw, in order.
	Expect []string `yaml:"expect"`
}

// OpStep is one operation in a case, repeated Count times.
type OpStep struct {
	// Op is the operation name: next, next_max, next_range,
	// next_int64, next_int64_max, next_int64_range, next_double,
	// next_single, next_bytes.
	Op string `yaml:"op"`

	// Count repeats the draw; defaults to 1.
	Count int `yaml:"count,omitempty"`

	// Min and Max bound the ranged operations.
	Min int64 `yaml:"min,omitempty"`
	Max int64 `yaml:"max,omitempty"`

	// Len is the buffer length for next_bytes.
	Len int `yaml:"len,omitempty"`
}

// LoadSuite reads, schema-validates, and normalizes a suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite %s: %w", path, err)
	}
	return ParseSuite(data)
}

// ParseSuite parses a YAML suite document.
// The document is validated against the CUE schema before the typed
// unmarshal, so shape errors carry schema positions instead of Go
// field-mapping noise.
func ParseSuite(data []byte) (*Suite, error) {
	if err := ValidateSuite(data); err != nil {
		return nil, err
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal suite: %w", err)
	}

	// Names serve as archive keys; normalize once at the boundary.
	s.Suite = norm.NFC.String(s.Suite)
	for i := range s.Cases {
		s.Cases[i].Name = norm.NFC.String(s.Cases[i].Name)
	}
	return &s, nil
}
