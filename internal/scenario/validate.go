package scenario

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// suiteSchema is the CUE shape every suite document must satisfy.
// Validation happens against the raw YAML value, before the typed
// unmarshal, so unknown ops and malformed cases fail loudly.
const suiteSchema = `
#Op: {
	op: "next" | "next_max" | "next_range" | "next_int64" |
		"next_int64_max" | "next_int64_range" | "next_double" |
		"next_single" | "next_bytes"
	count?: int & >0
	min?:   int
	max?:   int
	len?:   int & >0
}

suite: string & !=""
cases: [...{
	name:     string & !=""
	seed:     int & >=-2147483648 & <=2147483647
	strategy: "seeded" | "compat"
	ops:      [#Op, ...#Op]
	expect:   [...string]
}]
`

// ValidateSuite checks a raw YAML suite document against the schema.
func ValidateSuite(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse suite yaml: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(suiteSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile suite schema: %w", err)
	}

	unified := schema.Unify(ctx.Encode(raw))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("suite does not match schema: %w", err)
	}
	return nil
}
