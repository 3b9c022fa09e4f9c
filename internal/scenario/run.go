package scenario

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"

	"github.com/roach88/legacyrand/internal/rng"
)

// NewSource constructs a fresh generator for a strategy name.
// The compat strategy is built without an override; suites pin the
// no-substitution behavior, which must equal the seeded sequence.
func NewSource(strategy string, seed int32) (rng.Source, error) {
	switch strategy {
	case "seeded":
		return rng.NewSeeded(seed), nil
	case "compat":
		return rng.NewCompatSeeded(seed, nil), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want \"seeded\" or \"compat\")", strategy)
	}
}

// ExecOp performs one op step against src and returns the encoded
// draws: decimal for integers, decimal IEEE bit patterns for doubles
// and singles, hex for byte fills. The encoding is lossless so a report
// diff identifies the exact divergent draw.
func ExecOp(src rng.Source, step OpStep) ([]string, error) {
	count := step.Count
	if count == 0 {
		count = 1
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		switch step.Op {
		case "next":
			out = append(out, strconv.FormatInt(int64(src.Next()), 10))
		case "next_max":
			out = append(out, strconv.FormatInt(int64(src.NextMax(int32(step.Max))), 10))
		case "next_range":
			out = append(out, strconv.FormatInt(int64(src.NextRange(int32(step.Min), int32(step.Max))), 10))
		case "next_int64":
			out = append(out, strconv.FormatInt(src.NextInt64(), 10))
		case "next_int64_max":
			out = append(out, strconv.FormatInt(src.NextInt64Max(step.Max), 10))
		case "next_int64_range":
			out = append(out, strconv.FormatInt(src.NextInt64Range(step.Min, step.Max), 10))
		case "next_double":
			out = append(out, strconv.FormatUint(math.Float64bits(src.NextDouble()), 10))
		case "next_single":
			out = append(out, strconv.FormatUint(uint64(math.Float32bits(src.NextSingle())), 10))
		case "next_bytes":
			p := make([]byte, step.Len)
			src.NextBytes(p)
			out = append(out, hex.EncodeToString(p))
		default:
			return nil, fmt.Errorf("unknown op %q", step.Op)
		}
	}
	return out, nil
}

// Mismatch records one divergent draw.
type Mismatch struct {
	Index int    `json:"index"`
	Want  string `json:"want"`
	Got   string `json:"got"`
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name       string     `json:"name"`
	Passed     bool       `json:"passed"`
	Draws      int        `json:"draws"`
	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

// Report is the outcome of one suite run.
type Report struct {
	Suite    string       `json:"suite"`
	RunToken string       `json:"run_token"`
	Cases    []CaseResult `json:"cases"`
}

// Failed counts the cases that did not pass.
func (r *Report) Failed() int {
	n := 0
	for _, c := range r.Cases {
		if !c.Passed {
			n++
		}
	}
	return n
}

// RunSuite executes every case on a fresh generator and compares the
// encoded draws against the case expectations. An error means the
// suite could not be executed (bad strategy or op); a mismatch is not
// an error, it is a failed case in the report.
func RunSuite(s *Suite, gen TokenGenerator) (*Report, error) {
	report := &Report{
		Suite:    s.Suite,
		RunToken: gen.Generate(),
		Cases:    make([]CaseResult, 0, len(s.Cases)),
	}

	for _, c := range s.Cases {
		src, err := NewSource(c.Strategy, c.Seed)
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", c.Name, err)
		}

		var got []string
		for _, step := range c.Ops {
			draws, err := ExecOp(src, step)
			if err != nil {
				return nil, fmt.Errorf("case %s: %w", c.Name, err)
			}
			got = append(got, draws...)
		}

		report.Cases = append(report.Cases, compareCase(c, got))
	}
	return report, nil
}

func compareCase(c Case, got []string) CaseResult {
	result := CaseResult{Name: c.Name, Draws: len(got)}

	n := len(got)
	if len(c.Expect) > n {
		n = len(c.Expect)
	}
	for i := 0; i < n; i++ {
		want, have := "", ""
		if i < len(c.Expect) {
			want = c.Expect[i]
		}
		if i < len(got) {
			have = got[i]
		}
		if want != have {
			result.Mismatches = append(result.Mismatches, Mismatch{Index: i, Want: want, Got: have})
		}
	}

	result.Passed = len(result.Mismatches) == 0
	return result
}
