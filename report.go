package mailcheck

import (
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"
)

// Result is the outcome for a single address within a batch run.
type Result struct {
	// Address is the candidate exactly as submitted.
	Address string `json:"address"`

	// Outcome is the pipeline verdict for Address.
	Outcome Outcome `json:"outcome"`
}

// Report is the output of a batch validation run. It is a pure value:
// once returned it is never modified by this package.
type Report struct {
	// ID is a ULID assigned to the run, for correlating report
	// artifacts across systems.
	ID string `json:"id"`

	// CheckedAt is when the run started, in UTC.
	CheckedAt time.Time `json:"checked_at"`

	// Results holds one entry per submitted address, in submission
	// order.
	Results []Result `json:"results"`
}

// CheckAll validates every address in addrs and returns a Report with
// one Result per address, in order. Duplicate addresses are checked
// (and reported) separately; validation is pure, so duplicates always
// agree.
func (c *Checker) CheckAll(addrs []string) *Report {
	r := &Report{
		ID:        ulid.Make().String(),
		CheckedAt: time.Now().UTC(),
		Results:   make([]Result, 0, len(addrs)),
	}
	for _, addr := range addrs {
		r.Results = append(r.Results, Result{
			Address: addr,
			Outcome: c.Validate(addr),
		})
	}
	return r
}

// Counts tallies the results per outcome. Outcomes with no results are
// absent from the map.
func (r *Report) Counts() map[Outcome]int {
	counts := make(map[Outcome]int, 4)
	for _, res := range r.Results {
		counts[res.Outcome]++
	}
	return counts
}

// AllValid reports whether every result in the report is Valid.
// An empty report is vacuously all valid.
func (r *Report) AllValid() bool {
	for _, res := range r.Results {
		if res.Outcome != Valid {
			return false
		}
	}
	return true
}

// ToJSON serializes the report to JSON bytes.
func (r *Report) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// ToJSONIndent serializes the report to pretty-printed JSON bytes.
func (r *Report) ToJSONIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// FromJSON deserializes a report from JSON bytes.
func FromJSON(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
