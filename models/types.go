package models

import "encoding/json"

// Starter identifies one of the three vote options.
type Starter string

// Starter constants
const (
	StarterBrowt  Starter = "browt"
	StarterPombon Starter = "pombon"
	StarterGecqua Starter = "gecqua"
)

// Starters lists every valid starter in display order.
var Starters = []Starter{StarterBrowt, StarterPombon, StarterGecqua}

// IsValidStarter reports whether s exactly matches a starter id.
// Matching is case-sensitive; no trimming or normalization is applied.
func IsValidStarter(s string) bool {
	for _, st := range Starters {
		if string(st) == s {
			return true
		}
	}
	return false
}

// Domain types

// Tally holds the current vote count for every starter.
type Tally struct {
	Browt  int64 `json:"browt"`
	Pombon int64 `json:"pombon"`
	Gecqua int64 `json:"gecqua"`
}

// Count returns the tally for a single starter (0 for unknown ids)
func (t Tally) Count(s Starter) int64 {
	switch s {
	case StarterBrowt:
		return t.Browt
	case StarterPombon:
		return t.Pombon
	case StarterGecqua:
		return t.Gecqua
	}
	return 0
}

// Set stores the count for a starter. Unknown ids are ignored.
func (t *Tally) Set(s Starter, n int64) {
	switch s {
	case StarterBrowt:
		t.Browt = n
	case StarterPombon:
		t.Pombon = n
	case StarterGecqua:
		t.Gecqua = n
	}
}

func (t Tally) Total() int64 {
	return t.Browt + t.Pombon + t.Gecqua
}

// Request types

type VoteRequest struct {
	Starter string `json:"starter"`
}

// UnmarshalJSON accepts any JSON value for starter. A value that is not a
// string decodes as "", which no starter matches.
func (r *VoteRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Starter json.RawMessage `json:"starter"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Starter = ""
	if len(raw.Starter) > 0 && raw.Starter[0] == '"' {
		return json.Unmarshal(raw.Starter, &r.Starter)
	}
	return nil
}

// Response types

type VoteResponse struct {
	Starter Starter `json:"starter"`
	Votes   int64   `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
