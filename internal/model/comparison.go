package model

import "encoding/json"

// Verdict is the coarse compatibility classification. The first three values
// are ordered by severity; InsufficientData and Error sit outside that order.
type Verdict int

const (
	DirectReplacement Verdict = iota
	ModificationsRequired
	NotCompatible
	InsufficientData
	Error
)

var verdictNames = map[Verdict]string{
	DirectReplacement:     "Direct Replacement",
	ModificationsRequired: "Modifications Required",
	NotCompatible:         "Not Compatible",
	InsufficientData:      "Insufficient Data",
	Error:                 "Error",
}

func (v Verdict) String() string {
	if n, ok := verdictNames[v]; ok {
		return n
	}
	return "Unknown"
}

func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *Verdict) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for k, n := range verdictNames {
		if n == s {
			*v = k
			return nil
		}
	}
	*v = Error
	return nil
}

// ChartRow compares one attribute across both appliances. Diff is "N/A" unless
// both sides are numeric.
type ChartRow struct {
	Label string `json:"label"`
	Old   string `json:"old"`
	New   string `json:"new"`
	Diff  string `json:"diff"`
}

type Chart struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Rows  []ChartRow `json:"rows"`
}

// ComparisonResult is built fresh per compare request and never stored.
type ComparisonResult struct {
	Verdict       Verdict  `json:"verdict"`
	Summary       string   `json:"summary"`
	Modifications []string `json:"modifications"`
	InstallImpact []string `json:"installImpact"`
	Charts        []Chart  `json:"charts"`
	Sources       []string `json:"sources"`
}
