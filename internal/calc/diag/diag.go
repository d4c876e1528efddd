// Package diag holds the advisory annotations attached to calculation
// results: non-fatal warnings and literature references. Warnings never
// interrupt a calculation; they only flag values worth a second look.
package diag

import "fmt"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityCaution Severity = "caution"
	SeverityWarning Severity = "warning"
)

// Warning is a single advisory finding. Key identifies the condition and is
// the deduplication key when results are merged; Params carries the raw
// values the message was built from.
type Warning struct {
	Severity Severity       `json:"severity"`
	Category string         `json:"category"`
	Key      string         `json:"key"`
	Message  string         `json:"message"`
	Params   map[string]any `json:"params,omitempty"`
}

// Reference points into the literature a correlation or data table came
// from. Two references are the same entry when all three fields match.
type Reference struct {
	Source   string `json:"source"`
	Page     string `json:"page,omitempty"`
	Equation string `json:"equation,omitempty"`
}

func newWarning(sev Severity, category, key, format string, args ...any) Warning {
	return Warning{
		Severity: sev,
		Category: category,
		Key:      key,
		Message:  fmt.Sprintf(format, args...),
	}
}

// DedupWarnings keeps the first occurrence of each warning key, preserving
// order of first appearance.
func DedupWarnings(in []Warning) []Warning {
	out := make([]Warning, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, w := range in {
		if seen[w.Key] {
			continue
		}
		seen[w.Key] = true
		out = append(out, w)
	}
	return out
}

// DedupReferences keeps the first occurrence of each (source, page,
// equation) triple, preserving order of first appearance.
func DedupReferences(in []Reference) []Reference {
	out := make([]Reference, 0, len(in))
	seen := make(map[Reference]bool, len(in))
	for _, r := range in {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
