// Package fittings resolves per-fitting loss coefficients. A request is
// matched against the available sources in strict priority order: an
// explicit Cv override, then the fixed-K entrance/exit catalog, then the
// active fitting catalog (Crane L/D or Darby 3-K), and finally a lookup
// error.
package fittings

import "PipeFlow/internal/calc/diag"

// Resolution method tags.
const (
	MethodCv      = "cv"
	MethodFixedK  = "fixed_k"
	MethodCraneLD = "crane_ld"
	MethodThreeK  = "3k"
)

// Request names one fitting on a segment. Cv, when positive, overrides any
// catalog lookup. Quantity 0 is read as 1.
type Request struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity,omitempty"`
	Cv       float64 `json:"cv,omitempty"`
}

// Resolved is a fully computed fitting entry.
type Resolved struct {
	ID          string         `json:"id"`
	Description string         `json:"description,omitempty"`
	Quantity    int            `json:"quantity"`
	K           float64        `json:"k"`
	Method      string         `json:"method"`
	DPPa        float64        `json:"dp_pa"`
	HeadM       float64        `json:"head_m"`
	Reference   diag.Reference `json:"reference,omitempty"`
	Warning     *diag.Warning  `json:"warning,omitempty"`
}

// LDEntry is one Crane-method fitting: equivalent length in pipe diameters.
type LDEntry struct {
	LD          float64 `json:"l_over_d"`
	Description string  `json:"description"`
}

type LDCatalog struct {
	Reference diag.Reference     `json:"reference"`
	Entries   map[string]LDEntry `json:"entries"`
}

// ThreeKEntry is one Darby 3-K fitting: K = K1/Re + Ki·(1 + Kd/D_in^0.3).
type ThreeKEntry struct {
	K1          float64 `json:"k1"`
	Ki          float64 `json:"ki"`
	Kd          float64 `json:"kd"`
	Description string  `json:"description"`
}

type ThreeKCatalog struct {
	Reference diag.Reference         `json:"reference"`
	Entries   map[string]ThreeKEntry `json:"entries"`
}

// FixedKEntry is an entrance/exit geometry with a constant K.
type FixedKEntry struct {
	K           float64 `json:"k"`
	Description string  `json:"description"`
}

type FixedKCatalog struct {
	Reference diag.Reference         `json:"reference"`
	Entries   map[string]FixedKEntry `json:"entries"`
}
