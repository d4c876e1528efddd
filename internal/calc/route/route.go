// Package route analyzes an ordered 3-D waypoint list: it extracts straight
// runs, detects and classifies the bends between them, and can emit the
// equivalent segment list for the pressure-drop engine.
package route

import (
	"PipeFlow/internal/calc/diag"
	"PipeFlow/internal/calc/fittings"
	"PipeFlow/internal/calc/fluid"
	"PipeFlow/internal/calc/pipe"
)

// Node is one waypoint. Fittings listed here are attached manually by the
// caller on top of whatever elbows detection finds.
type Node struct {
	ID       string             `json:"id,omitempty"`
	X        float64            `json:"x"`
	Y        float64            `json:"y"`
	Z        float64            `json:"z"`
	Fittings []fittings.Request `json:"fittings,omitempty"`
}

// Route is an ordered waypoint list; two nodes make the smallest valid
// route.
type Route struct {
	Nodes []Node `json:"nodes"`
}

// StraightRun is the straight piece between two consecutive nodes.
type StraightRun struct {
	FromIndex  int        `json:"from_index"`
	ToIndex    int        `json:"to_index"`
	LengthM    float64    `json:"length_m"`
	ElevationM float64    `json:"elevation_m"` // signed Z delta
	Direction  [3]float64 `json:"direction"`   // unit vector
}

// Elbow is a detected bend at an interior node.
type Elbow struct {
	NodeIndex     int           `json:"node_index"`
	AngleDeg      float64       `json:"angle_deg"`
	StandardAngle int           `json:"standard_angle"`
	FittingID     string        `json:"fitting_id"`
	Warning       *diag.Warning `json:"warning,omitempty"`
}

// Connection types for elbow fitting resolution.
const (
	ConnectionWelded   = "welded"
	ConnectionThreaded = "threaded"
)

// DefaultAngleToleranceDeg is how far a raw bend angle may deviate from its
// classified standard angle before a warning is attached.
const DefaultAngleToleranceDeg = 5.0

// Options steers elbow classification and fitting-id resolution.
type Options struct {
	Connection   string  `json:"connection"` // ConnectionWelded (default) or ConnectionThreaded
	LongRadius   bool    `json:"long_radius"`
	ToleranceDeg float64 `json:"tolerance_deg"` // 0 means DefaultAngleToleranceDeg
}

func (o Options) normalized() Options {
	if o.Connection == "" {
		o.Connection = ConnectionWelded
	}
	if o.ToleranceDeg <= 0 {
		o.ToleranceDeg = DefaultAngleToleranceDeg
	}
	return o
}

// SegmentBase carries the per-segment inputs a route cannot know itself.
type SegmentBase struct {
	Pipe     pipe.Spec     `json:"pipe"`
	Material pipe.Material `json:"material"`
	Fluid    fluid.State   `json:"fluid"`
	FlowM3S  float64       `json:"flow_m3_s"`
}

// Analysis is the read-only route preview: runs, elbows and aggregate
// totals without any segment construction.
type Analysis struct {
	Runs            []StraightRun  `json:"runs"`
	Elbows          []Elbow        `json:"elbows"`
	TotalLengthM    float64        `json:"total_length_m"`
	TotalElevationM float64        `json:"total_elevation_m"`
	ElbowCounts     map[int]int    `json:"elbow_counts,omitempty"` // standard angle -> count
	Warnings        []diag.Warning `json:"warnings,omitempty"`
}
