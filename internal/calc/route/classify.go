package route

import (
	"fmt"
	"math"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/diag"
)

// The bend angles piping fittings exist for.
var standardAngles = [...]int{0, 45, 90, 180}

// ClassifyAngle snaps a raw bend angle onto the nearest standard angle. A
// 0° match never warns; any other match warns when the deviation exceeds
// tolDeg, naming both the raw and the chosen angle.
func ClassifyAngle(angleDeg, tolDeg float64) (int, *diag.Warning) {
	if tolDeg <= 0 {
		tolDeg = DefaultAngleToleranceDeg
	}
	best := standardAngles[0]
	bestDev := math.Abs(angleDeg - float64(best))
	for _, std := range standardAngles[1:] {
		if dev := math.Abs(angleDeg - float64(std)); dev < bestDev {
			best, bestDev = std, dev
		}
	}
	if best == 0 || bestDev <= tolDeg {
		return best, nil
	}
	return best, &diag.Warning{
		Severity: diag.SeverityWarning,
		Category: "route",
		Key:      fmt.Sprintf("elbow_angle_deviation_%d", best),
		Message: fmt.Sprintf("bend of %.1f° deviates %.1f° from the nearest standard %d° elbow",
			angleDeg, bestDev, best),
		Params: map[string]any{"angle_deg": angleDeg, "standard_angle": best, "deviation_deg": bestDev},
	}
}

// elbowFittingID maps (standard angle, connection, long-radius) to a
// catalog fitting id. 0° resolves to no fitting at all.
func elbowFittingID(standardAngle int, conn string, longRadius bool) (string, error) {
	switch conn {
	case ConnectionWelded, ConnectionThreaded:
	default:
		return "", calcerr.Inputf("unknown connection type %q", conn)
	}
	switch standardAngle {
	case 0:
		return "", nil
	case 45:
		return "elbow_45_" + conn, nil
	case 90:
		if longRadius {
			return "elbow_90_lr_" + conn, nil
		}
		return "elbow_90_std_" + conn, nil
	case 180:
		return "return_bend_" + conn, nil
	}
	return "", calcerr.Inputf("no fitting for a %d° bend", standardAngle)
}

// DetectElbows scans the interior nodes of a run list, skipping straight
// pass-throughs, and emits one classified elbow per remaining bend. The
// runs must come from StraightRuns (consecutive, shared nodes).
func DetectElbows(runs []StraightRun, opt Options) ([]Elbow, error) {
	opt = opt.normalized()
	if len(runs) < 2 {
		return nil, nil
	}
	var elbows []Elbow
	for i := 0; i < len(runs)-1; i++ {
		angle := BendAngle(runs[i].Direction, runs[i+1].Direction)
		std, warn := ClassifyAngle(angle, opt.ToleranceDeg)
		if std == 0 {
			continue
		}
		id, err := elbowFittingID(std, opt.Connection, opt.LongRadius)
		if err != nil {
			return nil, err
		}
		elbows = append(elbows, Elbow{
			NodeIndex:     runs[i].ToIndex,
			AngleDeg:      angle,
			StandardAngle: std,
			FittingID:     id,
			Warning:       warn,
		})
	}
	return elbows, nil
}
