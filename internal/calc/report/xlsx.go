package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"PipeFlow/internal/calc/fittings"
	"PipeFlow/internal/calc/fluid"
	"PipeFlow/internal/calc/segment"
	"PipeFlow/internal/calc/system"
)

// WriteXLSX exports the system result as a one-sheet workbook: a totals
// block followed by one row per segment.
func WriteXLSX(w io.Writer, res system.Result) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	rows := [][]any{
		{"Pressure drop summary"},
		{},
		{"Friction, Pa", res.DPFrictionPa, "Head, m", res.HeadFrictionM},
		{"Fittings, Pa", res.DPFittingsPa, "Head, m", res.HeadFittingsM},
		{"Elevation, Pa", res.DPElevationPa, "Head, m", res.HeadElevationM},
		{"Total, Pa", res.DPTotalPa, "Head, m", res.HeadTotalM},
		{},
		{"#", "Velocity, m/s", "Reynolds", "Regime", "Friction factor",
			"dP friction, Pa", "dP fittings, Pa", "dP elevation, Pa", "dP total, Pa"},
	}
	for i, s := range res.Segments {
		rows = append(rows, []any{
			i + 1, s.VelocityMS, s.Reynolds, string(s.Regime), s.FrictionFactor,
			s.DPFrictionPa, s.DPFittingsPa, s.DPElevationPa, s.DPTotalPa,
		})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// ReadSegmentsXLSX parses a workbook where each data row after the header
// is one segment:
//
//	nominal, schedule, material, fluid, temp C, conc %, flow m3/h,
//	length m, elevation m, fitting id, qty, fitting id, qty, ...
//
// Rows that fail to parse are skipped, matching how partial imports are
// more useful than none.
func ReadSegmentsXLSX(r io.Reader) ([]segment.Request, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("workbook has no data rows")
	}

	var out []segment.Request
	for i := 1; i < len(rows); i++ {
		req, err := parseSegmentRow(rows[i])
		if err != nil {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func parseSegmentRow(row []string) (segment.Request, error) {
	if len(row) < 9 {
		return segment.Request{}, fmt.Errorf("short row")
	}
	temp, err := toFloat(row[4])
	if err != nil {
		return segment.Request{}, err
	}
	flow, err := toFloat(row[6])
	if err != nil {
		return segment.Request{}, err
	}
	length, err := toFloat(row[7])
	if err != nil {
		return segment.Request{}, err
	}
	elev, err := toFloat(row[8])
	if err != nil {
		return segment.Request{}, err
	}

	req := segment.Request{
		PipeNominal:  row[0],
		PipeSchedule: row[1],
		MaterialID:   row[2],
		FluidID:      row[3],
		TemperatureC: temp,
		FlowM3H:      flow,
		LengthM:      length,
		ElevationM:   elev,
	}
	if row[5] != "" {
		conc, err := toFloat(row[5])
		if err != nil {
			return segment.Request{}, err
		}
		req.Concentration = fluid.Concentration{Value: conc, Unit: fluid.UnitMassPercent}
	}
	for j := 9; j+1 < len(row); j += 2 {
		if row[j] == "" {
			break
		}
		qty := 1
		if row[j+1] != "" {
			q, err := strconv.Atoi(row[j+1])
			if err != nil {
				return segment.Request{}, err
			}
			qty = q
		}
		req.Fittings = append(req.Fittings, fittings.Request{ID: row[j], Quantity: qty})
	}
	return req, nil
}

func toFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
