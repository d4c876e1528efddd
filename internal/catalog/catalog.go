// Package catalog is the in-memory reference library the service layer
// resolves string ids against: pipe dimension tables, wall materials,
// fitting catalogs and fluid correlation data. The calculation packages
// never look ids up themselves; they receive the already-typed value
// objects produced here. Everything in this package is immutable after
// init.
package catalog

import (
	"sort"

	"PipeFlow/internal/calc/calcerr"
	"PipeFlow/internal/calc/fittings"
	"PipeFlow/internal/calc/fluid"
	"PipeFlow/internal/calc/pipe"
)

// PipeSpec resolves a nominal size and schedule ("40" or "80"; empty means
// 40) to pipe dimensions.
func PipeSpec(nominal, schedule string) (pipe.Spec, error) {
	if schedule == "" {
		schedule = "40"
	}
	table, ok := pipeSchedules[schedule]
	if !ok {
		return pipe.Spec{}, &calcerr.LookupError{Kind: "pipe schedule", ID: schedule}
	}
	dim, ok := table[nominal]
	if !ok {
		return pipe.Spec{}, &calcerr.LookupError{Kind: "pipe size", ID: nominal + " sch " + schedule}
	}
	return pipe.Spec{
		Standard: "ASME B36.10",
		Nominal:  nominal,
		Schedule: schedule,
		OuterMM:  dim.outerMM,
		WallMM:   dim.wallMM,
		InnerMM:  dim.outerMM - 2.0*dim.wallMM,
	}, nil
}

// PipeSizes lists the nominal sizes of a schedule, smallest bore first.
func PipeSizes(schedule string) ([]string, error) {
	if schedule == "" {
		schedule = "40"
	}
	table, ok := pipeSchedules[schedule]
	if !ok {
		return nil, &calcerr.LookupError{Kind: "pipe schedule", ID: schedule}
	}
	out := make([]string, 0, len(table))
	for nominal := range table {
		out = append(out, nominal)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := table[out[i]], table[out[j]]
		return a.outerMM-2*a.wallMM < b.outerMM-2*b.wallMM
	})
	return out, nil
}

// Material resolves a wall material id.
func Material(id string) (pipe.Material, error) {
	m, ok := materials[id]
	if !ok {
		return pipe.Material{}, &calcerr.LookupError{Kind: "material", ID: id}
	}
	return m, nil
}

// FluidMethod resolves a fluid id to its correlation payload.
func FluidMethod(id string) (fluid.Method, error) {
	m, ok := fluids[id]
	if !ok {
		return nil, &calcerr.LookupError{Kind: "fluid", ID: id}
	}
	return m, nil
}

// FluidIDs lists the known fluid ids (unordered).
func FluidIDs() []string {
	out := make([]string, 0, len(fluids))
	for id := range fluids {
		out = append(out, id)
	}
	return out
}

// CraneEnv returns the fitting environment with the Crane L/D catalog
// active. This is the default for segment calculations.
func CraneEnv() fittings.Env {
	return fittings.Env{
		Active:   fittings.MethodCraneLD,
		LD:       &craneLD,
		FixedK:   &fixedK,
		FTBySize: ftBySize,
	}
}

// ThreeKEnv returns the fitting environment with the Darby 3-K catalog
// active.
func ThreeKEnv() fittings.Env {
	return fittings.Env{
		Active: fittings.MethodThreeK,
		ThreeK: &darby3K,
		FixedK: &fixedK,
	}
}

// Env selects a fitting environment by method tag.
func Env(method string) (fittings.Env, error) {
	switch method {
	case "", fittings.MethodCraneLD:
		return CraneEnv(), nil
	case fittings.MethodThreeK:
		return ThreeKEnv(), nil
	}
	return fittings.Env{}, &calcerr.LookupError{Kind: "fitting method", ID: method}
}
