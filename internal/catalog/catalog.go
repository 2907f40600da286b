// Copyright 2026 The Neurogen Authors
// SPDX-License-Identifier: MIT

// Package catalog holds the fixed comparator treatments and merges them with
// the computed NEUROGEN-X record into a comparison table.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/davetashner/neurogen/internal/scenario"
)

// ErrDataIntegrity indicates a record whose efficacy lies outside [0,100].
var ErrDataIntegrity = errors.New("data integrity violation")

// NeurogenXName is the name of the computed treatment.
const NeurogenXName = "NEUROGEN-X"

// Fixed NEUROGEN-X attributes.
const (
	NeurogenXCost   = 8000.0
	NeurogenXIssues = "None in simulations"
)

// Chart palette.
const (
	ComparatorColor = "#a83232"
	HighlightColor  = "#32a852"
)

// TreatmentRecord is one row of the comparison.
type TreatmentRecord struct {
	Name            string  `json:"name"`
	EfficacyPercent float64 `json:"efficacy_percent"`
	CostUSD         float64 `json:"cost_usd"`
	Issues          string  `json:"issues"`
	Computed        bool    `json:"computed"`
}

// Color returns the chart color for the record.
func (r TreatmentRecord) Color() string {
	if r.Computed {
		return HighlightColor
	}
	return ComparatorColor
}

var comparators = [...]TreatmentRecord{
	{Name: "Quinacrine", EfficacyPercent: 0, CostUSD: 500, Issues: "Liver toxicity, no efficacy"},
	{Name: "Gold Nanoparticles (MIT, 2024)", EfficacyPercent: 48, CostUSD: 35000, Issues: "Immune response, tissue accumulation"},
	{Name: "ASO Therapy (NIH, 2023)", EfficacyPercent: 70, CostUSD: 300000, Issues: "Prevents but does not cure"},
}

// Comparators returns a copy of the fixed comparator records in display order.
func Comparators() []TreatmentRecord {
	out := make([]TreatmentRecord, len(comparators))
	copy(out, comparators[:])
	return out
}

// NeurogenX builds the computed record for the given efficacy.
func NeurogenX(efficacy float64) TreatmentRecord {
	return TreatmentRecord{
		Name:            NeurogenXName,
		EfficacyPercent: efficacy,
		CostUSD:         NeurogenXCost,
		Issues:          NeurogenXIssues,
		Computed:        true,
	}
}

// ComparisonTable is the ordered set of records shown side by side.
type ComparisonTable struct {
	Scenario scenario.Input    `json:"scenario"`
	Records  []TreatmentRecord `json:"treatments"`
}

// BuildComparisonTable appends neurogenx to the comparators. The record's
// efficacy must lie within [0,100].
func BuildComparisonTable(neurogenx TreatmentRecord) (ComparisonTable, error) {
	e := neurogenx.EfficacyPercent
	if math.IsNaN(e) || e < 0 || e > scenario.MaxEfficacy {
		return ComparisonTable{}, fmt.Errorf("%s efficacy %g outside [0,100]: %w", neurogenx.Name, e, ErrDataIntegrity)
	}
	records := append(Comparators(), neurogenx)
	return ComparisonTable{Records: records}, nil
}

// Evaluate scores in and builds the resulting comparison table.
func Evaluate(in scenario.Input) (ComparisonTable, error) {
	efficacy, err := scenario.Score(in)
	if err != nil {
		return ComparisonTable{}, err
	}
	t, err := BuildComparisonTable(NeurogenX(efficacy))
	if err != nil {
		return ComparisonTable{}, err
	}
	t.Scenario = in
	return t, nil
}

// Computed returns the computed record, or a zero record if absent.
func (t ComparisonTable) Computed() TreatmentRecord {
	for _, r := range t.Records {
		if r.Computed {
			return r
		}
	}
	return TreatmentRecord{}
}

// Names returns the treatment names in table order.
func (t ComparisonTable) Names() []string {
	names := make([]string, len(t.Records))
	for i, r := range t.Records {
		names[i] = r.Name
	}
	return names
}
