// Copyright 2026 The Neurogen Authors
// SPDX-License-Identifier: MIT

// Package scenario defines the scenario parameters and the NEUROGEN-X
// efficacy scorer.
package scenario

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput indicates a dose or AI level outside the scored domain.
var ErrInvalidInput = errors.New("invalid input")

// Dose bounds in millions of nanorobots.
const (
	DoseMin     = 10
	DoseMax     = 300
	DefaultDose = 100
)

// AILevel is the AI optimization level of a scenario.
type AILevel string

// AI optimization levels, in display order.
const (
	AILow    AILevel = "Low"
	AIMedium AILevel = "Medium"
	AIHigh   AILevel = "High"
)

// Scenario defaults, matching the dashboard's initial sidebar state.
const (
	DefaultAILevel = AILow
	DefaultRegen   = true
)

// AILevels returns the AI levels in display order.
func AILevels() []AILevel {
	return []AILevel{AILow, AIMedium, AIHigh}
}

// Valid reports whether l is one of the known levels.
func (l AILevel) Valid() bool {
	switch l {
	case AILow, AIMedium, AIHigh:
		return true
	default:
		return false
	}
}

// ParseAILevel maps a level name (case-insensitive) to an AILevel.
func ParseAILevel(s string) (AILevel, error) {
	for _, l := range AILevels() {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown AI level %q (must be Low, Medium, or High): %w", s, ErrInvalidInput)
}

// Input holds the user-chosen parameters for one evaluation.
type Input struct {
	Dose         int     `json:"dose" yaml:"dose"`
	AILevel      AILevel `json:"ai_level" yaml:"ai_level"`
	RegenEnabled bool    `json:"regen_enabled" yaml:"regen_enabled"`
}

// Default returns the initial dashboard scenario.
func Default() Input {
	return Input{
		Dose:         DefaultDose,
		AILevel:      DefaultAILevel,
		RegenEnabled: DefaultRegen,
	}
}

// Validate checks that the input lies within the scored domain.
func (in Input) Validate() error {
	if in.Dose < DoseMin || in.Dose > DoseMax {
		return fmt.Errorf("dose %d outside [%d,%d]: %w", in.Dose, DoseMin, DoseMax, ErrInvalidInput)
	}
	if !in.AILevel.Valid() {
		return fmt.Errorf("unknown AI level %q: %w", in.AILevel, ErrInvalidInput)
	}
	return nil
}

// String renders the input the way it appears in report headers.
func (in Input) String() string {
	regen := "off"
	if in.RegenEnabled {
		regen = "on"
	}
	return fmt.Sprintf("dose=%dM ai=%s regen=%s", in.Dose, in.AILevel, regen)
}
