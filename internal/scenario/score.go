package scenario

// MaxEfficacy is the ceiling applied to every computed efficacy.
const MaxEfficacy = 100.0

// Score computes the NEUROGEN-X efficacy percentage for in.
//
// The formula is linear in dose with fixed bonuses for the AI level and the
// regenerative module, clamped at MaxEfficacy. Valid inputs always score in
// [62.5, 100].
func Score(in Input) (float64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	base := 60 + float64(in.Dose)/4
	switch in.AILevel {
	case AIMedium:
		base += 10
	case AIHigh:
		base += 20
	}
	if in.RegenEnabled {
		base += 5
	}
	return min(base, MaxEfficacy), nil
}

// MustScore is like Score but panics on invalid input.
func MustScore(in Input) float64 {
	v, err := Score(in)
	if err != nil {
		panic(err)
	}
	return v
}
