package dashboard

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/davetashner/neurogen/internal/scenario"
)

// parseScenario reads dose, ai_level and regen from the query string, falling
// back to defaults for absent parameters. An unchecked checkbox is omitted by
// browsers, so regen is false when the form was submitted without it.
func parseScenario(q url.Values, defaults scenario.Input) (scenario.Input, error) {
	in := defaults

	if v := q.Get("dose"); v != "" {
		dose, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return in, fmt.Errorf("dose %q is not an integer: %w", v, scenario.ErrInvalidInput)
		}
		in.Dose = dose
	}

	if v := q.Get("ai_level"); v != "" {
		level, err := scenario.ParseAILevel(v)
		if err != nil {
			return in, err
		}
		in.AILevel = level
	}

	switch v := q.Get("regen"); {
	case v != "":
		b, err := parseBool(v)
		if err != nil {
			return in, err
		}
		in.RegenEnabled = b
	case q.Get("submitted") == "1":
		in.RegenEnabled = false
	}

	return in, in.Validate()
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true, nil
	case "0", "false", "off", "no":
		return false, nil
	}
	return false, fmt.Errorf("regen %q is not a boolean: %w", v, scenario.ErrInvalidInput)
}
