package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/neurogen/internal/catalog"
	"github.com/davetashner/neurogen/internal/output"
	"github.com/davetashner/neurogen/internal/scenario"
)

// ScoreInput is the input schema for the score tool. Omitted fields take the
// dashboard defaults (dose 100, Low, regeneration on).
type ScoreInput struct {
	Dose         *int   `json:"dose,omitempty" jsonschema:"Nanorobot dose in millions, 10 to 300 (default 100)"`
	AILevel      string `json:"ai_level,omitempty" jsonschema:"AI optimization level: Low, Medium, or High (default Low)"`
	RegenEnabled *bool  `json:"regen_enabled,omitempty" jsonschema:"Activate the regenerative neuron module (default true)"`
}

// ScoreOutput is the structured result of the score tool.
type ScoreOutput struct {
	EfficacyPercent float64 `json:"efficacy_percent" jsonschema:"Simulated NEUROGEN-X efficacy in percent (0-100)"`
}

// CompareInput is the input schema for the compare tool.
type CompareInput struct {
	Dose         *int   `json:"dose,omitempty" jsonschema:"Nanorobot dose in millions, 10 to 300 (default 100)"`
	AILevel      string `json:"ai_level,omitempty" jsonschema:"AI optimization level: Low, Medium, or High (default Low)"`
	RegenEnabled *bool  `json:"regen_enabled,omitempty" jsonschema:"Activate the regenerative neuron module (default true)"`
	Format       string `json:"format,omitempty" jsonschema:"Output format: json, markdown, table, csv, html (default: json)"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// intPtr returns a pointer to an int.
func intPtr(n int) *int { return &n }

// registerTools adds all neurogen tools to the MCP server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "score",
		Description: "Compute the simulated NEUROGEN-X efficacy percentage for a dose, AI optimization level, and regeneration setting.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			IdempotentHint:  true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleScore)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare",
		Description: "Compare NEUROGEN-X with Quinacrine, Gold Nanoparticles, and ASO Therapy on efficacy, cost, and issues for a scenario.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			IdempotentHint:  true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleCompare)
}

// toScenario applies defaults and validates the tool input. Only absent
// fields take defaults; an explicit dose of 0 is validated like any other.
func (in ScoreInput) toScenario() (scenario.Input, error) {
	s := scenario.Default()
	if in.Dose != nil {
		s.Dose = *in.Dose
	}
	if in.AILevel != "" {
		level, err := scenario.ParseAILevel(in.AILevel)
		if err != nil {
			return s, err
		}
		s.AILevel = level
	}
	if in.RegenEnabled != nil {
		s.RegenEnabled = *in.RegenEnabled
	}
	return s, s.Validate()
}

func handleScore(_ context.Context, _ *mcp.CallToolRequest, input ScoreInput) (*mcp.CallToolResult, ScoreOutput, error) {
	in, err := input.toScenario()
	if err != nil {
		return nil, ScoreOutput{}, err
	}
	eff, err := scenario.Score(in)
	if err != nil {
		return nil, ScoreOutput{}, err
	}
	slog.Debug("mcp score", "scenario", in.String(), "efficacy", eff)
	return nil, ScoreOutput{EfficacyPercent: eff}, nil
}

func handleCompare(_ context.Context, _ *mcp.CallToolRequest, input CompareInput) (*mcp.CallToolResult, any, error) {
	in, err := ScoreInput{Dose: input.Dose, AILevel: input.AILevel, RegenEnabled: input.RegenEnabled}.toScenario()
	if err != nil {
		return nil, nil, err
	}

	// Determine format (default to json for MCP consumers).
	format := "json"
	if input.Format != "" {
		format = input.Format
	}
	formatter, err := output.GetFormatter(format)
	if err != nil || output.IsBinary(formatter) {
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}

	table, err := catalog.Evaluate(in)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := formatter.Format(table, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}
