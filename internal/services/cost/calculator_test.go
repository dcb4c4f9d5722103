package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/commitwise/internal/models"
)

func TestCalculator_EstimateCost(t *testing.T) {
	tests := []struct {
		name         string
		model        string
		inputTokens  int
		outputTokens int
		want         float64
	}{
		{
			name:         "exact match",
			model:        "gemini-2.5-flash",
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			want:         0.30 + 2.50,
		},
		{
			name:         "case insensitive",
			model:        "GEMINI-2.5-PRO",
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			want:         1.25 + 10.00,
		},
		{
			name:         "versioned name picks the longest prefix",
			model:        "gemini-2.5-flash-lite-001",
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			want:         0.10 + 0.40,
		},
		{
			name:         "unknown model",
			model:        "gpt-4o",
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			want:         0,
		},
		{
			name:  "zero tokens",
			model: "gemini-3-flash-preview",
			want:  0,
		},
	}

	calc := NewCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.EstimateCost(tt.model, tt.inputTokens, tt.outputTokens)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculator_Annotate(t *testing.T) {
	calc := NewCalculator()
	usage := &models.TokenUsage{Model: "gemini-3-flash-preview", InputTokens: 2_000, OutputTokens: 1_000}

	calc.Annotate(usage)

	assert.InDelta(t, 0.001+0.003, usage.CostUSD, 1e-9)
	assert.NotPanics(t, func() { calc.Annotate(nil) })
}

func TestCalculator_Pricing(t *testing.T) {
	calc := NewCalculator()

	_, err := calc.GetPricing("gemini-9")
	assert.Error(t, err)

	calc.AddPricing("Gemini-9", PricingTable{InputPricePerMillion: 1, OutputPricePerMillion: 2})
	table, err := calc.GetPricing("gemini-9")
	require.NoError(t, err)
	assert.Equal(t, 2.0, table.OutputPricePerMillion)

	other := NewCalculator()
	_, err = other.GetPricing("gemini-9")
	assert.Error(t, err, "pricing added to one calculator must not leak into another")
}
