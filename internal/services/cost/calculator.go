package cost

import (
	"fmt"
	"strings"

	"github.com/thomas-vilte/commitwise/internal/models"
)

type PricingTable struct {
	InputPricePerMillion  float64
	OutputPricePerMillion float64
}

// https://ai.google.dev/gemini-api/docs/pricing
var defaultPricing = map[string]PricingTable{
	"gemini-3-flash-preview": {InputPricePerMillion: 0.50, OutputPricePerMillion: 3.00},
	"gemini-2.5-pro":         {InputPricePerMillion: 1.25, OutputPricePerMillion: 10.00},
	"gemini-2.5-flash":       {InputPricePerMillion: 0.30, OutputPricePerMillion: 2.50},
	"gemini-2.5-flash-lite":  {InputPricePerMillion: 0.10, OutputPricePerMillion: 0.40},
}

// Calculator estimates what a generation call cost in USD.
type Calculator struct {
	pricing map[string]PricingTable
}

func NewCalculator() *Calculator {
	pricing := make(map[string]PricingTable, len(defaultPricing))
	for model, table := range defaultPricing {
		pricing[model] = table
	}
	return &Calculator{pricing: pricing}
}

// EstimateCost prices the given token counts for model. Versioned names such
// as "gemini-2.5-flash-001" resolve to the longest known prefix; unknown
// models cost 0.
func (c *Calculator) EstimateCost(model string, inputTokens, outputTokens int) float64 {
	table, ok := c.lookup(model)
	if !ok {
		return 0
	}

	inputCost := (float64(inputTokens) / 1_000_000) * table.InputPricePerMillion
	outputCost := (float64(outputTokens) / 1_000_000) * table.OutputPricePerMillion

	return inputCost + outputCost
}

// Annotate fills usage.CostUSD from its model and token counts.
func (c *Calculator) Annotate(usage *models.TokenUsage) {
	if usage == nil {
		return
	}
	usage.CostUSD = c.EstimateCost(usage.Model, usage.InputTokens, usage.OutputTokens)
}

// GetPricing returns the exact pricing table for model.
func (c *Calculator) GetPricing(model string) (PricingTable, error) {
	table, exists := c.pricing[strings.ToLower(model)]
	if !exists {
		return PricingTable{}, fmt.Errorf("no pricing for model %s", model)
	}
	return table, nil
}

// AddPricing registers or replaces the pricing of model.
func (c *Calculator) AddPricing(model string, table PricingTable) {
	c.pricing[strings.ToLower(model)] = table
}

func (c *Calculator) lookup(model string) (PricingTable, bool) {
	model = strings.ToLower(strings.TrimSpace(model))
	if table, ok := c.pricing[model]; ok {
		return table, true
	}

	best := ""
	for name := range c.pricing {
		if strings.HasPrefix(model, name) && len(name) > len(best) {
			best = name
		}
	}
	if best == "" {
		return PricingTable{}, false
	}
	return c.pricing[best], true
}
