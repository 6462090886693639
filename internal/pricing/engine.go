package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Totals struct {
	AfterAdjustments decimal.Decimal `json:"afterAdjustments"`
	Final            decimal.Decimal `json:"final"`
}

type Validation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

type Result struct {
	BaseCalculation  BaseCalculation       `json:"baseCalculation"`
	Adjustments      Adjustments           `json:"adjustments"`
	Turnaround       TurnaroundCalculation `json:"turnaround"`
	Addons           []AddonLine           `json:"addons"`
	TotalAddonsCost  decimal.Decimal       `json:"totalAddonsCost"`
	Totals           Totals                `json:"totals"`
	DisplayBreakdown []BreakdownSection    `json:"displayBreakdown"`
	Validation       Validation            `json:"validation"`
}

// Engine computes prices from a request and a catalog snapshot. It holds no
// state and is safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// CalculatePrice validates the request and runs the base, adjustment,
// turnaround and add-on phases in order. Any failure aborts the calculation.
func (e *Engine) CalculatePrice(req *Request, catalog *Catalog) (*Result, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	base, err := calculateBase(req, catalog)
	if err != nil {
		return nil, err
	}

	turnaround, err := catalog.turnaround(req.TurnaroundID)
	if err != nil {
		return nil, err
	}

	chosen, err := resolveAddons(req.SelectedAddons, catalog)
	if err != nil {
		return nil, err
	}
	selected := make([]Addon, 0, len(chosen))
	for _, c := range chosen {
		selected = append(selected, c.addon)
	}

	adjustments, afterAdjustments := calculateAdjustments(req, base.BasePrice, selected)

	turnaroundCalc, err := calculateTurnaround(turnaround, afterAdjustments)
	if err != nil {
		return nil, err
	}

	lines, addonsTotal, err := calculateAddons(chosen, base.BasePrice, afterAdjustments, base.Quantity)
	if err != nil {
		return nil, err
	}

	result := &Result{
		BaseCalculation: base,
		Adjustments:     adjustments,
		Turnaround:      turnaroundCalc,
		Addons:          lines,
		TotalAddonsCost: addonsTotal,
		Totals: Totals{
			AfterAdjustments: afterAdjustments,
			Final:            afterAdjustments.Add(turnaroundCalc.MarkupAmount).Add(addonsTotal),
		},
		Validation: Validation{IsValid: true, Errors: []string{}},
	}
	result.DisplayBreakdown = buildBreakdown(result)

	return result, nil
}

// resolveAddons looks up each selected add-on once, keeping the first selection's params.
func resolveAddons(selections []SelectedAddon, catalog *Catalog) ([]chosenAddon, error) {
	chosen := make([]chosenAddon, 0, len(selections))
	seen := make(map[string]bool, len(selections))
	for _, sel := range selections {
		if seen[sel.AddonID] {
			continue
		}
		seen[sel.AddonID] = true

		addon, err := catalog.addon(sel.AddonID)
		if err != nil {
			return nil, err
		}
		chosen = append(chosen, chosenAddon{addon: addon, params: sel.Params})
	}
	return chosen, nil
}
