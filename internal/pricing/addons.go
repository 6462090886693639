package pricing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

type AddonLine struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	PricingModel PricingModel    `json:"pricingModel"`
	Cost         decimal.Decimal `json:"cost"`
	Calculation  string          `json:"calculation"`
	Params       map[string]any  `json:"params,omitempty"`
}

type chosenAddon struct {
	addon  Addon
	params map[string]any
}

// calculateAddons prices each ordinary add-on as an additive line item.
// Reserved promotional add-ons are skipped; they are folded into the adjustments.
func calculateAddons(chosen []chosenAddon, base, afterAdjustments, quantity decimal.Decimal) ([]AddonLine, decimal.Decimal, error) {
	lines := make([]AddonLine, 0, len(chosen))
	total := decimal.Zero

	ordered := make([]chosenAddon, len(chosen))
	copy(ordered, chosen)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].addon.SortOrder != ordered[j].addon.SortOrder {
			return ordered[i].addon.SortOrder < ordered[j].addon.SortOrder
		}
		return ordered[i].addon.Name < ordered[j].addon.Name
	})

	for _, c := range ordered {
		if c.addon.reserved() {
			continue
		}
		cost, desc, err := addonCost(c.addon, base, afterAdjustments, quantity)
		if err != nil {
			return nil, decimal.Zero, err
		}
		cost = decimal.Max(decimal.Zero, cost)
		lines = append(lines, AddonLine{
			ID:           c.addon.ID,
			Name:         c.addon.Name,
			PricingModel: c.addon.PricingModel,
			Cost:         cost,
			Calculation:  desc,
			Params:       c.params,
		})
		total = total.Add(cost)
	}

	return lines, total, nil
}

func addonCost(a Addon, base, afterAdjustments, quantity decimal.Decimal) (decimal.Decimal, string, error) {
	cfg := a.Configuration

	switch a.PricingModel {
	case ModelFlat:
		flat := decimal.NewFromFloat(cfg.flat())
		return flat, compactUSD(flat) + " flat fee", nil

	case ModelPerUnit:
		setup := decimal.NewFromFloat(cfg.SetupFee)
		perUnit := decimal.NewFromFloat(cfg.PricePerUnit)
		cost := setup.Add(perUnit.Mul(quantity))
		desc := fmt.Sprintf("%s setup + %s × %s pieces", compactUSD(setup), compactUSD(perUnit), quantity.String())
		return cost, desc, nil

	case ModelPercentage:
		pct := decimal.NewFromFloat(cfg.Percentage)
		ref, label := referenceAmount(cfg.AppliesTo, base, afterAdjustments)
		cost := percentOf(ref, pct)
		return cost, fmt.Sprintf("%s%% of %s (%s)", pct.String(), label, FormatUSD(ref)), nil

	case ModelCustom:
		pct := decimal.NewFromFloat(cfg.Percentage)
		flat := decimal.NewFromFloat(cfg.flat())
		ref, label := referenceAmount(cfg.AppliesTo, base, afterAdjustments)
		cost := percentOf(ref, pct).Add(flat)
		return cost, fmt.Sprintf("%s%% of %s (%s) + %s", pct.String(), label, FormatUSD(ref), compactUSD(flat)), nil
	}

	return decimal.Zero, "", fmt.Errorf("%w: add-on %q uses %q", ErrUnsupportedPricingModel, a.ID, a.PricingModel)
}

func referenceAmount(appliesTo AppliesTo, base, afterAdjustments decimal.Decimal) (decimal.Decimal, string) {
	if appliesTo.adjusted() {
		return afterAdjustments, "adjusted base price"
	}
	return base, "base price"
}
