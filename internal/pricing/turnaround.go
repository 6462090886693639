package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type TurnaroundCalculation struct {
	Name          string          `json:"name"`
	PricingModel  PricingModel    `json:"pricingModel"`
	MarkupPercent decimal.Decimal `json:"markupPercent"`
	MarkupAmount  decimal.Decimal `json:"markupAmount"`
	FlatAmount    decimal.Decimal `json:"flatAmount"`
	IsStandard    bool            `json:"isStandard"`
}

func calculateTurnaround(t Turnaround, afterAdjustments decimal.Decimal) (TurnaroundCalculation, error) {
	multiplier := decimal.NewFromFloat(t.PriceMultiplier)
	flat := decimal.NewFromFloat(t.BasePrice)

	calc := TurnaroundCalculation{
		Name:          t.Name,
		PricingModel:  t.PricingModel,
		MarkupPercent: decimal.Zero,
		FlatAmount:    decimal.Zero,
		IsStandard:    t.IsStandard,
	}

	switch t.PricingModel {
	case ModelFlat:
		calc.FlatAmount = flat
		calc.MarkupAmount = flat
	case ModelPercentage:
		calc.MarkupPercent = multiplier.Shift(2)
		calc.MarkupAmount = afterAdjustments.Mul(multiplier)
	case ModelCustom:
		calc.MarkupPercent = multiplier.Shift(2)
		calc.FlatAmount = flat
		calc.MarkupAmount = afterAdjustments.Mul(multiplier).Add(flat)
	default:
		return TurnaroundCalculation{}, fmt.Errorf("%w: turnaround %q uses %q", ErrUnsupportedPricingModel, t.ID, t.PricingModel)
	}

	calc.MarkupAmount = decimal.Max(decimal.Zero, calc.MarkupAmount)
	return calc, nil
}
