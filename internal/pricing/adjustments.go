package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Adjustment struct {
	Applied    bool            `json:"applied"`
	Percentage decimal.Decimal `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
}

type Adjustments struct {
	BrokerDiscount  Adjustment `json:"brokerDiscount"`
	TaglineDiscount Adjustment `json:"taglineDiscount"`
	ExactSizeMarkup Adjustment `json:"exactSizeMarkup"`
}

// percentOf returns amount × pct / 100.
func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct.Shift(-2))
}

func notApplied() Adjustment {
	return Adjustment{Percentage: decimal.Zero, Amount: decimal.Zero}
}

func brokerDiscountPercent(req *Request) (decimal.Decimal, bool) {
	if !req.IsBroker {
		return decimal.Zero, false
	}
	category := strings.TrimSpace(req.CategoryID)
	if category == "" {
		return decimal.Zero, false
	}
	for _, d := range req.BrokerCategoryDiscounts {
		if strings.TrimSpace(d.CategoryID) == category {
			return decimal.NewFromFloat(d.DiscountPercent), true
		}
	}
	return decimal.Zero, false
}

// calculateAdjustments applies broker and promotional add-on adjustments to the
// base price and returns them with the adjusted subtotal. A broker never gets
// the tagline discount.
func calculateAdjustments(req *Request, base decimal.Decimal, selected []Addon) (Adjustments, decimal.Decimal) {
	adj := Adjustments{
		BrokerDiscount:  notApplied(),
		TaglineDiscount: notApplied(),
		ExactSizeMarkup: notApplied(),
	}

	if pct, ok := brokerDiscountPercent(req); ok {
		adj.BrokerDiscount = Adjustment{Applied: true, Percentage: pct, Amount: percentOf(base, pct)}
	}

	var tagline, exactSize *Addon
	for i := range selected {
		switch {
		case selected[i].isTagline():
			tagline = &selected[i]
		case selected[i].isExactSize():
			exactSize = &selected[i]
		}
	}

	if tagline != nil && !req.IsBroker {
		pct := decimal.NewFromFloat(tagline.Configuration.Percentage)
		ref := base
		if tagline.Configuration.AppliesTo.adjusted() {
			ref = base.Sub(adj.BrokerDiscount.Amount)
		}
		adj.TaglineDiscount = Adjustment{Applied: true, Percentage: pct, Amount: percentOf(ref, pct)}
	}

	if exactSize != nil {
		pct := decimal.NewFromFloat(exactSize.Configuration.Percentage)
		ref := base
		if exactSize.Configuration.AppliesTo.adjusted() {
			ref = base.Sub(adj.BrokerDiscount.Amount).Sub(adj.TaglineDiscount.Amount)
		}
		adj.ExactSizeMarkup = Adjustment{Applied: true, Percentage: pct, Amount: percentOf(ref, pct)}
	}

	after := base.
		Sub(adj.BrokerDiscount.Amount).
		Sub(adj.TaglineDiscount.Amount).
		Add(adj.ExactSizeMarkup.Amount)

	return adj, decimal.Max(decimal.Zero, after)
}
