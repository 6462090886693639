package pricing

import "github.com/shopspring/decimal"

// DefaultDoubleSidedMultiplier is used by QuickCalculate, which has no paper stock record.
const DefaultDoubleSidedMultiplier = 1.75

type BaseCalculation struct {
	BasePrice       decimal.Decimal `json:"basePrice"`
	Size            decimal.Decimal `json:"size"`
	Quantity        decimal.Decimal `json:"quantity"`
	SidesMultiplier decimal.Decimal `json:"sidesMultiplier"`
	PricePerSqInch  decimal.Decimal `json:"pricePerSqInch"`
	SizeLabel       string          `json:"sizeLabel"`
	PaperName       string          `json:"paperName"`
	Sides           Sides           `json:"sides"`
}

func effectiveSize(req *Request, catalog *Catalog) (decimal.Decimal, string, error) {
	if req.SizeSelection == SelectionCustom {
		w := decimal.NewFromFloat(*req.CustomWidth)
		h := decimal.NewFromFloat(*req.CustomHeight)
		return w.Mul(h), w.String() + `" x ` + h.String() + `" (custom)`, nil
	}
	size, err := catalog.size(req.StandardSizeID)
	if err != nil {
		return decimal.Zero, "", err
	}
	return decimal.NewFromFloat(size.PreCalculatedValue), size.Name, nil
}

func effectiveQuantity(req *Request, catalog *Catalog) (decimal.Decimal, error) {
	if req.QuantitySelection == SelectionCustom {
		return decimal.NewFromInt(int64(*req.CustomQuantity)), nil
	}
	qty, err := catalog.quantity(req.StandardQuantityID)
	if err != nil {
		return decimal.Zero, err
	}
	if qty.AdjustmentValue != nil {
		return decimal.NewFromFloat(*qty.AdjustmentValue), nil
	}
	return decimal.NewFromFloat(qty.CalculationValue), nil
}

func sidesMultiplier(sides Sides, isExceptionPaper bool, doubleSided decimal.Decimal) decimal.Decimal {
	if sides == SidesDouble && isExceptionPaper {
		return doubleSided
	}
	return decimal.NewFromInt(1)
}

func basePrice(pricePerSqInch, multiplier, size, quantity decimal.Decimal) decimal.Decimal {
	return pricePerSqInch.Mul(multiplier).Mul(size).Mul(quantity)
}

func calculateBase(req *Request, catalog *Catalog) (BaseCalculation, error) {
	paper, err := catalog.paperStock(req.PaperStockID)
	if err != nil {
		return BaseCalculation{}, err
	}
	size, label, err := effectiveSize(req, catalog)
	if err != nil {
		return BaseCalculation{}, err
	}
	qty, err := effectiveQuantity(req, catalog)
	if err != nil {
		return BaseCalculation{}, err
	}

	price := decimal.NewFromFloat(paper.PricePerSqInch)
	mult := sidesMultiplier(req.Sides, paper.IsExceptionPaper, decimal.NewFromFloat(paper.DoubleSidedMultiplier))

	return BaseCalculation{
		BasePrice:       basePrice(price, mult, size, qty),
		Size:            size,
		Quantity:        qty,
		SidesMultiplier: mult,
		PricePerSqInch:  price,
		SizeLabel:       label,
		PaperName:       paper.Name,
		Sides:           req.Sides,
	}, nil
}

// QuickCalculate runs only the base price formula, for ad-hoc estimates.
func QuickCalculate(pricePerSqInch, size, quantity float64, isDoubleSided, isExceptionPaper bool) BaseCalculation {
	sides := SidesSingle
	if isDoubleSided {
		sides = SidesDouble
	}
	price := decimal.NewFromFloat(pricePerSqInch)
	sz := decimal.NewFromFloat(size)
	qty := decimal.NewFromFloat(quantity)
	mult := sidesMultiplier(sides, isExceptionPaper, decimal.NewFromFloat(DefaultDoubleSidedMultiplier))

	return BaseCalculation{
		BasePrice:       basePrice(price, mult, sz, qty),
		Size:            sz,
		Quantity:        qty,
		SidesMultiplier: mult,
		PricePerSqInch:  price,
		Sides:           sides,
	}
}
