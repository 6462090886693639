// Package pricing turns a print product configuration into an authoritative price.
package pricing

import "strings"

type SelectionMode string

const (
	SelectionStandard SelectionMode = "standard"
	SelectionCustom   SelectionMode = "custom"
)

type Sides string

const (
	SidesSingle Sides = "single"
	SidesDouble Sides = "double"
)

type PricingModel string

const (
	ModelFlat       PricingModel = "FLAT"
	ModelPerUnit    PricingModel = "PER_UNIT"
	ModelPercentage PricingModel = "PERCENTAGE"
	ModelCustom     PricingModel = "CUSTOM"
)

// AppliesTo selects the reference amount a percentage is taken from.
type AppliesTo string

const (
	AppliesToBasePrice         AppliesTo = "base_price"
	AppliesToAdjustedBasePrice AppliesTo = "adjusted_base_price"
	AppliesToAdjustedBase      AppliesTo = "adjusted_base"
)

func (a AppliesTo) adjusted() bool {
	switch AppliesTo(strings.ToLower(strings.TrimSpace(string(a)))) {
	case AppliesToAdjustedBasePrice, AppliesToAdjustedBase:
		return true
	default:
		return false
	}
}

// Reserved add-on names. These adjust the base price instead of adding a line item.
const (
	TaglineAddonName   = "Our Tagline"
	ExactSizeAddonName = "Exact Size"
)

type Size struct {
	ID                 string  `json:"id" yaml:"id"`
	Name               string  `json:"name" yaml:"name"`
	Width              float64 `json:"width" yaml:"width"`
	Height             float64 `json:"height" yaml:"height"`
	PreCalculatedValue float64 `json:"preCalculatedValue" yaml:"pre_calculated_value"`
	IsCustomEligible   bool    `json:"isCustomEligible" yaml:"is_custom_eligible"`
	IsActive           bool    `json:"isActive" yaml:"is_active"`
}

type Quantity struct {
	ID               string   `json:"id" yaml:"id"`
	DisplayValue     int      `json:"displayValue" yaml:"display_value"`
	CalculationValue float64  `json:"calculationValue" yaml:"calculation_value"`
	AdjustmentValue  *float64 `json:"adjustmentValue,omitempty" yaml:"adjustment_value"`
	IsCustomEligible bool     `json:"isCustomEligible" yaml:"is_custom_eligible"`
}

type PaperStock struct {
	ID                    string  `json:"id" yaml:"id"`
	Name                  string  `json:"name" yaml:"name"`
	PricePerSqInch        float64 `json:"pricePerSqInch" yaml:"price_per_sq_inch"`
	IsExceptionPaper      bool    `json:"isExceptionPaper" yaml:"is_exception_paper"`
	DoubleSidedMultiplier float64 `json:"doubleSidedMultiplier" yaml:"double_sided_multiplier"`
	PaperType             string  `json:"paperType,omitempty" yaml:"paper_type"`
	Thickness             string  `json:"thickness,omitempty" yaml:"thickness"`
	Coating               string  `json:"coating,omitempty" yaml:"coating"`
}

// Turnaround is a production-speed tier. PriceMultiplier is a fraction (0.25 = 25%).
type Turnaround struct {
	ID              string       `json:"id" yaml:"id"`
	Name            string       `json:"name" yaml:"name"`
	MinDays         int          `json:"minDays" yaml:"min_days"`
	MaxDays         int          `json:"maxDays" yaml:"max_days"`
	PricingModel    PricingModel `json:"pricingModel" yaml:"pricing_model"`
	BasePrice       float64      `json:"basePrice" yaml:"base_price"`
	PriceMultiplier float64      `json:"priceMultiplier" yaml:"price_multiplier"`
	IsStandard      bool         `json:"isStandard" yaml:"is_standard"`
}

// AddonConfiguration is the variant payload of an add-on. Which fields are read
// depends on the add-on's PricingModel.
type AddonConfiguration struct {
	FlatPrice    float64   `json:"flatPrice,omitempty" yaml:"flat_price"`
	Price        float64   `json:"price,omitempty" yaml:"price"`
	SetupFee     float64   `json:"setupFee,omitempty" yaml:"setup_fee"`
	PricePerUnit float64   `json:"pricePerUnit,omitempty" yaml:"price_per_unit"`
	Percentage   float64   `json:"percentage,omitempty" yaml:"percentage"`
	AppliesTo    AppliesTo `json:"appliesTo,omitempty" yaml:"applies_to"`
}

// flat returns flatPrice, falling back to price.
func (c AddonConfiguration) flat() float64 {
	if c.FlatPrice != 0 {
		return c.FlatPrice
	}
	return c.Price
}

type Addon struct {
	ID            string             `json:"id" yaml:"id"`
	Name          string             `json:"name" yaml:"name"`
	Category      string             `json:"category,omitempty" yaml:"category"`
	PricingModel  PricingModel       `json:"pricingModel" yaml:"pricing_model"`
	Configuration AddonConfiguration `json:"configuration" yaml:"configuration"`
	IsActive      bool               `json:"isActive" yaml:"is_active"`
	SortOrder     int                `json:"sortOrder" yaml:"sort_order"`
}

func (a Addon) isTagline() bool {
	return a.PricingModel == ModelPercentage && strings.EqualFold(strings.TrimSpace(a.Name), TaglineAddonName)
}

func (a Addon) isExactSize() bool {
	return a.PricingModel == ModelPercentage && strings.EqualFold(strings.TrimSpace(a.Name), ExactSizeAddonName)
}

func (a Addon) reserved() bool {
	return a.isTagline() || a.isExactSize()
}

type BrokerCategoryDiscount struct {
	CategoryID      string  `json:"categoryId" yaml:"category_id"`
	DiscountPercent float64 `json:"discountPercent" yaml:"discount_percent"`
}

// Catalog is a read-only snapshot supplied by the caller for one calculation.
type Catalog struct {
	Sizes       []Size       `json:"sizes" yaml:"sizes"`
	Quantities  []Quantity   `json:"quantities" yaml:"quantities"`
	PaperStocks []PaperStock `json:"paperStocks" yaml:"paper_stocks"`
	Turnarounds []Turnaround `json:"turnarounds" yaml:"turnarounds"`
	Addons      []Addon      `json:"addons" yaml:"addons"`
}

func (c *Catalog) size(id string) (Size, error) {
	for _, s := range c.Sizes {
		if s.ID == id {
			if !s.IsActive {
				return Size{}, &CatalogLookupError{Kind: "size", ID: id, Inactive: true}
			}
			return s, nil
		}
	}
	return Size{}, &CatalogLookupError{Kind: "size", ID: id}
}

func (c *Catalog) quantity(id string) (Quantity, error) {
	for _, q := range c.Quantities {
		if q.ID == id {
			return q, nil
		}
	}
	return Quantity{}, &CatalogLookupError{Kind: "quantity", ID: id}
}

func (c *Catalog) paperStock(id string) (PaperStock, error) {
	for _, p := range c.PaperStocks {
		if p.ID == id {
			return p, nil
		}
	}
	return PaperStock{}, &CatalogLookupError{Kind: "paper stock", ID: id}
}

func (c *Catalog) turnaround(id string) (Turnaround, error) {
	for _, t := range c.Turnarounds {
		if t.ID == id {
			return t, nil
		}
	}
	return Turnaround{}, &CatalogLookupError{Kind: "turnaround", ID: id}
}

func (c *Catalog) addon(id string) (Addon, error) {
	for _, a := range c.Addons {
		if a.ID == id {
			if !a.IsActive {
				return Addon{}, &CatalogLookupError{Kind: "add-on", ID: id, Inactive: true}
			}
			return a, nil
		}
	}
	return Addon{}, &CatalogLookupError{Kind: "add-on", ID: id}
}

type SelectedAddon struct {
	AddonID string         `json:"addonId"`
	Params  map[string]any `json:"params,omitempty"`
}

// Request is one price calculation input built from the customer's selections.
type Request struct {
	CategoryID              string                   `json:"categoryId,omitempty"`
	SizeSelection           SelectionMode            `json:"sizeSelection"`
	StandardSizeID          string                   `json:"standardSizeId,omitempty"`
	CustomWidth             *float64                 `json:"customWidth,omitempty"`
	CustomHeight            *float64                 `json:"customHeight,omitempty"`
	QuantitySelection       SelectionMode            `json:"quantitySelection"`
	StandardQuantityID      string                   `json:"standardQuantityId,omitempty"`
	CustomQuantity          *int                     `json:"customQuantity,omitempty"`
	PaperStockID            string                   `json:"paperStockId"`
	Sides                   Sides                    `json:"sides"`
	TurnaroundID            string                   `json:"turnaroundId"`
	SelectedAddons          []SelectedAddon          `json:"selectedAddons,omitempty"`
	IsBroker                bool                     `json:"isBroker"`
	BrokerCategoryDiscounts []BrokerCategoryDiscount `json:"brokerCategoryDiscounts,omitempty"`
}
