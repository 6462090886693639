package pricing

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func nearlyEqual(t *testing.T, name string, got decimal.Decimal, want, tolerance float64) {
	t.Helper()
	if math.Abs(got.InexactFloat64()-want) > tolerance {
		t.Fatalf("%s = %s, want %v", name, got.String(), want)
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func testCatalog() *Catalog {
	return &Catalog{
		Sizes: []Size{
			{ID: "4x6", Name: `4" x 6"`, Width: 4, Height: 6, PreCalculatedValue: 24, IsActive: true},
			{ID: "2x3.5", Name: `2" x 3.5"`, Width: 2, Height: 3.5, PreCalculatedValue: 7, IsActive: true},
			{ID: "8.5x11", Name: `8.5" x 11"`, Width: 8.5, Height: 11, PreCalculatedValue: 93.5, IsActive: true},
			{ID: "retired", Name: "Retired", Width: 1, Height: 1, PreCalculatedValue: 1, IsActive: false},
		},
		Quantities: []Quantity{
			{ID: "q100", DisplayValue: 100, CalculationValue: 125},
			{ID: "q250", DisplayValue: 250, CalculationValue: 250, AdjustmentValue: floatPtr(300)},
			{ID: "q1000", DisplayValue: 1000, CalculationValue: 1000},
			{ID: "q5000", DisplayValue: 5000, CalculationValue: 5000},
		},
		PaperStocks: []PaperStock{
			{ID: "14pt", Name: "14pt Cardstock Gloss", PricePerSqInch: 0.00145833333, DoubleSidedMultiplier: 1},
			{ID: "16pt", Name: "16pt Cardstock Matte", PricePerSqInch: 0.0016, DoubleSidedMultiplier: 1.5},
			{ID: "70lb", Name: "70lb Text", PricePerSqInch: 0.002, IsExceptionPaper: true, DoubleSidedMultiplier: 1.75},
		},
		Turnarounds: []Turnaround{
			{ID: "standard", Name: "Standard", MinDays: 5, MaxDays: 7, PricingModel: ModelPercentage, IsStandard: true},
			{ID: "rush", Name: "Rush", MinDays: 2, MaxDays: 3, PricingModel: ModelPercentage, PriceMultiplier: 0.25},
			{ID: "flat", Name: "Next Day Flat", MinDays: 1, MaxDays: 1, PricingModel: ModelFlat, BasePrice: 30},
			{ID: "custom", Name: "Same Day", PricingModel: ModelCustom, PriceMultiplier: 0.5, BasePrice: 15},
		},
		Addons: []Addon{
			{ID: "tagline", Name: TaglineAddonName, PricingModel: ModelPercentage, IsActive: true,
				Configuration: AddonConfiguration{Percentage: 5, AppliesTo: AppliesToBasePrice}},
			{ID: "exact", Name: ExactSizeAddonName, PricingModel: ModelPercentage, IsActive: true,
				Configuration: AddonConfiguration{Percentage: 12.5, AppliesTo: AppliesToAdjustedBase}},
			{ID: "proof", Name: "Digital Proof", PricingModel: ModelFlat, IsActive: true, SortOrder: 1,
				Configuration: AddonConfiguration{FlatPrice: 5}},
			{ID: "numbering", Name: "Numbering", PricingModel: ModelPerUnit, IsActive: true, SortOrder: 2,
				Configuration: AddonConfiguration{SetupFee: 20, PricePerUnit: 0.01}},
			{ID: "corners", Name: "Rounded Corners", PricingModel: ModelPercentage, IsActive: true, SortOrder: 3,
				Configuration: AddonConfiguration{Percentage: 10, AppliesTo: AppliesToBasePrice}},
			{ID: "foil", Name: "Foil Stamping", PricingModel: ModelCustom, IsActive: true, SortOrder: 4,
				Configuration: AddonConfiguration{Percentage: 20, FlatPrice: 25, AppliesTo: AppliesToAdjustedBasePrice}},
			{ID: "legacy", Name: "Legacy Coating", PricingModel: ModelFlat, IsActive: false,
				Configuration: AddonConfiguration{Price: 9}},
		},
	}
}

func standardRequest() *Request {
	return &Request{
		CategoryID:         "postcards",
		SizeSelection:      SelectionStandard,
		StandardSizeID:     "4x6",
		QuantitySelection:  SelectionStandard,
		StandardQuantityID: "q5000",
		PaperStockID:       "14pt",
		Sides:              SidesSingle,
		TurnaroundID:       "standard",
	}
}

func TestCalculatePrice_StandardPostcard(t *testing.T) {
	t.Parallel()

	result, err := NewEngine().CalculatePrice(standardRequest(), testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nearlyEqual(t, "basePrice", result.BaseCalculation.BasePrice, 175.00, 0.001)
	nearlyEqual(t, "size", result.BaseCalculation.Size, 24, 1e-9)
	nearlyEqual(t, "quantity", result.BaseCalculation.Quantity, 5000, 1e-9)
	nearlyEqual(t, "sidesMultiplier", result.BaseCalculation.SidesMultiplier, 1, 1e-9)
	nearlyEqual(t, "markupAmount", result.Turnaround.MarkupAmount, 0, 1e-9)
	nearlyEqual(t, "final", result.Totals.Final, 175.00, 0.001)
	if len(result.Addons) != 0 {
		t.Fatalf("expected no add-on lines, got %d", len(result.Addons))
	}
	if !result.Validation.IsValid {
		t.Fatalf("expected valid result")
	}
}

func TestCalculatePrice_ExceptionPaperDoubleSided(t *testing.T) {
	t.Parallel()

	req := standardRequest()
	req.StandardQuantityID = "q100"
	req.PaperStockID = "70lb"
	req.Sides = SidesDouble

	result, err := NewEngine().CalculatePrice(req, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nearlyEqual(t, "quantity", result.BaseCalculation.Quantity, 125, 1e-9)
	nearlyEqual(t, "sidesMultiplier", result.BaseCalculation.SidesMultiplier, 1.75, 1e-9)
	nearlyEqual(t, "basePrice", result.BaseCalculation.BasePrice, 10.50, 1e-9)
}

func TestCalculatePrice_CustomSize(t *testing.T) {
	t.Parallel()

	req := standardRequest()
	req.SizeSelection = SelectionCustom
	req.StandardSizeID = ""
	req.CustomWidth = floatPtr(5.5)
	req.CustomHeight = floatPtr(8.5)

	result, err := NewEngine().CalculatePrice(req, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "size", result.BaseCalculation.Size, 46.75, 1e-9)
}

func TestCalculatePrice_CustomSizeRejectsBadIncrement(t *testing.T) {
	t.Parallel()

	req := standardRequest()
	req.SizeSelection = SelectionCustom
	req.StandardSizeID = ""
	req.CustomWidth = floatPtr(5.3)
	req.CustomHeight = floatPtr(8.5)

	result, err := NewEngine().CalculatePrice(req, testCatalog())
	if result != nil {
		t.Fatalf("expected no partial result")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if vErr.Field != "customSize" {
		t.Fatalf("field = %q", vErr.Field)
	}
	if len(vErr.Suggestions) != 2 || vErr.Suggestions[0] != "5.25" || vErr.Suggestions[1] != "5.5" {
		t.Fatalf("suggestions = %v, want [5.25 5.5]", vErr.Suggestions)
	}
}

func TestCalculatePrice_CustomSizeRejectsNonFinite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		width  float64
		height float64
	}{
		{name: "nan width", width: math.NaN(), height: 8.5},
		{name: "infinite height", width: 5.5, height: math.Inf(1)},
		{name: "negative infinite width", width: math.Inf(-1), height: 8.5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := standardRequest()
			req.SizeSelection = SelectionCustom
			req.StandardSizeID = ""
			req.CustomWidth = floatPtr(tc.width)
			req.CustomHeight = floatPtr(tc.height)

			result, err := NewEngine().CalculatePrice(req, testCatalog())
			if result != nil {
				t.Fatalf("expected no result")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if vErr.Field != "customSize" {
				t.Fatalf("field = %q", vErr.Field)
			}
		})
	}
}

func TestCalculatePrice_CustomQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		qty     int
		wantErr bool
	}{
		{name: "small custom run", qty: 2500},
		{name: "off step above threshold", qty: 5001, wantErr: true},
		{name: "multiple of step", qty: 10000},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := standardRequest()
			req.QuantitySelection = SelectionCustom
			req.StandardQuantityID = ""
			req.CustomQuantity = intPtr(tc.qty)

			result, err := NewEngine().CalculatePrice(req, testCatalog())
			if tc.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			nearlyEqual(t, "quantity", result.BaseCalculation.Quantity, float64(tc.qty), 1e-9)
		})
	}
}

func TestCalculatePrice_BrokerDiscountExcludesTagline(t *testing.T) {
	t.Parallel()

	req := standardRequest()
	req.IsBroker = true
	req.BrokerCategoryDiscounts = []BrokerCategoryDiscount{
		{CategoryID: "flyers", DiscountPercent: 30},
		{CategoryID: "postcards", DiscountPercent: 10},
	}
	req.SelectedAddons = []SelectedAddon{{AddonID: "tagline"}}

	result, err := NewEngine().CalculatePrice(req, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	broker := result.Adjustments.BrokerDiscount
	if !broker.Applied {
		t.Fatalf("expected broker discount to apply")
	}
	nearlyEqual(t, "broker percentage", broker.Percentage, 10, 1e-9)
	nearlyEqual(t, "broker amount", broker.Amount, 17.50, 0.001)
	nearlyEqual(t, "afterAdjustments", result.Totals.AfterAdjustments, 157.50, 0.001)

	if result.Adjustments.TaglineDiscount.Applied {
		t.Fatalf("tagline discount must not apply for brokers")
	}
	if len(result.Addons) != 0 {
		t.Fatalf("reserved add-ons must not become line items, got %+v", result.Addons)
	}
}

func TestCalculatePrice_BrokerWithoutMatchingCategory(t *testing.T) {
	t.Parallel()

	req := standardRequest()
	req.IsBroker = true
	req.BrokerCategoryDiscounts = []BrokerCategoryDiscount{{CategoryID: "banners", DiscountPercent: 15}}
	req.SelectedAddons = []SelectedAddon{{AddonID: "tagline"}}

	result, err := NewEngine().CalculatePrice(req, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Adjustments.BrokerDiscount.Applied {
		t.Fatalf("broker discount should not apply without a category match")
	}
	if result.Adjustments.TaglineDiscount.Applied {
		t.Fatalf("tagline discount must not apply for brokers")
	}
}

func TestCalculatePrice_TaglineForRetailCustomer(t *testing.T) {
	t.Parallel()

	req := standardRequest()
	req.PaperStockID = "16pt"
	req.SelectedAddons = []SelectedAddon{{AddonID: "tagline"}}

	result, err := NewEngine().CalculatePrice(req, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 0.0016 × 24 × 5000 = 192; 5% tagline = 9.60
	nearlyEqual(t, "basePrice", result.BaseCalculation.BasePrice, 192, 1e-9)
	nearlyEqual(t, "tagline", result.Adjustments.TaglineDiscount.Amount, 9.60, 1e-9)
	nearlyEqual(t, "afterAdjustments", result.Totals.AfterAdjustments, 182.40, 1e-9)
}

func TestCalculatePrice_RushTurnaround(t *testing.T) {
	t.Parallel()

	req := standardRequest()
	req.TurnaroundID = "rush"
	req.IsBroker = true
	req.BrokerCategoryDiscounts = []BrokerCategoryDiscount{{CategoryID: "postcards", DiscountPercent: 10}}

	result, err := NewEngine().CalculatePrice(req, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nearlyEqual(t, "markupPercent", result.Turnaround.MarkupPercent, 25, 1e-9)
	nearlyEqual(t, "markupAmount", result.Turnaround.MarkupAmount, 39.375, 0.001)
	nearlyEqual(t, "final", result.Totals.Final, 196.875, 0.001)
}

func TestCalculatePrice_AddonsAndExactSize(t *testing.T) {
	t.Parallel()

	req := standardRequest()
	req.PaperStockID = "16pt"
	req.TurnaroundID = "flat"
	req.SelectedAddons = []SelectedAddon{
		{AddonID: "foil"},
		{AddonID: "numbering", Params: map[string]any{"start": 100}},
		{AddonID: "exact"},
		{AddonID: "tagline"},
		{AddonID: "proof"},
		{AddonID: "corners"},
		{AddonID: "proof"},
	}

	result, err := NewEngine().CalculatePrice(req, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// base 192, tagline 9.60, exact size 12.5% of 182.40 = 22.80
	nearlyEqual(t, "tagline", result.Adjustments.TaglineDiscount.Amount, 9.60, 1e-9)
	nearlyEqual(t, "exactSize", result.Adjustments.ExactSizeMarkup.Amount, 22.80, 1e-9)
	nearlyEqual(t, "afterAdjustments", result.Totals.AfterAdjustments, 205.20, 1e-9)
	nearlyEqual(t, "turnaround", result.Turnaround.MarkupAmount, 30, 1e-9)

	wantLines := []struct {
		id   string
		cost float64
	}{
		{"proof", 5},
		{"numbering", 70},     // 20 + 0.01 × 5000
		{"corners", 19.2},     // 10% of 192
		{"foil", 41.04 + 25}, // 20% of 205.20 + 25
	}
	if len(result.Addons) != len(wantLines) {
		t.Fatalf("got %d add-on lines, want %d: %+v", len(result.Addons), len(wantLines), result.Addons)
	}
	for i, want := range wantLines {
		if result.Addons[i].ID != want.id {
			t.Fatalf("line %d = %s, want %s", i, result.Addons[i].ID, want.id)
		}
		nearlyEqual(t, want.id, result.Addons[i].Cost, want.cost, 1e-9)
	}
	if got := result.Addons[1].Calculation; got != "$20 setup + $0.01 × 5000 pieces" {
		t.Fatalf("numbering calculation = %q", got)
	}
	if result.Addons[1].Params["start"] != 100 {
		t.Fatalf("expected params to be carried through, got %v", result.Addons[1].Params)
	}

	nearlyEqual(t, "totalAddons", result.TotalAddonsCost, 160.24, 1e-9)
	nearlyEqual(t, "final", result.Totals.Final, 205.20+30+160.24, 1e-9)
}

func TestCalculatePrice_CatalogLookupErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(r *Request)
		wantKind string
	}{
		{name: "unknown size", mutate: func(r *Request) { r.StandardSizeID = "10x10" }, wantKind: "size"},
		{name: "inactive size", mutate: func(r *Request) { r.StandardSizeID = "retired" }, wantKind: "size"},
		{name: "unknown quantity", mutate: func(r *Request) { r.StandardQuantityID = "q42" }, wantKind: "quantity"},
		{name: "unknown paper", mutate: func(r *Request) { r.PaperStockID = "vinyl" }, wantKind: "paper stock"},
		{name: "unknown turnaround", mutate: func(r *Request) { r.TurnaroundID = "warp" }, wantKind: "turnaround"},
		{name: "unknown add-on", mutate: func(r *Request) { r.SelectedAddons = []SelectedAddon{{AddonID: "glitter"}} }, wantKind: "add-on"},
		{name: "inactive add-on", mutate: func(r *Request) { r.SelectedAddons = []SelectedAddon{{AddonID: "legacy"}} }, wantKind: "add-on"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := standardRequest()
			tc.mutate(req)

			result, err := NewEngine().CalculatePrice(req, testCatalog())
			if result != nil {
				t.Fatalf("expected no result")
			}
			if !errors.Is(err, ErrCatalogLookup) {
				t.Fatalf("expected ErrCatalogLookup, got %v", err)
			}
			var lookupErr *CatalogLookupError
			if !errors.As(err, &lookupErr) {
				t.Fatalf("expected *CatalogLookupError, got %T", err)
			}
			if lookupErr.Kind != tc.wantKind {
				t.Fatalf("kind = %q, want %q", lookupErr.Kind, tc.wantKind)
			}
			if lookupErr.UserMessage() != CatalogUnavailableMessage {
				t.Fatalf("unexpected user message %q", lookupErr.UserMessage())
			}
		})
	}
}

func TestCalculatePrice_ZeroQuantityIsNotAnError(t *testing.T) {
	t.Parallel()

	req := standardRequest()
	req.QuantitySelection = SelectionCustom
	req.StandardQuantityID = ""
	req.CustomQuantity = intPtr(0)

	result, err := NewEngine().CalculatePrice(req, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.BaseCalculation.BasePrice.IsZero() {
		t.Fatalf("basePrice = %s, want 0", result.BaseCalculation.BasePrice)
	}
}

func TestCalculatePrice_UnsupportedTurnaroundModel(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	catalog.Turnarounds = append(catalog.Turnarounds, Turnaround{ID: "odd", PricingModel: "TIERED"})
	req := standardRequest()
	req.TurnaroundID = "odd"

	if _, err := NewEngine().CalculatePrice(req, catalog); !errors.Is(err, ErrUnsupportedPricingModel) {
		t.Fatalf("expected ErrUnsupportedPricingModel, got %v", err)
	}
}

func TestCalculatePrice_NilCatalog(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine().CalculatePrice(standardRequest(), nil); err == nil {
		t.Fatalf("expected error for nil catalog")
	}
}

func TestCalculatePrice_StandardBasePriceProperty(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	engine := NewEngine()
	for _, size := range catalog.Sizes {
		if !size.IsActive {
			continue
		}
		for _, qty := range catalog.Quantities {
			for _, paper := range catalog.PaperStocks {
				for _, sides := range []Sides{SidesSingle, SidesDouble} {
					if paper.IsExceptionPaper && sides == SidesDouble {
						continue
					}
					req := standardRequest()
					req.StandardSizeID = size.ID
					req.StandardQuantityID = qty.ID
					req.PaperStockID = paper.ID
					req.Sides = sides

					result, err := engine.CalculatePrice(req, catalog)
					if err != nil {
						t.Fatalf("unexpected error: %v", err)
					}

					q := qty.CalculationValue
					if qty.AdjustmentValue != nil {
						q = *qty.AdjustmentValue
					}
					want := paper.PricePerSqInch * size.PreCalculatedValue * q
					nearlyEqual(t, size.ID+"/"+qty.ID+"/"+paper.ID, result.BaseCalculation.BasePrice, want, 1e-9)
					nearlyEqual(t, "sidesMultiplier", result.BaseCalculation.SidesMultiplier, 1, 1e-9)
				}
			}
		}
	}
}

func TestCalculatePrice_SidesMultiplierOnlyForExceptionPaper(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	for _, paper := range catalog.PaperStocks {
		req := standardRequest()
		req.PaperStockID = paper.ID
		req.Sides = SidesDouble

		result, err := NewEngine().CalculatePrice(req, catalog)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := 1.0
		if paper.IsExceptionPaper {
			want = paper.DoubleSidedMultiplier
		}
		nearlyEqual(t, paper.ID+" sidesMultiplier", result.BaseCalculation.SidesMultiplier, want, 1e-9)
	}
}

func TestCalculatePrice_FinalTotalIdentity(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	addonSets := [][]SelectedAddon{
		nil,
		{{AddonID: "proof"}},
		{{AddonID: "tagline"}, {AddonID: "numbering"}},
		{{AddonID: "exact"}, {AddonID: "foil"}, {AddonID: "corners"}},
	}
	for _, turnaround := range catalog.Turnarounds {
		for _, addons := range addonSets {
			for _, broker := range []bool{false, true} {
				req := standardRequest()
				req.TurnaroundID = turnaround.ID
				req.SelectedAddons = addons
				req.IsBroker = broker
				req.BrokerCategoryDiscounts = []BrokerCategoryDiscount{{CategoryID: "postcards", DiscountPercent: 20}}

				result, err := NewEngine().CalculatePrice(req, catalog)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				want := result.Totals.AfterAdjustments.Add(result.Turnaround.MarkupAmount).Add(result.TotalAddonsCost)
				if !result.Totals.Final.Equal(want) {
					t.Fatalf("final %s != %s", result.Totals.Final, want)
				}
				if result.Adjustments.BrokerDiscount.Applied && result.Adjustments.TaglineDiscount.Applied {
					t.Fatalf("broker and tagline discounts both applied")
				}
				if result.Totals.Final.IsNegative() {
					t.Fatalf("final total is negative: %s", result.Totals.Final)
				}
			}
		}
	}
}

func TestCalculatePrice_Idempotent(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	req := standardRequest()
	req.TurnaroundID = "custom"
	req.SelectedAddons = []SelectedAddon{{AddonID: "foil"}, {AddonID: "tagline"}, {AddonID: "numbering"}}

	first, err := NewEngine().CalculatePrice(req, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewEngine().CalculatePrice(req, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("results differ:\n%s\n%s", a, b)
	}
}

func TestCalculatePrice_BreakdownSectionOrder(t *testing.T) {
	t.Parallel()

	req := standardRequest()
	req.SelectedAddons = []SelectedAddon{{AddonID: "proof"}}

	result, err := NewEngine().CalculatePrice(req, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{SectionBase, SectionAdjustment, SectionTurnaround, SectionAddons, SectionTotals}
	if len(result.DisplayBreakdown) != len(want) {
		t.Fatalf("got %d sections, want %d", len(result.DisplayBreakdown), len(want))
	}
	for i, title := range want {
		if result.DisplayBreakdown[i].Title != title {
			t.Fatalf("section %d = %q, want %q", i, result.DisplayBreakdown[i].Title, title)
		}
		if len(result.DisplayBreakdown[i].Lines) == 0 {
			t.Fatalf("section %q has no lines", title)
		}
	}
}

func TestQuickCalculate(t *testing.T) {
	t.Parallel()

	single := QuickCalculate(0.002, 24, 125, false, true)
	nearlyEqual(t, "single", single.BasePrice, 6, 1e-9)

	double := QuickCalculate(0.002, 24, 125, true, true)
	nearlyEqual(t, "double exception", double.BasePrice, 10.5, 1e-9)
	nearlyEqual(t, "multiplier", double.SidesMultiplier, DefaultDoubleSidedMultiplier, 1e-9)

	cardstock := QuickCalculate(0.002, 24, 125, true, false)
	nearlyEqual(t, "double cardstock", cardstock.BasePrice, 6, 1e-9)
}
