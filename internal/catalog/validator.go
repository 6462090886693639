package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/printshop/printshop/internal/pricing"
)

// Validator checks a catalog snapshot before it is handed to the pricing engine.
type Validator struct {
	fields *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{fields: validator.New()}
}

const (
	turnaroundModels = "oneof=FLAT PERCENTAGE CUSTOM"
	addonModels      = "oneof=FLAT PER_UNIT PERCENTAGE CUSTOM"
)

func (v *Validator) Validate(catalog *pricing.Catalog) error {
	if catalog == nil {
		return fmt.Errorf("catalog is required")
	}

	if len(catalog.PaperStocks) == 0 {
		return fmt.Errorf("at least one paper stock is required")
	}
	if len(catalog.Turnarounds) == 0 {
		return fmt.Errorf("at least one turnaround is required")
	}

	var errs []error

	ids := newIDSet("size")
	for i, s := range catalog.Sizes {
		errs = append(errs, ids.add(s.ID))
		errs = append(errs, v.check(fmt.Sprintf("sizes[%d]", i), []fieldRule{
			{"id", s.ID, "required"},
			{"width", s.Width, "gte=0"},
			{"height", s.Height, "gte=0"},
			{"pre_calculated_value", s.PreCalculatedValue, "gte=0"},
		}))
	}

	ids = newIDSet("quantity")
	for i, q := range catalog.Quantities {
		errs = append(errs, ids.add(q.ID))
		rules := []fieldRule{
			{"id", q.ID, "required"},
			{"display_value", q.DisplayValue, "gte=0"},
			{"calculation_value", q.CalculationValue, "gte=0"},
		}
		if q.AdjustmentValue != nil {
			rules = append(rules, fieldRule{"adjustment_value", *q.AdjustmentValue, "gte=0"})
		}
		errs = append(errs, v.check(fmt.Sprintf("quantities[%d]", i), rules))
	}

	ids = newIDSet("paper stock")
	for i, p := range catalog.PaperStocks {
		errs = append(errs, ids.add(p.ID))
		rules := []fieldRule{
			{"id", p.ID, "required"},
			{"name", p.Name, "required"},
			{"price_per_sq_inch", p.PricePerSqInch, "gte=0"},
		}
		if p.IsExceptionPaper {
			rules = append(rules, fieldRule{"double_sided_multiplier", p.DoubleSidedMultiplier, "gte=1"})
		}
		errs = append(errs, v.check(fmt.Sprintf("paper_stocks[%d]", i), rules))
	}

	ids = newIDSet("turnaround")
	for i, t := range catalog.Turnarounds {
		errs = append(errs, ids.add(t.ID))
		errs = append(errs, v.check(fmt.Sprintf("turnarounds[%d]", i), []fieldRule{
			{"id", t.ID, "required"},
			{"pricing_model", string(t.PricingModel), turnaroundModels},
			{"base_price", t.BasePrice, "gte=0"},
			{"price_multiplier", t.PriceMultiplier, "gte=0"},
			{"max_days", t.MaxDays, fmt.Sprintf("gte=%d", t.MinDays)},
		}))
	}

	ids = newIDSet("add-on")
	for i, a := range catalog.Addons {
		errs = append(errs, ids.add(a.ID))
		cfg := a.Configuration
		rules := []fieldRule{
			{"id", a.ID, "required"},
			{"name", a.Name, "required"},
			{"pricing_model", string(a.PricingModel), addonModels},
			{"configuration.flat_price", cfg.FlatPrice, "gte=0"},
			{"configuration.price", cfg.Price, "gte=0"},
			{"configuration.setup_fee", cfg.SetupFee, "gte=0"},
			{"configuration.price_per_unit", cfg.PricePerUnit, "gte=0"},
			{"configuration.percentage", cfg.Percentage, "gte=0,lte=100"},
		}
		if cfg.AppliesTo != "" {
			rules = append(rules, fieldRule{"configuration.applies_to", strings.ToLower(string(cfg.AppliesTo)), "oneof=base_price adjusted_base_price adjusted_base"})
		}
		errs = append(errs, v.check(fmt.Sprintf("addons[%d]", i), rules))
	}

	return errors.Join(errs...)
}

type fieldRule struct {
	name  string
	value any
	tag   string
}

func (v *Validator) check(path string, rules []fieldRule) error {
	for _, rule := range rules {
		if err := v.fields.Var(rule.value, rule.tag); err != nil {
			return fmt.Errorf("%s.%s: failed %q: %v", path, rule.name, rule.tag, rule.value)
		}
	}
	return nil
}

type idSet struct {
	kind string
	seen map[string]bool
}

func newIDSet(kind string) *idSet {
	return &idSet{kind: kind, seen: make(map[string]bool)}
}

func (s *idSet) add(id string) error {
	if id == "" {
		return nil
	}
	if s.seen[id] {
		return fmt.Errorf("duplicate %s id: %s", s.kind, id)
	}
	s.seen[id] = true
	return nil
}
