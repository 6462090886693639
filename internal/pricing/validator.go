package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CustomQuantityStep is the increment required for custom quantities above it.
const CustomQuantityStep = 5000

var sizeIncrement = decimal.RequireFromString("0.25")

type SizeValidation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

type QuantitySuggestion struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

type QuantityValidation struct {
	IsValid    bool                `json:"isValid"`
	Suggestion *QuantitySuggestion `json:"suggestion,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// ValidateCustomSize checks that both dimensions are exact multiples of 0.25 inch.
func ValidateCustomSize(width, height float64) SizeValidation {
	result := SizeValidation{IsValid: true, Errors: []string{}}
	for _, dim := range []struct {
		label string
		value float64
	}{{"Width", width}, {"Height", height}} {
		if msg, _ := checkDimension(dim.label, dim.value); msg != "" {
			result.IsValid = false
			result.Errors = append(result.Errors, msg)
		}
	}
	return result
}

// checkDimension returns an empty message for valid values, otherwise the
// message and the nearest valid values below and above.
func checkDimension(label string, value float64) (string, []string) {
	if !isFinite(value) {
		return label + " must be a finite number", nil
	}
	v := decimal.NewFromFloat(value)
	if v.Mod(sizeIncrement).IsZero() {
		return "", nil
	}
	lower := v.Div(sizeIncrement).Floor().Mul(sizeIncrement)
	upper := lower.Add(sizeIncrement)
	msg := fmt.Sprintf(`%s must be in 0.25 inch increments. Try %s" or %s"`, label, lower.String(), upper.String())
	return msg, []string{lower.String(), upper.String()}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateCustomQuantity accepts any quantity up to 5000 and multiples of 5000 above it.
func ValidateCustomQuantity(qty int) QuantityValidation {
	if qty <= CustomQuantityStep || qty%CustomQuantityStep == 0 {
		return QuantityValidation{IsValid: true}
	}
	lower := qty / CustomQuantityStep * CustomQuantityStep
	upper := lower + CustomQuantityStep
	return QuantityValidation{
		IsValid:    false,
		Suggestion: &QuantitySuggestion{Lower: lower, Upper: upper},
		Error: fmt.Sprintf("Quantities above %d must be in increments of %d. Try %d or %d",
			CustomQuantityStep, CustomQuantityStep, lower, upper),
	}
}

func validateRequest(req *Request) error {
	if req == nil {
		return &ValidationError{Field: "request", Message: "Pricing request is required"}
	}
	if err := validateSizeSelection(req); err != nil {
		return err
	}
	if err := validateQuantitySelection(req); err != nil {
		return err
	}
	if strings.TrimSpace(req.PaperStockID) == "" {
		return &ValidationError{Field: "paperStockId", Message: "Paper stock is required"}
	}
	if req.Sides != SidesSingle && req.Sides != SidesDouble {
		return &ValidationError{Field: "sides", Message: "Sides must be 'single' or 'double'"}
	}
	if strings.TrimSpace(req.TurnaroundID) == "" {
		return &ValidationError{Field: "turnaroundId", Message: "Turnaround is required"}
	}
	for i, sel := range req.SelectedAddons {
		if strings.TrimSpace(sel.AddonID) == "" {
			return &ValidationError{Field: fmt.Sprintf("selectedAddons[%d]", i), Message: "Add-on id is required"}
		}
	}
	return nil
}

func validateSizeSelection(req *Request) error {
	switch req.SizeSelection {
	case SelectionStandard:
		if strings.TrimSpace(req.StandardSizeID) == "" {
			return &ValidationError{Field: "standardSizeId", Message: "Please select a size"}
		}
		if req.CustomWidth != nil || req.CustomHeight != nil {
			return &ValidationError{Field: "sizeSelection", Message: "Choose either a standard size or a custom size, not both"}
		}
	case SelectionCustom:
		if req.StandardSizeID != "" {
			return &ValidationError{Field: "sizeSelection", Message: "Choose either a standard size or a custom size, not both"}
		}
		if req.CustomWidth == nil || req.CustomHeight == nil {
			return &ValidationError{Field: "customSize", Message: "Custom width and height are required"}
		}
		if !isFinite(*req.CustomWidth) || !isFinite(*req.CustomHeight) {
			return &ValidationError{Field: "customSize", Message: "Custom dimensions must be finite numbers"}
		}
		if *req.CustomWidth < 0 || *req.CustomHeight < 0 {
			return &ValidationError{Field: "customSize", Message: "Custom dimensions cannot be negative"}
		}
		var messages, suggestions []string
		if msg, s := checkDimension("Width", *req.CustomWidth); msg != "" {
			messages = append(messages, msg)
			suggestions = append(suggestions, s...)
		}
		if msg, s := checkDimension("Height", *req.CustomHeight); msg != "" {
			messages = append(messages, msg)
			suggestions = append(suggestions, s...)
		}
		if len(messages) > 0 {
			return &ValidationError{Field: "customSize", Message: strings.Join(messages, "; "), Suggestions: suggestions}
		}
	default:
		return &ValidationError{Field: "sizeSelection", Message: "Size selection must be 'standard' or 'custom'"}
	}
	return nil
}

func validateQuantitySelection(req *Request) error {
	switch req.QuantitySelection {
	case SelectionStandard:
		if strings.TrimSpace(req.StandardQuantityID) == "" {
			return &ValidationError{Field: "standardQuantityId", Message: "Please select a quantity"}
		}
		if req.CustomQuantity != nil {
			return &ValidationError{Field: "quantitySelection", Message: "Choose either a standard quantity or a custom quantity, not both"}
		}
	case SelectionCustom:
		if req.StandardQuantityID != "" {
			return &ValidationError{Field: "quantitySelection", Message: "Choose either a standard quantity or a custom quantity, not both"}
		}
		if req.CustomQuantity == nil {
			return &ValidationError{Field: "customQuantity", Message: "Custom quantity is required"}
		}
		if *req.CustomQuantity < 0 {
			return &ValidationError{Field: "customQuantity", Message: "Quantity cannot be negative"}
		}
		if v := ValidateCustomQuantity(*req.CustomQuantity); !v.IsValid {
			return &ValidationError{
				Field:       "customQuantity",
				Message:     v.Error,
				Suggestions: []string{fmt.Sprint(v.Suggestion.Lower), fmt.Sprint(v.Suggestion.Upper)},
			}
		}
	default:
		return &ValidationError{Field: "quantitySelection", Message: "Quantity selection must be 'standard' or 'custom'"}
	}
	return nil
}
