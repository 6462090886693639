package pricing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation    = errors.New("invalid pricing request")
	ErrCatalogLookup = errors.New("catalog entry not found")

	ErrUnsupportedPricingModel = errors.New("unsupported pricing model")
)

// CatalogUnavailableMessage is shown to customers when a referenced catalog entry is gone.
const CatalogUnavailableMessage = "This configuration is no longer available, please reconfigure your product."

// ValidationError rejects a malformed or business-rule-violating request.
type ValidationError struct {
	Field       string
	Message     string
	Suggestions []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CatalogLookupError reports a request id missing from (or inactive in) the catalog snapshot.
type CatalogLookupError struct {
	Kind     string
	ID       string
	Inactive bool
}

func (e *CatalogLookupError) Error() string {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Sprintf("%s is required", e.Kind)
	}
	if e.Inactive {
		return fmt.Sprintf("%s %q is no longer active", e.Kind, e.ID)
	}
	return fmt.Sprintf("%s %q not found in catalog", e.Kind, e.ID)
}

func (e *CatalogLookupError) Is(target error) bool {
	return target == ErrCatalogLookup
}

func (e *CatalogLookupError) UserMessage() string {
	return CatalogUnavailableMessage
}
