package catalog

import (
	"context"

	"github.com/printshop/printshop/internal/pricing"
)

// Source produces the catalog snapshot used for a single price calculation.
type Source interface {
	Load(ctx context.Context) (*pricing.Catalog, error)
}
