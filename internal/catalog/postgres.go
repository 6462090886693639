package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/printshop/printshop/internal/pricing"
)

// Querier is the subset of *pgxpool.Pool the Postgres source needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const (
	sizesQuery = `SELECT id, name, width, height, pre_calculated_value, is_custom_eligible, is_active
		FROM sizes ORDER BY id`
	quantitiesQuery = `SELECT id, display_value, calculation_value, adjustment_value, is_custom_eligible
		FROM quantities ORDER BY display_value, id`
	paperStocksQuery = `SELECT id, name, price_per_sq_inch, is_exception_paper, double_sided_multiplier,
		COALESCE(paper_type, ''), COALESCE(thickness, ''), COALESCE(coating, '')
		FROM paper_stocks ORDER BY id`
	turnaroundsQuery = `SELECT id, name, min_days, max_days, pricing_model, base_price, price_multiplier, is_standard
		FROM turnarounds ORDER BY min_days, id`
	addonsQuery = `SELECT id, name, COALESCE(category, ''), pricing_model, configuration, is_active, sort_order
		FROM addons ORDER BY sort_order, name`
)

// PostgresSource reads the catalog tables. It never writes.
type PostgresSource struct {
	db        Querier
	validator *Validator
}

func NewPostgresSource(db Querier) (*PostgresSource, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}
	return &PostgresSource{db: db, validator: NewValidator()}, nil
}

func (s *PostgresSource) Load(ctx context.Context) (*pricing.Catalog, error) {
	var (
		catalog pricing.Catalog
		err     error
	)

	if catalog.Sizes, err = queryAll(ctx, s.db, sizesQuery, scanSize); err != nil {
		return nil, fmt.Errorf("failed to load sizes: %w", err)
	}
	if catalog.Quantities, err = queryAll(ctx, s.db, quantitiesQuery, scanQuantity); err != nil {
		return nil, fmt.Errorf("failed to load quantities: %w", err)
	}
	if catalog.PaperStocks, err = queryAll(ctx, s.db, paperStocksQuery, scanPaperStock); err != nil {
		return nil, fmt.Errorf("failed to load paper stocks: %w", err)
	}
	if catalog.Turnarounds, err = queryAll(ctx, s.db, turnaroundsQuery, scanTurnaround); err != nil {
		return nil, fmt.Errorf("failed to load turnarounds: %w", err)
	}
	if catalog.Addons, err = queryAll(ctx, s.db, addonsQuery, scanAddon); err != nil {
		return nil, fmt.Errorf("failed to load add-ons: %w", err)
	}

	if err := s.validator.Validate(&catalog); err != nil {
		return nil, fmt.Errorf("catalog tables failed validation: %w", err)
	}

	return &catalog, nil
}

// Ping checks the connection with a trivial statement.
func (s *PostgresSource) Ping(ctx context.Context) error {
	_, err := s.db.Exec(ctx, "SELECT 1")
	return err
}

func queryAll[T any](ctx context.Context, db Querier, sql string, scan pgx.RowToFunc[T]) ([]T, error) {
	rows, err := db.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scan)
}

func scanSize(row pgx.CollectableRow) (pricing.Size, error) {
	var s pricing.Size
	err := row.Scan(&s.ID, &s.Name, &s.Width, &s.Height, &s.PreCalculatedValue, &s.IsCustomEligible, &s.IsActive)
	return s, err
}

func scanQuantity(row pgx.CollectableRow) (pricing.Quantity, error) {
	var q pricing.Quantity
	err := row.Scan(&q.ID, &q.DisplayValue, &q.CalculationValue, &q.AdjustmentValue, &q.IsCustomEligible)
	return q, err
}

func scanPaperStock(row pgx.CollectableRow) (pricing.PaperStock, error) {
	var p pricing.PaperStock
	err := row.Scan(&p.ID, &p.Name, &p.PricePerSqInch, &p.IsExceptionPaper, &p.DoubleSidedMultiplier,
		&p.PaperType, &p.Thickness, &p.Coating)
	return p, err
}

func scanTurnaround(row pgx.CollectableRow) (pricing.Turnaround, error) {
	var (
		t     pricing.Turnaround
		model string
	)
	err := row.Scan(&t.ID, &t.Name, &t.MinDays, &t.MaxDays, &model, &t.BasePrice, &t.PriceMultiplier, &t.IsStandard)
	t.PricingModel = pricing.PricingModel(model)
	return t, err
}

func scanAddon(row pgx.CollectableRow) (pricing.Addon, error) {
	var (
		a      pricing.Addon
		model  string
		config []byte
	)
	if err := row.Scan(&a.ID, &a.Name, &a.Category, &model, &config, &a.IsActive, &a.SortOrder); err != nil {
		return a, err
	}
	a.PricingModel = pricing.PricingModel(model)
	if len(config) > 0 {
		if err := json.Unmarshal(config, &a.Configuration); err != nil {
			return a, fmt.Errorf("add-on %q configuration: %w", a.ID, err)
		}
	}
	return a, nil
}
