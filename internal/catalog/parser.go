// Package catalog loads pricing catalog snapshots from YAML files or Postgres.
package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/printshop/printshop/internal/pricing"
)

type catalogDocument struct {
	Sizes       []pricing.Size       `yaml:"sizes"`
	Quantities  []pricing.Quantity   `yaml:"quantities"`
	PaperStocks []pricing.PaperStock `yaml:"paper_stocks"`
	Turnarounds []turnaroundDocument `yaml:"turnarounds"`
	Addons      []pricing.Addon      `yaml:"addons"`
}

// turnaroundDocument lets catalog authors write rush markups as whole percents.
type turnaroundDocument struct {
	pricing.Turnaround `yaml:",inline"`
	MarkupPercent      *float64 `yaml:"markup_percent"`
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(content []byte) (*pricing.Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	catalog := &pricing.Catalog{
		Sizes:       doc.Sizes,
		Quantities:  doc.Quantities,
		PaperStocks: doc.PaperStocks,
		Turnarounds: make([]pricing.Turnaround, 0, len(doc.Turnarounds)),
		Addons:      doc.Addons,
	}
	for _, t := range doc.Turnarounds {
		turnaround := t.Turnaround
		if t.MarkupPercent != nil {
			if turnaround.PriceMultiplier != 0 {
				return nil, fmt.Errorf("turnaround %q: set either price_multiplier or markup_percent, not both", turnaround.ID)
			}
			turnaround.PriceMultiplier = *t.MarkupPercent / 100
		}
		catalog.Turnarounds = append(catalog.Turnarounds, turnaround)
	}

	return catalog, nil
}

func (p *Parser) ParseFromString(content string) (*pricing.Catalog, error) {
	return p.Parse([]byte(content))
}
