package pricing

import (
	"fmt"
	"strings"
)

// Section titles, in display order.
const (
	SectionBase       = "BASE CALCULATION"
	SectionAdjustment = "ADJUSTMENTS"
	SectionTurnaround = "TURNAROUND"
	SectionAddons     = "ADD-ONS"
	SectionTotals     = "FINAL TOTALS"
)

type BreakdownSection struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

func (s BreakdownSection) String() string {
	var b strings.Builder
	b.WriteString(s.Title)
	for _, line := range s.Lines {
		b.WriteString("\n  ")
		b.WriteString(line)
	}
	return b.String()
}

// FormatBreakdown renders the sections as plain text separated by blank lines.
func FormatBreakdown(sections []BreakdownSection) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "\n\n")
}

func buildBreakdown(r *Result) []BreakdownSection {
	base := r.BaseCalculation
	baseLines := []string{
		fmt.Sprintf("Paper: %s @ $%s per sq in", base.PaperName, base.PricePerSqInch.String()),
		fmt.Sprintf("Size: %s = %s sq in", base.SizeLabel, base.Size.String()),
		fmt.Sprintf("Quantity: %s", base.Quantity.String()),
		fmt.Sprintf("Sides: %s (multiplier %s)", base.Sides, base.SidesMultiplier.String()),
		fmt.Sprintf("Base price: %s", FormatUSD(base.BasePrice)),
	}

	adj := r.Adjustments
	adjLines := []string{
		adjustmentLine("Broker discount", adj.BrokerDiscount, "-"),
		adjustmentLine("Tagline discount", adj.TaglineDiscount, "-"),
		adjustmentLine("Exact size markup", adj.ExactSizeMarkup, "+"),
		fmt.Sprintf("After adjustments: %s", FormatUSD(r.Totals.AfterAdjustments)),
	}

	t := r.Turnaround
	turnLines := []string{fmt.Sprintf("Turnaround: %s (%s)", t.Name, t.PricingModel)}
	if !t.MarkupPercent.IsZero() {
		turnLines = append(turnLines, fmt.Sprintf("Markup: %s%%", t.MarkupPercent.String()))
	}
	if !t.FlatAmount.IsZero() {
		turnLines = append(turnLines, fmt.Sprintf("Flat fee: %s", FormatUSD(t.FlatAmount)))
	}
	turnLines = append(turnLines, fmt.Sprintf("Markup amount: %s", FormatUSD(t.MarkupAmount)))

	addonLines := make([]string, 0, len(r.Addons)+1)
	if len(r.Addons) == 0 {
		addonLines = append(addonLines, "None selected")
	}
	for _, line := range r.Addons {
		addonLines = append(addonLines, fmt.Sprintf("%s: %s (%s)", line.Name, FormatUSD(line.Cost), line.Calculation))
	}
	addonLines = append(addonLines, fmt.Sprintf("Total add-ons: %s", FormatUSD(r.TotalAddonsCost)))

	totalLines := []string{
		fmt.Sprintf("Subtotal after adjustments: %s", FormatUSD(r.Totals.AfterAdjustments)),
		fmt.Sprintf("Turnaround markup: %s", FormatUSD(t.MarkupAmount)),
		fmt.Sprintf("Add-ons: %s", FormatUSD(r.TotalAddonsCost)),
		fmt.Sprintf("Final total: %s", FormatUSD(r.Totals.Final)),
	}

	return []BreakdownSection{
		{Title: SectionBase, Lines: baseLines},
		{Title: SectionAdjustment, Lines: adjLines},
		{Title: SectionTurnaround, Lines: turnLines},
		{Title: SectionAddons, Lines: addonLines},
		{Title: SectionTotals, Lines: totalLines},
	}
}

func adjustmentLine(label string, a Adjustment, sign string) string {
	if !a.Applied {
		return label + ": not applied"
	}
	return fmt.Sprintf("%s (%s%%): %s%s", label, a.Percentage.String(), sign, FormatUSD(a.Amount))
}
