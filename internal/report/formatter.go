package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"FiscalSim/internal/model"
)

// FormatSummary formats the descriptive statistics of a simulated year.
func FormatSummary(p model.Params, sum model.Summary, total decimal.Decimal) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Simulated fiscal year | seed %d\n\n", p.Seed))
	b.WriteString(fmt.Sprintf("Annual revenue: %s (target %s)\n",
		total.StringFixed(2), decimal.NewFromFloat(p.TotalRevenue).StringFixed(2)))
	b.WriteString(fmt.Sprintf("Off-season baseline: %.2f/day over %d days\n",
		p.BaselineMean(), p.OffSeasonDays()))
	for _, s := range []model.Season{p.Spring(), p.Fall()} {
		b.WriteString(fmt.Sprintf("%s plateau: %.2f/day (sd %.2f) over %s\n",
			s.Name, s.PlateauMean(p.TotalRevenue), s.PlateauStdDev(p.TotalRevenue), s.Interval()))
	}

	b.WriteString("\n")
	writeRow(&b, "count", float64(sum.Count))
	writeRow(&b, "mean", sum.Mean)
	writeRow(&b, "std", sum.StdDev)
	writeRow(&b, "min", sum.Min)
	writeRow(&b, "25%", sum.Q1)
	writeRow(&b, "50%", sum.Median)
	writeRow(&b, "75%", sum.Q3)
	writeRow(&b, "max", sum.Max)

	return b.String()
}

// FormatCapacity formats a capacity comparison.
func FormatCapacity(plan model.CapacityPlan, rep model.CapacityReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Capacity: %.0f/day", plan.Base))
	if plan.Seasonal > 0 {
		windows := make([]string, len(plan.Windows))
		for i, w := range plan.Windows {
			windows[i] = w.String()
		}
		b.WriteString(fmt.Sprintf(", %.0f/day during %s", plan.Seasonal, strings.Join(windows, " ")))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Collected revenue:      %12.2f\n", rep.Collected))
	b.WriteString(fmt.Sprintf("  Lost potential revenue: %12.2f (%d days over)\n", rep.LostPotential, rep.DaysOverCapacity))
	b.WriteString(fmt.Sprintf("  Unutilized capacity:    %12.2f (%d days under)\n", rep.Unutilized, rep.DaysUnderCapacity))
	return b.String()
}

// FormatBatch formats the distribution of annual totals across a batch.
func FormatBatch(p model.Params, totals []float64) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Batch of %d runs | seeds %d..%d\n\n", len(totals), p.Seed, p.Seed+uint64(len(totals))-1))
	if len(totals) == 0 {
		return b.String()
	}
	mean, std := stat.MeanStdDev(totals, nil)
	b.WriteString(fmt.Sprintf("Annual revenue mean: %.2f\n", mean))
	b.WriteString(fmt.Sprintf("Annual revenue std:  %.2f\n", std))
	b.WriteString(fmt.Sprintf("Deviation from target: %+.3f%%\n", (mean-p.TotalRevenue)/p.TotalRevenue*100))
	return b.String()
}

// FormatSeries writes one "day value" line per entry.
func FormatSeries(series model.Series) string {
	var b strings.Builder
	for d, v := range series {
		b.WriteString(fmt.Sprintf("%d\t%.2f\n", d, v))
	}
	return b.String()
}

func writeRow(b *strings.Builder, label string, v float64) {
	b.WriteString(fmt.Sprintf("%-6s %12.2f\n", label, v))
}
