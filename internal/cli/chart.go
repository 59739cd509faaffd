package cli

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/roksva123/go-breeze-dashboard/internal/model"
)

const (
	chartWidth  = 42
	chartHeight = 8
)

// RenderEarningsCharts draws the weekly and monthly earnings series.
func RenderEarningsCharts(res *model.DashboardResult) string {
	var b strings.Builder

	weekly := make([]float64, len(res.WeeklyEarnings))
	for i, d := range res.WeeklyEarnings {
		weekly[i] = d.Earnings
	}
	b.WriteString(renderLineChart(weekly, weeklyCaption(res.WeeklyEarnings)))
	b.WriteString("\n\n")

	monthly := make([]float64, len(res.MonthlyEarnings))
	for i, m := range res.MonthlyEarnings {
		monthly[i] = m.Earnings
	}
	b.WriteString(renderLineChart(monthly, monthlyCaption(res.MonthlyEarnings)))
	b.WriteString("\n")

	return b.String()
}

func renderLineChart(data []float64, caption string) string {
	if len(data) == 0 {
		return caption + ": no data"
	}
	// asciigraph needs two points to draw a line.
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption(caption),
	)
}

func weeklyCaption(days []model.DayBucket) string {
	if len(days) == 0 {
		return "Weekly earnings"
	}
	return fmt.Sprintf("Weekly earnings %s to %s", days[0].Date, days[len(days)-1].Date)
}

func monthlyCaption(months []model.MonthBucket) string {
	if len(months) == 0 {
		return "Monthly earnings"
	}
	return fmt.Sprintf("Monthly earnings %s to %s", months[0].Month, months[len(months)-1].Month)
}
