// Package charts is the rendering boundary for the follow-up tracker: it
// turns derived time series into renderable line-chart figures. Series
// derivation stays in the followup package; nothing here reads session state.
package charts

import (
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"cancercare-companion/internal/followup"
)

type Series struct {
	Name   string
	Points []followup.Point
}

// Line builds a multi-series line chart over the union of all series dates.
// A series without a value at a given date gets a gap, never a zero.
func Line(title, yAxisName string, yMin, yMax any, series ...Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisName, Min: yMin, Max: yMax}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	labels := dateLabels(series)
	line.SetXAxis(labels)
	for _, s := range series {
		byDate := make(map[string]float64, len(s.Points))
		for _, p := range s.Points {
			byDate[dateLabel(p.Date)] = p.Value
		}
		data := make([]opts.LineData, len(labels))
		for i, label := range labels {
			if v, ok := byDate[label]; ok {
				data[i] = opts.LineData{Value: v}
			} else {
				data[i] = opts.LineData{Value: "-"}
			}
		}
		line.AddSeries(s.Name, data)
	}
	return line
}

func dateLabel(t time.Time) string {
	return t.Format("2006-01-02")
}

func dateLabels(series []Series) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, s := range series {
		for _, p := range s.Points {
			label := dateLabel(p.Date)
			if !seen[label] {
				seen[label] = true
				labels = append(labels, label)
			}
		}
	}
	sort.Strings(labels)
	return labels
}
