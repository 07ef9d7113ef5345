package timing

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteTable prints one aligned row per sample.
func WriteTable(w io.Writer, samples []Sample) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGO\tN\tRUNS\tMEAN\tSTDDEV\tCRANES")
	for _, s := range samples {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%.1f\n",
			s.Algo, s.Size, s.Runs, round(s.Mean), round(s.StdDev), s.MeanCranes)
	}
	return tw.Flush()
}

// WriteChart renders an HTML line chart of mean solve time against n, one
// series per algorithm. Sizes an algorithm skipped are left as gaps.
func WriteChart(w io.Writer, samples []Sample) error {
	sizes := make([]int, 0, len(samples))
	seen := make(map[int]struct{}, len(samples))
	for _, s := range samples {
		if _, ok := seen[s.Size]; !ok {
			seen[s.Size] = struct{}{}
			sizes = append(sizes, s.Size)
		}
	}
	sort.Ints(sizes)
	xs := make([]string, len(sizes))
	for i, n := range sizes {
		xs[i] = strconv.Itoa(n)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Crane unloading timings", Width: "900px", Height: "540px"}),
		charts.WithTitleOpts(opts.Title{Title: "Mean solve time", Subtitle: "n×n random grids"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "n", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms", Type: "log"}),
	)
	line.SetXAxis(xs)

	// Series in first-seen algorithm order.
	var order []string
	byAlgo := make(map[string]map[int]Sample)
	for _, s := range samples {
		name := s.Algo.String()
		if _, ok := byAlgo[name]; !ok {
			byAlgo[name] = make(map[int]Sample)
			order = append(order, name)
		}
		byAlgo[name][s.Size] = s
	}
	for _, name := range order {
		data := make([]opts.LineData, len(sizes))
		for i, n := range sizes {
			if s, ok := byAlgo[name][n]; ok {
				data[i] = opts.LineData{Value: float64(s.Mean) / float64(time.Millisecond)}
			} else {
				data[i] = opts.LineData{Value: "-"}
			}
		}
		line.AddSeries(name, data)
	}

	return line.Render(w)
}

// round trims durations to three significant places for display.
func round(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(time.Microsecond)
	default:
		return d
	}
}
