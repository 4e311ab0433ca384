package tsdata

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/tsmlgo/go-tsdata/dataset"
	"github.com/tsmlgo/go-tsdata/instance"
	"github.com/tsmlgo/go-tsdata/timeseries"
)

// LineSeries generates an echart line chart for a single series. The x
// axis uses the series timestamps when present, falling back to the
// positional index. Missing values render as gaps.
func LineSeries(title string, s *timeseries.Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	line = line.SetXAxis(xAxis(s))
	line = line.AddSeries("values", lineData(s))
	return line
}

// LineInstance generates an echart line chart with one line per
// dimension of the instance.
func LineInstance(title string, inst *instance.Instance) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	axis := make([]int, inst.MaxLength())
	for i := range axis {
		axis[i] = i
	}
	line = line.SetXAxis(axis)

	for i := 0; i < inst.NumDimensions(); i++ {
		dim, err := inst.Dimension(i)
		if err != nil {
			continue
		}
		line = line.AddSeries(fmt.Sprintf("dim_%d", i), lineData(dim))
	}
	return line
}

// PageDataset generates an echart page with one chart per instance, up
// to maxCharts. Chart titles carry the resolved class label when the
// instance is classified.
func PageDataset(ds *dataset.Dataset, maxCharts int) *components.Page {
	page := components.NewPage()

	n := ds.NumInstances()
	if maxCharts > 0 && n > maxCharts {
		n = maxCharts
	}
	for i := 0; i < n; i++ {
		inst, err := ds.At(i)
		if err != nil {
			continue
		}
		title := fmt.Sprintf("instance_%d", i)
		if lbl, err := inst.ClassLabel(); err == nil {
			title = fmt.Sprintf("instance_%d (%s)", i, lbl)
		}
		page.AddCharts(LineInstance(title, inst))
	}
	return page
}

// RenderHTML renders the page to an HTML file at path.
func RenderHTML(page *components.Page, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return page.Render(io.MultiWriter(file))
}

func xAxis(s *timeseries.Series) []float64 {
	if ts, ok := s.Timestamps(); ok {
		return ts
	}
	axis := make([]float64, s.Len())
	for i := range axis {
		axis[i] = float64(i)
	}
	return axis
}

func lineData(s *timeseries.Series) []opts.LineData {
	data := make([]opts.LineData, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		if !s.HasValidValueAt(i) {
			data = append(data, opts.LineData{Value: nil})
			continue
		}
		data = append(data, opts.LineData{Value: s.AtOrNaN(i)})
	}
	return data
}
