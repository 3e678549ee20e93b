package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func (g *Generator) generateLatencyChart(outputDir string, hours int) error {
	query := `
        SELECT timestamp, target, avg_ms
        FROM probe_results
        WHERE received > 0
        AND timestamp > datetime('now', '-' || ? || ' hours')
        ORDER BY timestamp
    `

	rows, err := g.db.Query(query, hours)
	if err != nil {
		return err
	}
	defer rows.Close()

	// Group data by target
	targetData := make(map[string]struct {
		timestamps []time.Time
		values     []float64
	})

	for rows.Next() {
		var timestamp time.Time
		var target string
		var rtt float64

		if err := rows.Scan(&timestamp, &target, &rtt); err != nil {
			continue
		}

		data := targetData[target]
		data.timestamps = append(data.timestamps, timestamp)
		data.values = append(data.values, rtt)
		targetData[target] = data
	}

	// Create chart for each target
	for target, data := range targetData {
		graph := chart.Chart{
			Title: fmt.Sprintf("Probe Latency - %s", target),
			TitleStyle: chart.Style{
				FontSize: 16,
			},
			Background: chart.Style{
				Padding: chart.Box{
					Top:    20,
					Left:   20,
					Right:  20,
					Bottom: 20,
				},
			},
			Width:  1200,
			Height: 400,
			XAxis: chart.XAxis{
				Name: "Time",
				NameStyle: chart.Style{
					FontSize: 12,
				},
				Style: chart.Style{
					StrokeColor: drawing.ColorBlack,
					FontSize:    10,
				},
				ValueFormatter: chart.TimeMinuteValueFormatter,
			},
			YAxis: chart.YAxis{
				Name: "Latency (ms)",
				NameStyle: chart.Style{
					FontSize: 12,
				},
				Style: chart.Style{
					StrokeColor: drawing.ColorBlack,
					FontSize:    10,
				},
				GridMajorStyle: chart.Style{
					StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
					StrokeWidth: 1.0,
				},
			},
			Series: []chart.Series{
				chart.TimeSeries{
					Name: target,
					Style: chart.Style{
						StrokeColor: chart.GetDefaultColor(0),
						StrokeWidth: 2,
					},
					XValues: data.timestamps,
					YValues: data.values,
				},
			},
		}

		// Add moving average
		if len(data.values) > 10 {
			ts := graph.Series[0].(chart.TimeSeries)
			graph.Series = append(graph.Series, chart.SMASeries{
				Name: "Moving Avg",
				Style: chart.Style{
					StrokeColor:     chart.GetDefaultColor(1),
					StrokeWidth:     2,
					StrokeDashArray: []float64{5, 5},
				},
				InnerSeries: ts,
				Period:      10,
			})
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("latency_%s.png", sanitizeFilename(target)))
		file, err := os.Create(filename)
		if err != nil {
			return err
		}

		if err := graph.Render(chart.PNG, file); err != nil {
			file.Close()
			return err
		}
		file.Close()
	}

	return nil
}

func (g *Generator) generateLossChart(outputDir string, hours int) error {
	query := `
        SELECT timestamp, target, loss * 100
        FROM probe_results
        WHERE loss IS NOT NULL
        AND timestamp > datetime('now', '-' || ? || ' hours')
        ORDER BY timestamp
    `

	rows, err := g.db.Query(query, hours)
	if err != nil {
		return err
	}
	defer rows.Close()

	targetData := make(map[string]struct {
		timestamps []time.Time
		values     []float64
	})

	for rows.Next() {
		var timestamp time.Time
		var target string
		var loss float64

		if scanErr := rows.Scan(&timestamp, &target, &loss); scanErr != nil {
			continue
		}

		data := targetData[target]
		data.timestamps = append(data.timestamps, timestamp)
		data.values = append(data.values, loss)
		targetData[target] = data
	}

	// Combined loss chart, one series per target
	var allSeries []chart.Series
	colorIndex := 0

	for target, data := range targetData {
		allSeries = append(allSeries, chart.TimeSeries{
			Name: target,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(colorIndex),
				StrokeWidth: 2,
			},
			XValues: data.timestamps,
			YValues: data.values,
		})
		colorIndex++
	}

	graph := chart.Chart{
		Title: "Packet Loss per Run",
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  1200,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "Time",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			ValueFormatter: chart.TimeHourValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Loss %",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: 100,
			},
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
				StrokeWidth: 1.0,
			},
		},
		Series: allSeries,
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	filename := filepath.Join(outputDir, "loss.png")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
