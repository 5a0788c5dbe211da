/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"net/http"
	"sort"

	"github.com/flamego/flamego"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/wellpulse/wellpulse/db"
	"github.com/wellpulse/wellpulse/health"
)

var stepsFn = db.GetStepRecordsByUser

// UserStepsChart renders a user's daily step counts as an HTML line chart.
func UserStepsChart(c flamego.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	records, err := stepsFn(c.Request().Context(), userID)
	if err != nil {
		webLogger.Error("Failed to fetch step records for chart", "user_id", userID, "err", err)
		c.ResponseWriter().WriteHeader(http.StatusInternalServerError)

		return
	}

	chartHTML, err := generateStepsChart(records)
	if err != nil {
		webLogger.Error("Failed to render steps chart", "user_id", userID, "err", err)
		c.ResponseWriter().WriteHeader(http.StatusInternalServerError)

		return
	}

	c.ResponseWriter().Header().Set("Content-Type", "text/html; charset=utf-8")
	c.ResponseWriter().WriteHeader(http.StatusOK)

	if _, err := c.ResponseWriter().Write([]byte(chartHTML)); err != nil {
		webLogger.Error("Failed to write steps chart", "user_id", userID, "err", err)
	}
}

// generateStepsChart creates a line chart of daily steps with the daily
// target marked as a dashed reference line.
func generateStepsChart(records []health.StepRecord) (string, error) {
	sorted := make([]health.StepRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	xAxis := make([]string, 0, len(sorted))
	yData := make([]opts.LineData, 0, len(sorted))

	for _, record := range sorted {
		xAxis = append(xAxis, record.Date.Format("2006-01-02"))
		yData = append(yData, opts.LineData{Value: record.TotalSteps})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Daily Steps",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "steps",
		}),
	)

	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(true),
			ShowSymbol: opts.Bool(true),
		}),
		charts.WithMarkPointNameTypeItemOpts(
			opts.MarkPointNameTypeItem{Name: "Max", Type: "max"},
			opts.MarkPointNameTypeItem{Name: "Min", Type: "min"},
		),
		charts.WithMarkLineNameTypeItemOpts(
			opts.MarkLineNameTypeItem{Name: "Average", Type: "average"},
		),
		func(s *charts.SingleSeries) {
			s.MarkLines = &opts.MarkLines{
				Data: []interface{}{
					opts.MarkLineNameYAxisItem{
						Name:  "Target",
						YAxis: health.DefaultTargetSteps,
					},
				},
				MarkLineStyle: opts.MarkLineStyle{
					Symbol: []string{"none", "none"},
					LineStyle: &opts.LineStyle{
						Color: "rgba(128, 128, 128, 0.6)",
						Type:  "dashed",
						Width: 1.5,
					},
				},
			}
		},
	}

	line.SetXAxis(xAxis).
		AddSeries("Steps", yData).
		SetSeriesOptions(seriesOpts...)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
