// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package models

// Chart types understood by the external rendering layer.
const (
	ChartTypeLine       = "line"
	ChartTypeChoropleth = "choropleth"
	ChartTypeHeatmap    = "heatmap"
	ChartTypeBar        = "bar"
	ChartTypeNetwork    = "network"
)

// ChartSpec is a declarative description of one visualization, bound to one
// aggregate projection. The rendering layer (out of scope here) maps these
// onto its own plotting primitives; nothing in this process draws anything.
//
// Exactly one of the payload fields is populated, matching Type.
type ChartSpec struct {
	Type  string `json:"type"`
	Title string `json:"title"`

	Line       *LineChart       `json:"line,omitempty"`
	Choropleth *ChoroplethChart `json:"choropleth,omitempty"`
	Heatmap    *HeatmapChart    `json:"heatmap,omitempty"`
	Bar        *BarChart        `json:"bar,omitempty"`
	Network    *NetworkChart    `json:"network,omitempty"`
}

// LineChart is a single-series time trend.
type LineChart struct {
	XLabel string       `json:"x_label"`
	YLabel string       `json:"y_label"`
	Points []TrendPoint `json:"points"`
}

// ChoroplethChart colors regions (countries) by a scalar value.
// LocationMode declares how Regions' names should be resolved by the
// renderer; "country names" matches the reference dashboard.
type ChoroplethChart struct {
	LocationMode string             `json:"location_mode"`
	ColorScale   string             `json:"color_scale"`
	Regions      []CountrySentiment `json:"regions"`
}

// HeatmapChart renders a matrix with shared x/y labels. Undefined cells are
// null and left to the renderer to display as gaps.
type HeatmapChart struct {
	XLabels []string     `json:"x_labels"`
	YLabels []string     `json:"y_labels"`
	Z       [][]*float64 `json:"z"`
}

// BarChart is a categorical count chart.
type BarChart struct {
	XLabel string           `json:"x_label"`
	YLabel string           `json:"y_label"`
	Bars   []DayOfWeekCount `json:"bars"`
}

// NetworkChart is a node/edge scatter. Every node carries an explicit
// layout position; the renderer draws edges as line segments between the
// positions of their endpoints.
type NetworkChart struct {
	Graph *NetworkGraph `json:"graph"`
}

// BuildChartSpecs binds a set of computed views to the five declarative
// chart specifications. The network chart is omitted when views.Network is
// nil.
func BuildChartSpecs(views *Views) []ChartSpec {
	specs := []ChartSpec{
		{
			Type:  ChartTypeLine,
			Title: "Trend of Tweet Count over Time",
			Line: &LineChart{
				XLabel: "date",
				YLabel: "tweet_count",
				Points: views.Trend,
			},
		},
		{
			Type:  ChartTypeChoropleth,
			Title: "Average Sentiment by Country",
			Choropleth: &ChoroplethChart{
				LocationMode: "country names",
				ColorScale:   "RdYlGn",
				Regions:      views.CountrySentiment,
			},
		},
		{
			Type:  ChartTypeHeatmap,
			Title: "Feature Correlation",
			Heatmap: &HeatmapChart{
				XLabels: views.Correlation.Columns,
				YLabels: views.Correlation.Columns,
				Z:       views.Correlation.Values,
			},
		},
		{
			Type:  ChartTypeBar,
			Title: "Tweet Count by Day of Week",
			Bar: &BarChart{
				XLabel: "day_of_week",
				YLabel: "tweet_count",
				Bars:   views.DayOfWeek,
			},
		},
	}

	if views.Network != nil {
		specs = append(specs, ChartSpec{
			Type:    ChartTypeNetwork,
			Title:   "Tweet Interaction Network",
			Network: &NetworkChart{Graph: views.Network},
		})
	}

	return specs
}
