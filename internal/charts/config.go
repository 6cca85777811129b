package charts

import "github.com/ragstack/ragview/internal/answer"

// palette is the fixed series palette. Bar and pie charts take one entry
// per data point, cycling from the start when the series outgrows it.
var palette = [6]string{
	"#00d4ff",
	"#ff9800",
	"#4caf50",
	"#e91e63",
	"#9c27b0",
	"#ffc107",
}

// Line series use a single translucent fill and a single stroke for the
// whole series, regardless of point count.
const (
	lineFill   = "rgba(0, 212, 255, 0.2)"
	lineStroke = "#00d4ff"
)

// Config is the declarative configuration handed to a chart backend.
// The field shapes follow the common JS chart-library convention so the
// object can be serialized straight to the page.
type Config struct {
	Kind    answer.ChartKind `json:"type"`
	Data    Data             `json:"data"`
	Options Options          `json:"options"`
}

// Data holds the labelled series of a chart.
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one drawable series. BackgroundColor is a []string with one
// entry per point for bar/pie, or a single string for line fills.
type Dataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor any       `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
	Fill            bool      `json:"fill,omitempty"`
	Tension         float64   `json:"tension,omitempty"`
}

// Options controls titling, legend, and axes.
type Options struct {
	Responsive bool            `json:"responsive"`
	Plugins    Plugins         `json:"plugins"`
	Scales     map[string]Axis `json:"scales,omitempty"`
}

// Plugins mirrors the plugin block of the page chart library.
type Plugins struct {
	Title  Title  `json:"title"`
	Legend Legend `json:"legend"`
}

// Title is the chart title text property. It is consumed as text, not
// markup, so it is passed through unescaped — escaping it here would
// double-escape on the page.
type Title struct {
	Display bool   `json:"display"`
	Text    string `json:"text,omitempty"`
}

// Legend toggles the series legend.
type Legend struct {
	Display bool `json:"display"`
}

// Axis describes one scale of a cartesian chart.
type Axis struct {
	BeginAtZero bool   `json:"beginAtZero"`
	TitleText   string `json:"title,omitempty"`
}

// Configure builds a chart configuration from an extracted payload.
// Label and data lengths are passed through as-is; the backend draws
// whatever the shorter series covers. Proportional (pie) charts carry
// no scales.
func Configure(p answer.ChartPayload) Config {
	kind := p.Kind
	if kind != answer.KindBar && kind != answer.KindLine && kind != answer.KindPie {
		kind = answer.KindBar
	}

	ds := Dataset{Label: p.Unit, Data: p.Data}
	switch kind {
	case answer.KindLine:
		ds.BackgroundColor = lineFill
		ds.BorderColor = lineStroke
		ds.Fill = true
		ds.Tension = 0.3
	default:
		ds.BackgroundColor = seriesColors(len(p.Data))
	}

	cfg := Config{
		Kind: kind,
		Data: Data{Labels: p.Labels, Datasets: []Dataset{ds}},
		Options: Options{
			Responsive: true,
			Plugins: Plugins{
				Title:  Title{Display: p.Title != "", Text: p.Title},
				Legend: Legend{Display: kind == answer.KindPie},
			},
		},
	}

	if kind != answer.KindPie {
		cfg.Options.Scales = map[string]Axis{
			"y": {BeginAtZero: true, TitleText: p.Unit},
		}
	}

	return cfg
}

// seriesColors returns n palette entries, cycling past the palette end.
func seriesColors(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}
