package charts

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/ragstack/ragview/internal/answer"
)

// SVGBackend renders chart configurations as standalone SVG documents.
// It implements Backend for offline rendering (`ragview render`).
type SVGBackend struct {
	Width  int
	Height int
}

// NewSVGBackend returns an SVG backend with default dimensions.
func NewSVGBackend() *SVGBackend {
	return &SVGBackend{Width: 640, Height: 360}
}

const (
	marginTop    = 40
	marginRight  = 20
	marginBottom = 40
	marginLeft   = 50
	axisColor    = "#888888"
	textColor    = "#333333"
)

func (b *SVGBackend) Draw(cfg Config, s Surface) error {
	if len(cfg.Data.Datasets) == 0 {
		return fmt.Errorf("config has no datasets")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		b.Width, b.Height, b.Width, b.Height)
	sb.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>`)

	if cfg.Options.Plugins.Title.Display {
		fmt.Fprintf(&sb, `<text x="%d" y="24" text-anchor="middle" font-size="15" font-weight="bold" fill="%s">%s</text>`,
			b.Width/2, textColor, html.EscapeString(cfg.Options.Plugins.Title.Text))
	}

	ds := cfg.Data.Datasets[0]
	switch cfg.Kind {
	case answer.KindPie:
		b.drawPie(&sb, cfg.Data.Labels, ds)
	case answer.KindLine:
		b.drawAxes(&sb, ds.Data)
		b.drawLine(&sb, ds)
	default:
		b.drawAxes(&sb, ds.Data)
		b.drawBars(&sb, cfg.Data.Labels, ds)
	}

	sb.WriteString(`</svg>`)
	_, err := s.Write([]byte(sb.String()))
	return err
}

// plotArea returns the drawable region inside the margins.
func (b *SVGBackend) plotArea() (x, y, w, h int) {
	return marginLeft, marginTop,
		b.Width - marginLeft - marginRight,
		b.Height - marginTop - marginBottom
}

// dataMax returns the series maximum, floored at a small positive value
// so an all-zero series still produces a sane scale.
func dataMax(data []float64) float64 {
	max := 0.0
	for _, v := range data {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		max = 1
	}
	return max
}

// drawAxes emits the x/y axis lines and y tick labels. Pie charts never
// call this: proportional charts carry no scales.
func (b *SVGBackend) drawAxes(sb *strings.Builder, data []float64) {
	px, py, pw, ph := b.plotArea()
	max := dataMax(data)

	fmt.Fprintf(sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s"/>`, px, py+ph, px+pw, py+ph, axisColor)
	fmt.Fprintf(sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s"/>`, px, py, px, py+ph, axisColor)

	const ticks = 4
	for i := 0; i <= ticks; i++ {
		v := max * float64(i) / ticks
		y := py + ph - int(float64(ph)*float64(i)/ticks)
		fmt.Fprintf(sb, `<text x="%d" y="%d" text-anchor="end" font-size="10" fill="%s">%s</text>`,
			px-6, y+3, textColor, formatTick(v))
	}
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func (b *SVGBackend) drawBars(sb *strings.Builder, labels []string, ds Dataset) {
	px, py, pw, ph := b.plotArea()
	n := len(ds.Data)
	if n == 0 {
		return
	}
	max := dataMax(ds.Data)
	colors, _ := ds.BackgroundColor.([]string)

	slot := float64(pw) / float64(n)
	barW := slot * 0.6

	for i, v := range ds.Data {
		barH := float64(ph) * v / max
		if barH < 0 {
			barH = 0
		}
		x := float64(px) + slot*float64(i) + (slot-barW)/2
		y := float64(py+ph) - barH

		color := lineStroke
		if len(colors) > 0 {
			color = colors[i%len(colors)]
		}
		fmt.Fprintf(sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`, x, y, barW, barH, color)

		if i < len(labels) {
			fmt.Fprintf(sb, `<text x="%.1f" y="%d" text-anchor="middle" font-size="10" fill="%s">%s</text>`,
				x+barW/2, py+ph+14, textColor, html.EscapeString(labels[i]))
		}
	}
}

func (b *SVGBackend) drawLine(sb *strings.Builder, ds Dataset) {
	px, py, pw, ph := b.plotArea()
	n := len(ds.Data)
	if n == 0 {
		return
	}
	max := dataMax(ds.Data)

	step := 0.0
	if n > 1 {
		step = float64(pw) / float64(n-1)
	}

	points := make([]string, n)
	for i, v := range ds.Data {
		x := float64(px) + step*float64(i)
		y := float64(py+ph) - float64(ph)*v/max
		points[i] = fmt.Sprintf("%.1f,%.1f", x, y)
	}

	fill, _ := ds.BackgroundColor.(string)
	if fill != "" && n > 1 {
		area := strings.Join(points, " ") +
			fmt.Sprintf(" %.1f,%d %d,%d", float64(px)+step*float64(n-1), py+ph, px, py+ph)
		fmt.Fprintf(sb, `<polygon points="%s" fill="%s"/>`, area, fill)
	}
	fmt.Fprintf(sb, `<polyline points="%s" fill="none" stroke="%s" stroke-width="2"/>`,
		strings.Join(points, " "), ds.BorderColor)
}

func (b *SVGBackend) drawPie(sb *strings.Builder, labels []string, ds Dataset) {
	cx := float64(b.Width) / 2
	cy := float64(b.Height)/2 + 10
	r := math.Min(float64(b.Width), float64(b.Height))/2 - 50

	total := 0.0
	for _, v := range ds.Data {
		if v > 0 {
			total += v
		}
	}
	if total == 0 {
		return
	}

	colors, _ := ds.BackgroundColor.([]string)
	angle := -math.Pi / 2

	for i, v := range ds.Data {
		if v <= 0 {
			continue
		}
		sweep := 2 * math.Pi * v / total
		x1, y1 := cx+r*math.Cos(angle), cy+r*math.Sin(angle)
		angle += sweep
		x2, y2 := cx+r*math.Cos(angle), cy+r*math.Sin(angle)

		large := 0
		if sweep > math.Pi {
			large = 1
		}
		color := lineStroke
		if len(colors) > 0 {
			color = colors[i%len(colors)]
		}
		fmt.Fprintf(sb, `<path d="M%.1f,%.1f L%.1f,%.1f A%.1f,%.1f 0 %d 1 %.1f,%.1f Z" fill="%s" stroke="#ffffff"/>`,
			cx, cy, x1, y1, r, r, large, x2, y2, color)

		if i < len(labels) {
			mid := angle - sweep/2
			lx, ly := cx+(r+18)*math.Cos(mid), cy+(r+18)*math.Sin(mid)
			fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="10" fill="%s">%s</text>`,
				lx, ly, textColor, html.EscapeString(labels[i]))
		}
	}
}
