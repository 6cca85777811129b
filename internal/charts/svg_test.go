package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ragstack/ragview/internal/answer"
)

func renderSVG(t *testing.T, p answer.ChartPayload) string {
	t.Helper()
	var buf bytes.Buffer
	if err := NewSVGBackend().Draw(Configure(p), &buf); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	return buf.String()
}

func TestSVGBar(t *testing.T) {
	out := renderSVG(t, answer.ChartPayload{
		Kind:   answer.KindBar,
		Title:  "Throughput",
		Labels: []string{"q1", "q2"},
		Data:   []float64{10, 20},
	})
	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(out, "</svg>") {
		t.Fatalf("not an svg document: %.60s", out)
	}
	if strings.Count(out, "<rect") < 3 { // background + 2 bars
		t.Errorf("expected bar rects: %q", out)
	}
	if !strings.Contains(out, "Throughput") {
		t.Error("title missing")
	}
	if !strings.Contains(out, "<line") {
		t.Error("bar chart should draw axes")
	}
}

func TestSVGPieHasNoAxes(t *testing.T) {
	out := renderSVG(t, answer.ChartPayload{
		Kind:   answer.KindPie,
		Labels: []string{"a", "b", "c"},
		Data:   []float64{1, 2, 3},
	})
	if strings.Contains(out, "<line") {
		t.Error("pie chart must not draw axis lines")
	}
	if strings.Count(out, "<path") != 3 {
		t.Errorf("expected 3 pie slices: %q", out)
	}
}

func TestSVGLine(t *testing.T) {
	out := renderSVG(t, answer.ChartPayload{
		Kind: answer.KindLine,
		Data: []float64{1, 3, 2},
	})
	if !strings.Contains(out, "<polyline") {
		t.Error("line chart should draw a polyline")
	}
	if !strings.Contains(out, "<polygon") {
		t.Error("line chart should fill under the curve")
	}
}

func TestSVGEmptyData(t *testing.T) {
	out := renderSVG(t, answer.ChartPayload{Kind: answer.KindBar})
	if !strings.HasPrefix(out, "<svg") {
		t.Fatalf("empty data should still yield a document: %q", out)
	}
}

func TestSVGEscapesLabels(t *testing.T) {
	out := renderSVG(t, answer.ChartPayload{
		Kind:   answer.KindBar,
		Labels: []string{`<b>`},
		Data:   []float64{1},
	})
	if strings.Contains(out, "<b>") {
		t.Errorf("label markup leaked into svg: %q", out)
	}
}
