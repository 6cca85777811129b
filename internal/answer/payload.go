package answer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ChartKind identifies the visualization requested by a chart payload.
type ChartKind string

const (
	KindBar  ChartKind = "bar"
	KindLine ChartKind = "line"
	KindPie  ChartKind = "pie"
)

// validKinds is the set of chart kinds the configurator understands.
var validKinds = map[ChartKind]bool{
	KindBar:  true,
	KindLine: true,
	KindPie:  true,
}

// ChartPayload is the structured chart description the model embeds in
// an answer between chart-data markers.
type ChartPayload struct {
	Kind   ChartKind `json:"type"`
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Unit   string    `json:"unit"`
}

// Extraction is the result of scanning one answer: the display text with
// every chart block removed, and the parsed payloads in document order.
type Extraction struct {
	CleanAnswer string
	Charts      []ChartPayload
}

// parsePayload decodes one marker interior as a chart payload and applies
// the defaulting rules. A payload with no recognizable kind renders as a
// bar chart; missing labels and data become empty, never nil.
func parsePayload(raw string) (ChartPayload, error) {
	raw = stripCodeFence(strings.TrimSpace(raw))

	var p ChartPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return ChartPayload{}, fmt.Errorf("decoding chart payload: %w", err)
	}

	if !validKinds[p.Kind] {
		p.Kind = KindBar
	}
	if p.Labels == nil {
		p.Labels = []string{}
	}
	if p.Data == nil {
		p.Data = []float64{}
	}
	return p, nil
}

// stripCodeFence removes a surrounding markdown code fence, which some
// models wrap around JSON even when told not to.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 && !strings.HasPrefix(s, "{") {
		// drop a language tag like ```json
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
