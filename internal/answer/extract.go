package answer

import (
	"log"
	"strings"
)

// Markers delimiting an embedded chart block inside an answer. The pair
// is matched case-sensitively; the interior may span multiple lines.
const (
	StartMarker = "<!--CHART_DATA"
	EndMarker   = "CHART_DATA-->"
)

// Extract scans rawText left to right for non-overlapping chart blocks,
// parses each interior tolerantly, and returns the text with every
// matched block removed plus the payloads in match order.
//
// A block whose interior fails to parse is logged and skipped; it still
// disappears from the clean answer but contributes no payload. A start
// marker with no matching end marker is left in place untouched.
func Extract(rawText string) Extraction {
	var (
		clean  strings.Builder
		charts []ChartPayload
		pos    int
	)

	for {
		start := strings.Index(rawText[pos:], StartMarker)
		if start < 0 {
			break
		}
		start += pos

		interiorStart := start + len(StartMarker)
		end := strings.Index(rawText[interiorStart:], EndMarker)
		if end < 0 {
			break
		}
		end += interiorStart

		clean.WriteString(rawText[pos:start])

		payload, err := parsePayload(rawText[interiorStart:end])
		if err != nil {
			log.Printf("answer: skipping malformed chart block: %v", err)
		} else {
			charts = append(charts, payload)
		}

		pos = end + len(EndMarker)
	}

	clean.WriteString(rawText[pos:])

	return Extraction{CleanAnswer: clean.String(), Charts: charts}
}
