package llm

import "fmt"

// systemPrompt instructs the model to answer strictly from the retrieved
// documents and to emit numeric data as embedded chart blocks. The block
// grammar matches what internal/answer extracts.
const systemPrompt = `You are an assistant that answers questions using only the provided document excerpts.

Rules:
- Answer in Markdown. Base every statement on the excerpts; if they do not contain the answer, say so.
- Cite the source file name in parentheses after the claims it supports.
- Do not invent numbers, dates, or names that are not in the excerpts.

When the answer contains a numeric series worth visualizing (counts over time, category breakdowns, comparisons), embed the data as a chart block on its own line:

<!--CHART_DATA {"type": "bar", "title": "Monthly totals", "labels": ["Jan", "Feb"], "data": [12, 30], "unit": "items"} CHART_DATA-->

- "type" is one of "bar", "line", or "pie". Use "line" for trends over time, "pie" for proportions of a whole, "bar" otherwise.
- "labels" and "data" must have the same length. "unit" is optional.
- The JSON must be valid and on a single line between the markers. Emit at most three chart blocks per answer.
- Never describe the chart block itself in prose; the surrounding text should read naturally without it.`

// BuildAskMessages assembles the conversation for one question over a
// block of formatted retrieval context.
func BuildAskMessages(question, context string) []Message {
	user := fmt.Sprintf("Document excerpts:\n\n%s\n\nQuestion: %s", context, question)
	return []Message{
		{Role: RoleSystem, Content: systemPrompt},
		{Role: RoleUser, Content: user},
	}
}
