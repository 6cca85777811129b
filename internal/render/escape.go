package render

import "html"

// Escape neutralizes the five HTML-significant characters (& < > " ')
// in s, leaving everything else untouched. This is the only sanctioned
// path for interpolating answer- or caller-supplied text into markup;
// the entity forms are the standard ones, so attribute values escaped
// here decode back to the original string in the browser.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return html.EscapeString(s)
}
