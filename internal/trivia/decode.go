package trivia

import "html"

// Decode turns the HTML entities OpenTDB puts in its text fields back into
// plain characters. Unknown or malformed entities are left untouched.
func Decode(raw string) string {
	return html.UnescapeString(raw)
}
