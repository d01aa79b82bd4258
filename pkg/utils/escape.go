package utils

import "strings"

// htmlReplacer covers the five characters that matter inside the notification
// markup. html.EscapeString is not used because the mail body contract wants
// &quot; rather than &#34;.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML encodes & < > " ' for safe embedding into generated markup.
// Not idempotent: apply exactly once per value.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}
