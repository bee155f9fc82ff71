package countdown

import "strings"

// markdownV2Specials lists every character Telegram's MarkdownV2 parse
// mode requires a backslash escape for.
const markdownV2Specials = "_*[]()~`>#+-=|{}.!"

// Escape backslash-escapes MarkdownV2 special characters. A character
// already preceded by a backslash is left alone, so escaping is safe to
// apply to text that carries its own escapes.
func Escape(text string) string {
	runes := []rune(text)

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	for i, r := range runes {
		if strings.ContainsRune(markdownV2Specials, r) && (i == 0 || runes[i-1] != '\\') {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
