package subtitle

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	tagRegex = regexp.MustCompile(`<[^>]*?>`)

	// the class excludes '>' rather than '}': "{a>b}" is left untouched
	keyRegex = regexp.MustCompile(`\{[^>]*?\}`)
)

// literal ASS override codes, the <...> placeholders are matched verbatim
var strangeChars = []string{
	`\i1`, `\i0`, `\b1`, `\b0`, `\b<weight>`, `\u1`, `\u0`,
	`\s1`, `\s0`, `\bord<size>`, `\xbord<size>`,
	`\ybord<size>`, `\shad<depth>`, `\xshad<depth>`,
	`\yshad<depth>`,
}

// text with every <...> tag removed
func (i *Item) TextWithoutTags() string {
	return tagRegex.ReplaceAllString(i.Text, "")
}

// text with every {...} block removed
func (i *Item) TextWithoutKeys() string {
	return keyRegex.ReplaceAllString(i.Text, "")
}

// StripStrangeChars removes ASS styling codes from Text in place and returns
// the result. Calling it again is a no-op.
func (i *Item) StripStrangeChars() string {
	for _, c := range strangeChars {
		i.Text = strings.ReplaceAll(i.Text, c, "")
	}
	return i.Text
}

func (i *Item) TextWithoutTrailingSpaces() string {
	return strings.TrimSpace(i.Text)
}

// CharactersPerSecond is the reading rate of the visible text, tags and line
// breaks excluded. Zero length cues yield 0.
func (i *Item) CharactersPerSecond() float64 {
	duration := i.Duration().Ordinal()
	if duration == 0 {
		return 0
	}
	chars := utf8.RuneCountInString(strings.ReplaceAll(i.TextWithoutTags(), "\n", ""))
	return float64(chars) / (float64(duration) / millisPerSecond)
}
