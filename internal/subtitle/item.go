package subtitle

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

const timestampSeparator = "-->"

// Index identifies a cue. It is an integer when the raw text parses as one,
// otherwise the raw text, even an empty one, is kept as is. The zero Index is
// the integer 0.
type Index struct {
	value int
	raw   string
	isRaw bool
}

func IntIndex(n int) Index {
	return Index{value: n}
}

// never fails, non numeric identifiers are kept verbatim
func ParseIndex(raw string) Index {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Index{raw: raw, isRaw: true}
	}
	return Index{value: n}
}

func (i Index) Int() (int, bool) {
	if i.isRaw {
		return 0, false
	}
	return i.value, true
}

func (i Index) String() string {
	if i.isRaw {
		return i.raw
	}
	return strconv.Itoa(i.value)
}

// Item is a single WebVTT cue.
//
// An Item is not safe for concurrent use: StripStrangeChars rewrites Text.
type Item struct {
	Index    Index
	Start    Timestamp
	End      Timestamp
	Position string
	Text     string
}

// NewItem builds a cue. A nil or empty start/end source means zero time.
func NewItem(index Index, start, end Source, text, position string) (*Item, error) {
	startTime, err := coerceOrZero(start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	endTime, err := coerceOrZero(end)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	return &Item{
		Index:    index,
		Start:    startTime,
		End:      endTime,
		Position: position,
		Text:     text,
	}, nil
}

func coerceOrZero(src Source) (Timestamp, error) {
	switch s := src.(type) {
	case nil:
		return Timestamp{}, nil
	case *Timestamp:
		if s == nil {
			return Timestamp{}, nil
		}
	case Text:
		if s == "" {
			return Timestamp{}, nil
		}
	}
	return Coerce(src)
}

// end minus start, negative when the cue ends before it starts
func (i *Item) Duration() Timestamp {
	return i.End.Sub(i.Start)
}

// Shift moves both start and end, see Timestamp.Shift.
func (i *Item) Shift(offset Offset, ratio float64) {
	i.Start.Shift(offset, ratio)
	i.End.Shift(offset, ratio)
}

// orders by start, then end
func (i *Item) Compare(other *Item) int {
	if c := i.Start.Compare(other.Start); c != 0 {
		return c
	}
	return i.End.Compare(other.End)
}

// true when both cues share the same timing, text and index are ignored
func (i *Item) Equal(other *Item) bool {
	return i.Compare(other) == 0
}

func SortItems(items []*Item) {
	slices.SortStableFunc(items, func(a, b *Item) int {
		return a.Compare(b)
	})
}

// String renders "start --> end[ position]\ntext\n". The index is not part
// of the block form.
func (i *Item) String() string {
	position := ""
	if strings.TrimSpace(i.Position) != "" {
		position = " " + i.Position
	}
	return fmt.Sprintf("%s %s %s%s\n%s\n",
		i.Start, timestampSeparator, i.End, position, i.Text)
}

// ParseItem parses a cue block, line endings may be \n, \r\n or \r.
func ParseItem(source string) (*Item, error) {
	return ParseLines(splitLines(source))
}

// ParseLines parses a cue block given as lines. The first line is taken as
// the cue identifier unless it holds the timing separator.
func ParseLines(lines []string) (*Item, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: expected at least 2 lines, got %d", ErrInvalidItem, len(lines))
	}

	trimmed := make([]string, 0, len(lines))
	for _, l := range lines {
		trimmed = append(trimmed, strings.TrimRightFunc(l, unicode.IsSpace))
	}

	var index Index
	if !strings.Contains(trimmed[0], timestampSeparator) {
		index = ParseIndex(trimmed[0])
		trimmed = trimmed[1:]
	}

	start, end, position, err := SplitTimestamps(trimmed[0])
	if err != nil {
		return nil, err
	}

	return NewItem(
		index,
		Text(start),
		Text(end),
		strings.Join(trimmed[1:], "\n"),
		position,
	)
}

// SplitTimestamps splits a timing line into start, end and position, each
// trimmed. The separator must occur exactly once.
func SplitTimestamps(line string) (start, end, position string, err error) {
	parts := strings.Split(line, timestampSeparator)
	if len(parts) != 2 {
		return "", "", "", fmt.Errorf("%w: timing line %q", ErrInvalidItem, line)
	}

	endAndPosition := strings.SplitN(strings.TrimLeftFunc(parts[1], unicode.IsSpace), " ", 2)
	end = endAndPosition[0]
	if len(endAndPosition) > 1 {
		position = endAndPosition[1]
	}

	return strings.TrimSpace(parts[0]), strings.TrimSpace(end), strings.TrimSpace(position), nil
}

// splits after each line break, keeping the break, without a trailing empty line
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		n := strings.IndexAny(s, "\r\n")
		if n < 0 {
			lines = append(lines, s)
			break
		}
		end := n + 1
		if s[n] == '\r' && end < len(s) && s[end] == '\n' {
			end++
		}
		lines = append(lines, s[:end])
		s = s[end:]
	}
	return lines
}
