package subtitle

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute

	// largest hour count whose ordinal, with every other field at its
	// maximum, still fits in an int64
	maxHours = (math.MaxInt64 - (millisPerHour - 1)) / millisPerHour
)

// hours are variable width, the fraction may use a comma or a dot
var timestampRegex = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})[.,](\d{3})$`)

// Timestamp is a point in time with millisecond precision. The ordinal
// (milliseconds since zero) is the only stored state; it may be negative
// after subtraction or shifting.
type Timestamp struct {
	ordinal int64
}

// builds a timestamp from range checked components
func NewTimestamp(hours, minutes, seconds, millis int) (Timestamp, error) {
	switch {
	case hours < 0 || int64(hours) > maxHours:
		return Timestamp{}, fmt.Errorf("%w: hours %d", ErrInvalidTimeComponent, hours)
	case minutes < 0 || minutes >= 60:
		return Timestamp{}, fmt.Errorf("%w: minutes %d", ErrInvalidTimeComponent, minutes)
	case seconds < 0 || seconds >= 60:
		return Timestamp{}, fmt.Errorf("%w: seconds %d", ErrInvalidTimeComponent, seconds)
	case millis < 0 || millis >= millisPerSecond:
		return Timestamp{}, fmt.Errorf("%w: milliseconds %d", ErrInvalidTimeComponent, millis)
	}

	return Timestamp{ordinal: int64(hours)*millisPerHour +
		int64(minutes)*millisPerMinute +
		int64(seconds)*millisPerSecond +
		int64(millis)}, nil
}

func FromMillis(ordinal int64) Timestamp {
	return Timestamp{ordinal: ordinal}
}

// anything finer than a millisecond is truncated
func FromDuration(d time.Duration) Timestamp {
	return Timestamp{ordinal: d.Milliseconds()}
}

// ParseTimestamp parses HH:MM:SS.mmm or HH:MM:SS,mmm. The input must match
// exactly; callers trim surrounding whitespace.
func ParseTimestamp(s string) (Timestamp, error) {
	matches := timestampRegex.FindStringSubmatch(s)
	if matches == nil {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := strconv.Atoi(matches[1])
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: %q: %w", ErrInvalidTimeString, s, err)
	}
	// the regex guarantees these are short digit runs
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])
	millis, _ := strconv.Atoi(matches[4])

	return NewTimestamp(hours, minutes, seconds, millis)
}

func (t Timestamp) Ordinal() int64 {
	return t.ordinal
}

// splits the ordinal into clock components, hours are unbounded
func (t Timestamp) Components() (hours, minutes, seconds, millis int) {
	o := t.ordinal
	if o < 0 {
		o = 0
	}
	hours = int(o / millisPerHour)
	minutes = int(o / millisPerMinute % 60)
	seconds = int(o / millisPerSecond % 60)
	millis = int(o % millisPerSecond)
	return hours, minutes, seconds, millis
}

func (t Timestamp) Duration() time.Duration {
	return time.Duration(t.ordinal) * time.Millisecond
}

// canonical HH:MM:SS.mmm form; negative values render as zero
func (t Timestamp) String() string {
	h, m, s, ms := t.Components()
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// saturates at the int64 range
func (t Timestamp) Add(other Timestamp) Timestamp {
	return Timestamp{ordinal: addSat(t.ordinal, other.ordinal)}
}

// the result may carry a negative ordinal, it saturates at the int64 range
func (t Timestamp) Sub(other Timestamp) Timestamp {
	return Timestamp{ordinal: subSat(t.ordinal, other.ordinal)}
}

func (t Timestamp) Compare(other Timestamp) int {
	return cmp.Compare(t.ordinal, other.ordinal)
}

func (t Timestamp) Less(other Timestamp) bool {
	return t.ordinal < other.ordinal
}

func (t Timestamp) Equal(other Timestamp) bool {
	return t.ordinal == other.ordinal
}

// Offset is an additive shift. Components may be negative and are not range
// checked, so Offset{Seconds: -90} is valid.
type Offset struct {
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

func (o Offset) millis() int64 {
	total := mulSat(int64(o.Hours), millisPerHour)
	total = addSat(total, mulSat(int64(o.Minutes), millisPerMinute))
	total = addSat(total, mulSat(int64(o.Seconds), millisPerSecond))
	return addSat(total, int64(o.Milliseconds))
}

// Shift rescales the ordinal by ratio, rounding half to even, then adds
// offset. It mutates t and returns the new value. Results outside the int64
// millisecond range saturate at its bounds; a NaN ratio yields zero.
func (t *Timestamp) Shift(offset Offset, ratio float64) Timestamp {
	if ratio != 1 {
		t.ordinal = floatToSat(math.RoundToEven(float64(t.ordinal) * ratio))
	}
	t.ordinal = addSat(t.ordinal, offset.millis())
	return *t
}

func addSat(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}

func subSat(a, b int64) int64 {
	switch {
	case b < 0 && a > math.MaxInt64+b:
		return math.MaxInt64
	case b > 0 && a < math.MinInt64+b:
		return math.MinInt64
	}
	return a - b
}

// unit is a positive millisecond multiplier
func mulSat(n, unit int64) int64 {
	switch {
	case n > math.MaxInt64/unit:
		return math.MaxInt64
	case n < math.MinInt64/unit:
		return math.MinInt64
	}
	return n * unit
}

func floatToSat(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// Source is anything that can be normalized into a Timestamp: Components,
// Millis, Text or a Timestamp itself.
type Source interface {
	timestamp() (Timestamp, error)
}

// clock components, validated on conversion
type Components struct {
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// raw millisecond ordinal
type Millis int64

// formatted timestamp text
type Text string

func (c Components) timestamp() (Timestamp, error) {
	return NewTimestamp(c.Hours, c.Minutes, c.Seconds, c.Milliseconds)
}

func (m Millis) timestamp() (Timestamp, error) {
	return FromMillis(int64(m)), nil
}

func (s Text) timestamp() (Timestamp, error) {
	return ParseTimestamp(string(s))
}

func (t Timestamp) timestamp() (Timestamp, error) {
	return t, nil
}

// Coerce normalizes src into a Timestamp.
func Coerce(src Source) (Timestamp, error) {
	if src == nil {
		return Timestamp{}, fmt.Errorf("%w: nil source", ErrInvalidTimestampInput)
	}
	if ts, ok := src.(*Timestamp); ok && ts == nil {
		return Timestamp{}, fmt.Errorf("%w: nil timestamp", ErrInvalidTimestampInput)
	}
	return src.timestamp()
}
