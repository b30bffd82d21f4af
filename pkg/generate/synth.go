// Package generate synthesizes fake rows conforming to a described
// Salesforce object schema.
package generate

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/TFMV/sfseed/pkg/describe"
)

// Character pools roughly covering JIS level 1/2 Japanese text.
var (
	hiraganaPool = runeRange(0x3041, 0x3096)
	katakanaPool = runeRange(0x30A1, 0x30FA)
	kanjiPool    = runeRange(0x4E00, 0x9FFE)
)

// Pool weights: hiragana 45%, katakana 45%, kanji 10%.
var textPools = []struct {
	runes  []rune
	weight int
}{
	{hiraganaPool, 45},
	{katakanaPool, 45},
	{kanjiPool, 10},
}

const (
	defaultTextLength = 10
	multiPicklistSep  = ";"
	emailDomain       = "example.com"
	urlBase           = "https://www.example.com/"
	coordPrecision    = 6
)

// Weighted dialing prefixes, biased toward common mobile prefixes.
var phonePrefixes = []struct {
	prefix string
	weight int
}{
	{"090", 30},
	{"080", 30},
	{"070", 15},
	{"03", 10},
	{"06", 6},
	{"052", 4},
	{"011", 3},
	{"0120", 2},
}

const alnum = "abcdefghijklmnopqrstuvwxyz0123456789"

// Calendar range for date and datetime synthesis.
var (
	calendarStart = time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)
	calendarEnd   = time.Date(2049, time.December, 31, 23, 59, 59, 0, time.UTC)
)

func runeRange(lo, hi rune) []rune {
	runes := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		runes = append(runes, r)
	}
	return runes
}

// Synthesizer produces random values for primitive field types. All
// randomness flows through the injected source, so a fixed seed yields
// byte-for-byte identical output.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer creates a synthesizer drawing from rng.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Text returns a random Japanese string. Length is uniform between the
// minimum (0 when nillable, else 1) and maxLen, which falls back to a
// fixed default when the field declares none.
func (s *Synthesizer) Text(maxLen int, nillable bool) string {
	if maxLen <= 0 {
		maxLen = defaultTextLength
	}
	min := 1
	if nillable {
		min = 0
	}
	n := min + s.rng.Intn(maxLen-min+1)
	if n == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		pool := s.pickPool()
		b.WriteRune(pool[s.rng.Intn(len(pool))])
	}
	return b.String()
}

func (s *Synthesizer) pickPool() []rune {
	total := 0
	for _, p := range textPools {
		total += p.weight
	}
	roll := s.rng.Intn(total)
	for _, p := range textPools {
		if roll < p.weight {
			return p.runes
		}
		roll -= p.weight
	}
	return textPools[len(textPools)-1].runes
}

// Picklist returns a uniform choice among the declared option values.
func (s *Synthesizer) Picklist(opts []describe.PicklistOption) string {
	if len(opts) == 0 {
		return ""
	}
	return opts[s.rng.Intn(len(opts))].Value
}

// MultiPicklist returns a random non-empty subset of the option values
// joined with the platform delimiter.
func (s *Synthesizer) MultiPicklist(opts []describe.PicklistOption) string {
	if len(opts) == 0 {
		return ""
	}
	count := 1 + s.rng.Intn(len(opts))
	order := s.rng.Perm(len(opts))
	values := make([]string, count)
	for i := 0; i < count; i++ {
		values[i] = opts[order[i]].Value
	}
	return strings.Join(values, multiPicklistSep)
}

// Numeric renders a random number honoring precision (total digits) and
// scale (fractional digits). Without a precision it falls back to a
// small bounded integer.
func (s *Synthesizer) Numeric(precision, scale int) string {
	if precision <= 0 {
		return strconv.Itoa(s.rng.Intn(1001))
	}
	intDigits := precision - scale
	if intDigits < 1 {
		intDigits = 1
	}
	maxInt := int64(1)
	for i := 0; i < intDigits; i++ {
		maxInt *= 10
	}
	var b strings.Builder
	b.WriteString(strconv.FormatInt(s.rng.Int63n(maxInt), 10))
	if scale > 0 {
		b.WriteByte('.')
		for i := 0; i < scale; i++ {
			b.WriteByte(byte('0' + s.rng.Intn(10)))
		}
	}
	return b.String()
}

// Phone returns a dialing-prefix + two 4-digit groups phone number.
func (s *Synthesizer) Phone() string {
	total := 0
	for _, p := range phonePrefixes {
		total += p.weight
	}
	roll := s.rng.Intn(total)
	prefix := phonePrefixes[len(phonePrefixes)-1].prefix
	for _, p := range phonePrefixes {
		if roll < p.weight {
			prefix = p.prefix
			break
		}
		roll -= p.weight
	}
	return fmt.Sprintf("%s-%04d-%04d", prefix, s.rng.Intn(10000), s.rng.Intn(10000))
}

func (s *Synthesizer) alnumString(min, max int) string {
	n := min + s.rng.Intn(max-min+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = alnum[s.rng.Intn(len(alnum))]
	}
	return string(b)
}

// Email returns a random local part at the fixed example domain.
func (s *Synthesizer) Email() string {
	return s.alnumString(6, 12) + "@" + emailDomain
}

// URL returns a random path under the fixed example domain.
func (s *Synthesizer) URL() string {
	return urlBase + s.alnumString(5, 12)
}

// Date returns a uniform random date within the fixed calendar range.
func (s *Synthesizer) Date() string {
	days := int(calendarEnd.Sub(calendarStart).Hours() / 24)
	return calendarStart.AddDate(0, 0, s.rng.Intn(days+1)).Format("2006-01-02")
}

// DateTime returns a uniform random UTC instant within the fixed range,
// rendered with millisecond precision.
func (s *Synthesizer) DateTime() string {
	span := calendarEnd.Unix() - calendarStart.Unix()
	sec := calendarStart.Unix() + s.rng.Int63n(span+1)
	ms := s.rng.Intn(1000)
	t := time.Unix(sec, int64(ms)*int64(time.Millisecond)).UTC()
	return t.Format("2006-01-02T15:04:05.000Z07:00")
}

// Latitude returns a uniform latitude in [-90, 90].
func (s *Synthesizer) Latitude() string {
	return strconv.FormatFloat(s.rng.Float64()*180-90, 'f', coordPrecision, 64)
}

// Longitude returns a uniform longitude in [-180, 180].
func (s *Synthesizer) Longitude() string {
	return strconv.FormatFloat(s.rng.Float64()*360-180, 'f', coordPrecision, 64)
}
