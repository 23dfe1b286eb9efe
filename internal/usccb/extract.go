package usccb

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

// maxExtractLen caps extracted passage text; the site pages carry far more
// markup than the app renders.
const maxExtractLen = 500

// The readings pages label each passage with a name_r header followed by a
// content block. The psalm and gospel are located by their section headings
// first so the leading pattern doesn't swallow them.
var (
	firstReadingPattern = regexp.MustCompile(`(?s)class="name_r">([^<]+)</div>.*?class="content">([^<]+)`)
	psalmPattern        = regexp.MustCompile(`(?s)Responsorial Psalm.*?class="name_r">([^<]+)</div>.*?class="content">([^<]+)`)
	gospelPattern       = regexp.MustCompile(`(?s)Gospel.*?class="name_r">([^<]+)</div>.*?class="content">([^<]+)`)
)

// extractReadings pulls the three sub-readings out of raw page markup into
// reading. Each pattern is applied independently: a miss leaves that
// sub-reading's pre-seeded default untouched. The markup has no guaranteed
// schema, so this stays deliberately narrow; swap this function to support
// a structured source.
func extractReadings(html string, reading *entities.Reading) {
	if m := firstReadingPattern.FindStringSubmatch(html); m != nil {
		reading.FirstReading.Citation = strings.TrimSpace(m[1])
		reading.FirstReading.Text = truncate(strings.TrimSpace(m[2]))
	}
	if m := psalmPattern.FindStringSubmatch(html); m != nil {
		reading.Psalm.Citation = strings.TrimSpace(m[1])
		reading.Psalm.Text = truncate(strings.TrimSpace(m[2]))
	}
	if m := gospelPattern.FindStringSubmatch(html); m != nil {
		reading.Gospel.Citation = strings.TrimSpace(m[1])
		reading.Gospel.Text = truncate(strings.TrimSpace(m[2]))
	}
}

// truncate cuts on a rune boundary; the source text carries multi-byte
// punctuation and a byte-index slice could split a sequence.
func truncate(text string) string {
	if len(text) <= maxExtractLen {
		return text
	}
	cut := maxExtractLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
