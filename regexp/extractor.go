// Package regexp extracts store blocks from listing HTML with literal
// marker patterns rather than a DOM parser.
package regexp

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/fwojciec/storelist"
)

// Ensure Extractor implements storelist.Extractor at compile time.
var _ storelist.Extractor = (*Extractor)(nil)

// space matches the same characters as Unicode-aware \s: the ASCII
// whitespace set plus vertical tab, the U+001C..U+001F separators, NEL and
// every Unicode space separator (including U+3000).
const space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

var (
	// nameRe matches a name block. Names never span lines.
	nameRe = regexp.MustCompile(`<h3 class="result-item-head__ttl">(.*?)</h3>`)

	// addressRe matches an address block across lines. A trailing
	// "<span> &nbsp; </span><br />..." fragment is left out of the group.
	addressRe = regexp.MustCompile(`(?s)<p class="result-item-cts-desc__area" style="word-break:break-all;">(.*?)` +
		`(?:<span> &nbsp; </span>` + space + `*<br />` + space + `*.*?)?</p>`)

	// stationRe matches a "<br />...駅..." transit annotation running to
	// the end of the address. Lines are not crossed after the break, so
	// only the final annotation line is removed.
	stationRe = regexp.MustCompile(space + `*<br />` + space + `*.*駅.*$`)
)

// Extractor pairs name blocks with address blocks in document order.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the stores found in html. Surplus name or address
// blocks are dropped; the counts in the result show how many.
func (e *Extractor) Extract(html string) *storelist.ExtractResult {
	names := submatches(nameRe, html)
	addresses := submatches(addressRe, html)

	n := min(len(names), len(addresses))
	stores := make([]storelist.Store, 0, n)
	for i := 0; i < n; i++ {
		stores = append(stores, storelist.Store{
			Name:    trimSpace(names[i]),
			Address: CleanAddress(addresses[i]),
		})
	}

	return &storelist.ExtractResult{
		Stores:    stores,
		Names:     len(names),
		Addresses: len(addresses),
	}
}

// ExtractStores is a shorthand for NewExtractor().Extract(html).Stores.
func ExtractStores(html string) []storelist.Store {
	return NewExtractor().Extract(html).Stores
}

// CleanAddress trims a raw address block and strips a trailing
// "<br />...駅" station annotation.
// Example: "秋田市土崎港中央1-2-3<br />土崎駅 / 秋田駅" → "秋田市土崎港中央1-2-3"
func CleanAddress(raw string) string {
	s := trimSpace(raw)
	s = stationRe.ReplaceAllString(s, "")
	return trimSpace(s)
}

// submatches returns the first capture group of every non-overlapping match.
func submatches(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
