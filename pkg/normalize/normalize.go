// Package normalize turns raw sentence text into clean word tokens:
// quote folding, contraction expansion, punctuation stripping and
// proper-noun aware casing.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quoteReplacer maps curly single/double quotes to their straight equivalents.
var quoteReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"‛", "'",
	"“", `"`,
	"”", `"`,
)

// rePunct matches every non-word, non-space character. Each match is
// replaced with a space so that stripping punctuation never merges
// adjacent words.
var rePunct = regexp.MustCompile(`[^\w\s]`)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases and strips accents, producing the canonical lookup key
// for a token (e.g. Café -> cafe).
func Fold(s string) string {
	result, _, _ := transform.String(stripAccents, strings.ToLower(s))
	return result
}

// Contraction is one fixed expansion rule, matched whole-word and
// case-insensitively.
type Contraction struct {
	From string // e.g. "don't"
	To   string // e.g. "do not", always lowercase
}

// Config carries the word lists a Normalizer is built from. Lists are
// copied at construction; callers may reuse or mutate their slices after.
type Config struct {
	Contractions []Contraction
	ProperNouns  []string
}

// Normalizer tokenizes raw text. Safe for concurrent use once built.
type Normalizer struct {
	rules  []rule
	proper map[string]struct{}
}

type rule struct {
	re *regexp.Regexp
	to string
}

// New builds a Normalizer from cfg.
func New(cfg Config) (*Normalizer, error) {
	n := &Normalizer{
		rules:  make([]rule, 0, len(cfg.Contractions)),
		proper: make(map[string]struct{}, len(cfg.ProperNouns)),
	}
	for _, c := range cfg.Contractions {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(c.From) + `\b`)
		if err != nil {
			return nil, err
		}
		n.rules = append(n.rules, rule{re: re, to: strings.ToLower(c.To)})
	}
	for _, p := range cfg.ProperNouns {
		n.proper[strings.ToLower(p)] = struct{}{}
	}
	return n, nil
}

// Default returns a Normalizer built from the built-in English
// contraction and proper-noun tables.
func Default() *Normalizer {
	n, err := New(Config{Contractions: DefaultContractions, ProperNouns: DefaultProperNouns})
	if err != nil {
		// The built-in tables only contain letters and apostrophes.
		panic("normalize: default tables failed to compile: " + err.Error())
	}
	return n
}

// Tokenize turns text into an ordered token list. Duplicates are kept.
// Tokens are lowercase unless classified as proper nouns, and always
// contain at least one letter; everything else is discarded.
func (n *Normalizer) Tokenize(text string) []string {
	text = quoteReplacer.Replace(text)
	// Contractions carry apostrophes, so expansion runs before the
	// punctuation pass destroys them.
	text = n.ExpandContractions(text)
	text = rePunct.ReplaceAllString(text, " ")

	var tokens []string
	for _, piece := range strings.Fields(text) {
		piece = strings.TrimSpace(piece)
		if !hasAlpha(piece) {
			continue
		}
		if n.IsProperNoun(piece) {
			tokens = append(tokens, piece)
		} else {
			tokens = append(tokens, strings.ToLower(piece))
		}
	}
	return tokens
}

// ExpandContractions rewrites every known contraction to its expanded
// form, preserving the capitalization of the matched span's first letter.
func (n *Normalizer) ExpandContractions(text string) string {
	for _, r := range n.rules {
		text = r.re.ReplaceAllStringFunc(text, func(match string) string {
			first := []rune(match)[0]
			if unicode.IsUpper(first) {
				return capitalize(r.to)
			}
			return r.to
		})
	}
	return text
}

// IsProperNoun reports whether word should keep its casing: either a
// member of the fixed closed set (names, places, languages, days, months,
// honorifics) or a 2-4 letter all-uppercase word (acronym heuristic).
// Unlisted proper nouns get lowercased and coincidental short all-caps
// words slip through; both are accepted trade-offs of the heuristic.
func (n *Normalizer) IsProperNoun(word string) bool {
	if _, ok := n.proper[strings.ToLower(word)]; ok {
		return true
	}
	runes := []rune(word)
	if len(runes) < 2 || len(runes) > 4 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func hasAlpha(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
