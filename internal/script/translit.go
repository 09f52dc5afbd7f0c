package script

import (
	"fmt"
	"sort"
	"strings"
)

// Scheme identifies a supported writing scheme for transliteration. The
// candidate list mirrors the corpus: the primary Indic script, a
// Roman-diacritic scheme, an ASCII scheme, and the secondary Indic script.
type Scheme string

const (
	SchemeDevanagari Scheme = "devanagari"
	SchemeIAST       Scheme = "iast"
	SchemeHK         Scheme = "hk" // Harvard-Kyoto
	SchemeTelugu     Scheme = "telugu"
)

// Schemes lists all supported schemes in candidate order.
func Schemes() []Scheme {
	return []Scheme{SchemeDevanagari, SchemeIAST, SchemeHK, SchemeTelugu}
}

type phonemeClass int

const (
	clVowel phonemeClass = iota
	clConsonant
	clMark
)

// phoneme maps one Sanskrit sound across all schemes. Indic vowels carry
// both their independent form and their post-consonant (matra) form; the
// inherent "a" has an empty matra.
type phoneme struct {
	class     phonemeClass
	iast      string
	hk        string
	deva      string
	devaMatra string
	telu      string
	teluMatra string
}

var phonemes = []phoneme{
	// Vowels
	{clVowel, "a", "a", "अ", "", "అ", ""},
	{clVowel, "ā", "A", "आ", "ा", "ఆ", "ా"},
	{clVowel, "i", "i", "इ", "ि", "ఇ", "ి"},
	{clVowel, "ī", "I", "ई", "ी", "ఈ", "ీ"},
	{clVowel, "u", "u", "उ", "ु", "ఉ", "ు"},
	{clVowel, "ū", "U", "ऊ", "ू", "ఊ", "ూ"},
	{clVowel, "ṛ", "R", "ऋ", "ृ", "ఋ", "ృ"},
	{clVowel, "ṝ", "RR", "ॠ", "ॄ", "ౠ", "ౄ"},
	{clVowel, "ḷ", "lR", "ऌ", "ॢ", "ఌ", "ౢ"},
	{clVowel, "e", "e", "ए", "े", "ఏ", "ే"},
	{clVowel, "ai", "ai", "ऐ", "ै", "ఐ", "ై"},
	{clVowel, "o", "o", "ओ", "ो", "ఓ", "ో"},
	{clVowel, "au", "au", "औ", "ौ", "ఔ", "ౌ"},
	// Stops and nasals
	{clConsonant, "k", "k", "क", "", "క", ""},
	{clConsonant, "kh", "kh", "ख", "", "ఖ", ""},
	{clConsonant, "g", "g", "ग", "", "గ", ""},
	{clConsonant, "gh", "gh", "घ", "", "ఘ", ""},
	{clConsonant, "ṅ", "G", "ङ", "", "ఙ", ""},
	{clConsonant, "c", "c", "च", "", "చ", ""},
	{clConsonant, "ch", "ch", "छ", "", "ఛ", ""},
	{clConsonant, "j", "j", "ज", "", "జ", ""},
	{clConsonant, "jh", "jh", "झ", "", "ఝ", ""},
	{clConsonant, "ñ", "J", "ञ", "", "ఞ", ""},
	{clConsonant, "ṭ", "T", "ट", "", "ట", ""},
	{clConsonant, "ṭh", "Th", "ठ", "", "ఠ", ""},
	{clConsonant, "ḍ", "D", "ड", "", "డ", ""},
	{clConsonant, "ḍh", "Dh", "ढ", "", "ఢ", ""},
	{clConsonant, "ṇ", "N", "ण", "", "ణ", ""},
	{clConsonant, "t", "t", "त", "", "త", ""},
	{clConsonant, "th", "th", "थ", "", "థ", ""},
	{clConsonant, "d", "d", "द", "", "ద", ""},
	{clConsonant, "dh", "dh", "ध", "", "ధ", ""},
	{clConsonant, "n", "n", "न", "", "న", ""},
	{clConsonant, "p", "p", "प", "", "ప", ""},
	{clConsonant, "ph", "ph", "फ", "", "ఫ", ""},
	{clConsonant, "b", "b", "ब", "", "బ", ""},
	{clConsonant, "bh", "bh", "भ", "", "భ", ""},
	{clConsonant, "m", "m", "म", "", "మ", ""},
	// Semivowels, sibilants, h
	{clConsonant, "y", "y", "य", "", "య", ""},
	{clConsonant, "r", "r", "र", "", "ర", ""},
	{clConsonant, "l", "l", "ल", "", "ల", ""},
	{clConsonant, "v", "v", "व", "", "వ", ""},
	{clConsonant, "ś", "z", "श", "", "శ", ""},
	{clConsonant, "ṣ", "S", "ष", "", "ష", ""},
	{clConsonant, "s", "s", "स", "", "స", ""},
	{clConsonant, "h", "h", "ह", "", "హ", ""},
	// Marks
	{clMark, "ṃ", "M", "ं", "", "ం", ""},
	{clMark, "ḥ", "H", "ः", "", "ః", ""},
}

const (
	devaVirama = '्'
	teluVirama = '్'
)

// Lookup tables built once from the phoneme list.
var (
	iastTokens []string // longest-first roman tokens
	hkTokens   []string
	byIAST     = map[string]*phoneme{}
	byHK       = map[string]*phoneme{}

	devaByRune = map[rune]*phoneme{} // independent forms + consonants + marks
	devaMatras = map[rune]*phoneme{}
	teluByRune = map[rune]*phoneme{}
	teluMatras = map[rune]*phoneme{}
	inherentA  *phoneme
)

func init() {
	for i := range phonemes {
		p := &phonemes[i]
		byIAST[p.iast] = p
		byHK[p.hk] = p
		iastTokens = append(iastTokens, p.iast)
		hkTokens = append(hkTokens, p.hk)
		for _, r := range p.deva {
			devaByRune[r] = p
		}
		for _, r := range p.devaMatra {
			devaMatras[r] = p
		}
		for _, r := range p.telu {
			teluByRune[r] = p
		}
		for _, r := range p.teluMatra {
			teluMatras[r] = p
		}
	}
	inherentA = byIAST["a"]
	longestFirst := func(toks []string) {
		sort.Slice(toks, func(a, b int) bool {
			if len(toks[a]) != len(toks[b]) {
				return len(toks[a]) > len(toks[b])
			}
			return toks[a] < toks[b]
		})
	}
	longestFirst(iastTokens)
	longestFirst(hkTokens)
}

// token is either a phoneme or a literal passthrough (space, punctuation).
type token struct {
	p       *phoneme
	literal string
}

// Transliterate converts text from one scheme to another. Characters outside
// the scheme (other than spaces, digits and ASCII punctuation, which pass
// through) make the conversion fail; callers are expected to skip the failed
// variant rather than abort the search.
func Transliterate(text string, from, to Scheme) (string, error) {
	if from == to {
		return text, nil
	}
	toks, err := parse(text, from)
	if err != nil {
		return "", err
	}
	return render(toks, to), nil
}

func parse(text string, from Scheme) ([]token, error) {
	switch from {
	case SchemeIAST:
		return parseRoman(strings.ToLower(text), iastTokens, byIAST)
	case SchemeHK:
		return parseRoman(text, hkTokens, byHK)
	case SchemeDevanagari:
		return parseIndic(text, devaByRune, devaMatras, devaVirama)
	case SchemeTelugu:
		return parseIndic(text, teluByRune, teluMatras, teluVirama)
	default:
		return nil, fmt.Errorf("unsupported scheme %q", from)
	}
}

func isLiteral(r rune) bool {
	return r == ' ' || r == '\t' || (r >= '0' && r <= '9') ||
		r == '-' || r == '\'' || r == '.' || r == ',' || r == '?' || r == '!'
}

// parseRoman scans text with longest-match against the scheme's token list.
func parseRoman(text string, ordered []string, table map[string]*phoneme) ([]token, error) {
	var out []token
	for len(text) > 0 {
		r := []rune(text)[0]
		if isLiteral(r) {
			out = append(out, token{literal: string(r)})
			text = text[len(string(r)):]
			continue
		}
		matched := false
		for _, t := range ordered {
			if strings.HasPrefix(text, t) {
				out = append(out, token{p: table[t]})
				text = text[len(t):]
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("unmappable character %q", r)
		}
	}
	return out, nil
}

// parseIndic decodes an Indic-script string into phoneme tokens, resolving
// the inherent vowel: a consonant not followed by a matra or virama carries
// an implicit "a".
func parseIndic(text string, letters, matras map[rune]*phoneme, virama rune) ([]token, error) {
	var out []token
	pendingA := false
	flushA := func() {
		if pendingA {
			out = append(out, token{p: inherentA})
			pendingA = false
		}
	}
	for _, r := range text {
		switch {
		case r == virama:
			if !pendingA {
				return nil, fmt.Errorf("stray virama in %q", text)
			}
			pendingA = false
		case matras[r] != nil:
			if !pendingA {
				return nil, fmt.Errorf("stray vowel sign %q", r)
			}
			out = append(out, token{p: matras[r]})
			pendingA = false
		case letters[r] != nil:
			p := letters[r]
			if p.class == clConsonant {
				flushA()
				out = append(out, token{p: p})
				pendingA = true
			} else {
				flushA()
				out = append(out, token{p: p})
			}
		case isLiteral(r):
			flushA()
			out = append(out, token{literal: string(r)})
		default:
			return nil, fmt.Errorf("unmappable character %q", r)
		}
	}
	flushA()
	return out, nil
}

func render(toks []token, to Scheme) string {
	switch to {
	case SchemeIAST:
		return renderRoman(toks, func(p *phoneme) string { return p.iast })
	case SchemeHK:
		return renderRoman(toks, func(p *phoneme) string { return p.hk })
	case SchemeDevanagari:
		return renderIndic(toks,
			func(p *phoneme) string { return p.deva },
			func(p *phoneme) string { return p.devaMatra },
			devaVirama)
	case SchemeTelugu:
		return renderIndic(toks,
			func(p *phoneme) string { return p.telu },
			func(p *phoneme) string { return p.teluMatra },
			teluVirama)
	}
	return ""
}

func renderRoman(toks []token, form func(*phoneme) string) string {
	var b strings.Builder
	for _, t := range toks {
		if t.p == nil {
			b.WriteString(t.literal)
			continue
		}
		b.WriteString(form(t.p))
	}
	return b.String()
}

// renderIndic writes consonants with matras for following vowels and a
// virama for bare consonants (clusters and word-final position).
func renderIndic(toks []token, letter, matra func(*phoneme) string, virama rune) string {
	var b strings.Builder
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.p == nil {
			b.WriteString(t.literal)
			continue
		}
		switch t.p.class {
		case clConsonant:
			b.WriteString(letter(t.p))
			if i+1 < len(toks) && toks[i+1].p != nil && toks[i+1].p.class == clVowel {
				b.WriteString(matra(toks[i+1].p))
				i++
			} else {
				b.WriteRune(virama)
			}
		default:
			b.WriteString(letter(t.p))
		}
	}
	return b.String()
}
