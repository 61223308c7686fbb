package measuretext

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// wrapToWidth greedily wraps s to maxWidth using f's metrics, grounded
// on the word-wrap pass of the teacher's instructions/text_wrap.go
// (wrapParaByWordsScaled): split on ASCII space/tab, preserve NBSP
// inside tokens, and fall through to grapheme-level splitting for any
// single word wider than maxWidth. maxWidth <= 0 means "don't wrap".
func wrapToWidth(f *Font, s string, maxWidth float64) []string {
	if maxWidth <= 0 {
		return strings.Split(normalizeNewlines(s), "\n")
	}

	var out []string
	for _, para := range strings.Split(normalizeNewlines(s), "\n") {
		if para == "" {
			out = append(out, "")
			continue
		}
		out = append(out, wrapParagraph(f, para, maxWidth)...)
	}
	return out
}

func wrapParagraph(f *Font, p string, maxWidth float64) []string {
	words := splitWordsPreserveNBSP(p)
	if len(words) == 0 {
		return []string{""}
	}

	cache := make(map[string]float64)
	measure := func(s string) float64 {
		if s == "" {
			return 0
		}
		if w, ok := cache[s]; ok {
			return w
		}
		w, _ := f.MeasureString(s)
		if w < 0 {
			w = 0
		}
		cache[s] = w
		return w
	}

	var lines []string
	i := 0
	for i < len(words) {
		if measure(words[i]) > maxWidth {
			lines = append(lines, splitLongToken(f, words[i], maxWidth, measure)...)
			i++
			continue
		}

		spaceW := measure(" ")
		rem := words[i:]
		count := 1
		width := measure(rem[0])
		for count < len(rem) {
			next := width + spaceW + measure(rem[count])
			if next > maxWidth {
				break
			}
			width = next
			count++
		}
		lines = append(lines, strings.Join(rem[:count], " "))
		i += count
	}
	return lines
}

// splitLongToken splits a single overlong word by grapheme cluster so no
// line ever exceeds maxWidth, the same progressive-split fallback as
// splitLongTokenProgressive in the teacher's text_wrap.go.
func splitLongToken(f *Font, token string, maxWidth float64, measure func(string) float64) []string {
	clusters, offs := splitGraphemes(token)
	var out []string
	start := 0
	for start < len(clusters) {
		end := start + 1
		for end < len(clusters) && measure(token[offs[start]:offs[end+1]]) <= maxWidth {
			end++
		}
		out = append(out, token[offs[start]:offs[end]])
		start = end
	}
	return out
}

// splitGraphemes returns grapheme clusters and their byte offsets in s.
func splitGraphemes(s string) (clusters []string, offsets []int) {
	g := uniseg.NewGraphemes(s)
	offsets = append(offsets, 0)
	for g.Next() {
		cl := g.Str()
		clusters = append(clusters, cl)
		offsets = append(offsets, offsets[len(offsets)-1]+len(cl))
	}
	return clusters, offsets
}

// splitWordsPreserveNBSP splits on ASCII space/tab, keeping NBSP (U+00A0)
// inside tokens and collapsing runs of separators.
func splitWordsPreserveNBSP(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := -1
	for i, r := range s {
		sep := r == ' ' || r == '\t'
		if sep {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

// normalizeNewlines converts CRLF and CR to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// trimRightSpacesNBSP trims trailing ASCII spaces and NBSP.
func trimRightSpacesNBSP(s string) string {
	s = strings.TrimRight(s, " ")
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if r == ' ' || r == ' ' {
			s = s[:len(s)-size]
			continue
		}
		break
	}
	return s
}
