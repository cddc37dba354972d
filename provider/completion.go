package provider

import (
	"sort"
	"strings"
	"unicode"
)

// FilterCompletions keeps the items that fuzzily match the query.
// An empty query keeps everything.
func FilterCompletions(items []CompletionItem, query string) []CompletionItem {
	if query == "" {
		return items
	}

	var filtered []CompletionItem
	for _, item := range items {
		text := item.FilterText
		if text == "" {
			text = item.Label
		}
		if FuzzyMatch(text, query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortCompletions orders items for presentation: preselected first,
// then exact prefix matches, then kind priority, then sort text.
// The input slice is not modified.
func SortCompletions(items []CompletionItem, query string) []CompletionItem {
	if len(items) <= 1 {
		return items
	}

	queryLower := strings.ToLower(query)
	sorted := make([]CompletionItem, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if a.Preselect != b.Preselect {
			return a.Preselect
		}

		if queryLower != "" {
			aPrefix := strings.HasPrefix(strings.ToLower(a.Label), queryLower)
			bPrefix := strings.HasPrefix(strings.ToLower(b.Label), queryLower)
			if aPrefix != bPrefix {
				return aPrefix
			}
		}

		if pa, pb := kindPriority(a.Kind), kindPriority(b.Kind); pa != pb {
			return pa < pb
		}

		sa := a.SortText
		if sa == "" {
			sa = a.Label
		}
		sb := b.SortText
		if sb == "" {
			sb = b.Label
		}
		return strings.ToLower(sa) < strings.ToLower(sb)
	})

	return sorted
}

// kindPriority ranks completion kinds; lower sorts earlier. Callables
// beat values beat types beat keywords, with plain text last.
func kindPriority(k CompletionItemKind) int {
	switch k {
	case KindMethod, KindFunction, KindConstructor:
		return 1
	case KindField, KindVariable, KindProperty:
		return 2
	case KindClass, KindStruct, KindInterface, KindTypeParameter:
		return 3
	case KindConstant, KindModule:
		return 4
	case KindKeyword:
		return 5
	case KindSnippet:
		return 6
	case KindText:
		return 10
	default:
		return 7
	}
}

// FuzzyMatch reports whether text matches the query, first by
// substring and then by in-order character subsequence. Matching is
// case-insensitive.
func FuzzyMatch(text, query string) bool {
	if query == "" {
		return true
	}

	textLower := strings.ToLower(text)
	queryLower := strings.ToLower(query)

	if strings.Contains(textLower, queryLower) {
		return true
	}

	tr := []rune(textLower)
	ti := 0
	for _, qc := range queryLower {
		for ti < len(tr) && tr[ti] != qc {
			ti++
		}
		if ti >= len(tr) {
			return false
		}
		ti++
	}
	return true
}

// FuzzyScore rates how well text matches the query; higher is better.
// Exact match dominates, then prefix, then substring and word-boundary
// matches, with a small penalty for extra length.
func FuzzyScore(text, query string) int {
	if query == "" {
		return 0
	}

	textLower := strings.ToLower(text)
	queryLower := strings.ToLower(query)

	if textLower == queryLower {
		return 1000
	}

	score := 0
	if strings.HasPrefix(textLower, queryLower) {
		score += 500
	}
	if strings.Contains(textLower, queryLower) {
		score += 200
	}
	if matchesBoundaries(text, query) {
		score += 300
	}

	// Consecutive matched characters earn a growing bonus.
	tr := []rune(textLower)
	ti := 0
	streak := 0
	for _, qc := range []rune(queryLower) {
		for ti < len(tr) && tr[ti] != qc {
			ti++
			streak = 0
		}
		if ti < len(tr) {
			score += 10 + streak
			streak += 5
			ti++
		}
	}

	if diff := len(tr) - len([]rune(queryLower)); diff > 0 {
		score -= diff * 2
	}
	return score
}

// matchesBoundaries reports whether the query matches the word
// boundary characters of text, e.g. "fb" against "fooBar" or
// "foo_bar".
func matchesBoundaries(text, query string) bool {
	if query == "" {
		return true
	}

	boundaries := boundaryRunes(text)
	if len(boundaries) == 0 {
		return false
	}

	qr := []rune(strings.ToLower(query))
	qi := 0
	for _, b := range boundaries {
		if qi < len(qr) && unicode.ToLower(b) == qr[qi] {
			qi++
		}
	}
	return qi == len(qr)
}

// boundaryRunes extracts the first rune and every camelCase or
// snake_case boundary rune from text.
func boundaryRunes(text string) []rune {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	boundaries := []rune{runes[0]}
	for i := 1; i < len(runes); i++ {
		c, prev := runes[i], runes[i-1]
		if c == '_' {
			continue
		}
		if prev == '_' || (unicode.IsUpper(c) && unicode.IsLower(prev)) {
			boundaries = append(boundaries, c)
		}
	}
	return boundaries
}
