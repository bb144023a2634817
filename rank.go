package sitedoc

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Ranking limits.
const (
	MaxRankedResults   = 20
	DefaultSearchLimit = 10
	ExcerptLength      = 200
)

// Score weights.
const (
	scoreComponent        = 15
	scoreComponentVariant = 8
	scoreComponentTitle   = 20
	scoreKeyword          = 2
	scoreKeywordTitle     = 5
	scoreOperation        = 3
	scoreFullQuery        = 10
	scoreFuzzy            = 0.5
)

// ScoredDocument pairs a document with its relevance score.
type ScoredDocument struct {
	Document *Document
	Score    float64
}

// Score computes the relevance of doc to intent. The score is additive and
// never negative. Operation keywords only add to a document that already
// matched on something else.
func Score(doc *Document, intent *SearchIntent) float64 {
	title := strings.ToLower(doc.Title)
	text := title + "\n" + strings.ToLower(doc.Content)

	var score float64
	if intent.IsComponentQuery() {
		score += componentScore(title, text, intent.Component)
	}

	for _, k := range intent.Keywords {
		if strings.Contains(text, k) {
			score += scoreKeyword
		}
		if strings.Contains(title, k) {
			score += scoreKeywordTitle
		}
	}

	if q := strings.ToLower(strings.TrimSpace(intent.OriginalQuery)); q != "" && strings.Contains(text, q) {
		score += scoreFullQuery
	}

	for _, k := range intent.Keywords {
		if utf8.RuneCountInString(k) <= 2 {
			continue
		}
		score += scoreFuzzy * float64(strings.Count(text, firstRunes(k, 3)))
	}

	if score > 0 {
		for _, term := range OperationKeywords(intent.OperationType) {
			if strings.Contains(text, term) {
				score += scoreOperation
			}
		}
	}
	return score
}

func componentScore(title, text, component string) float64 {
	var score float64
	if strings.Contains(text, component) {
		score += scoreComponent
	}
	for _, v := range componentVariants(component) {
		if strings.Contains(text, v) {
			score += scoreComponentVariant
		}
	}
	if strings.Contains(title, component) {
		score += scoreComponentTitle
	}
	return score
}

// componentVariants returns the alternative spellings of a component name
// that differ from the name itself.
func componentVariants(c string) []string {
	candidates := []string{
		strings.ReplaceAll(c, "-", ""),
		strings.ReplaceAll(c, "-", "_"),
	}
	if !strings.HasPrefix(c, "z-") {
		candidates = append(candidates, "z-"+c)
	}
	candidates = append(candidates, c+"-component")

	variants := make([]string, 0, len(candidates))
	for _, v := range candidates {
		if v != c && !slices.Contains(variants, v) {
			variants = append(variants, v)
		}
	}
	return variants
}

// Rank scores docs against intent, drops zero scores, and returns at most
// MaxRankedResults results with excerpts. Ties are broken by path.
func Rank(docs []*Document, intent *SearchIntent) []*SearchResult {
	scored := make([]ScoredDocument, 0, len(docs))
	for _, doc := range docs {
		if s := Score(doc, intent); s > 0 {
			scored = append(scored, ScoredDocument{Document: doc, Score: s})
		}
	}

	slices.SortStableFunc(scored, func(a, b ScoredDocument) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return strings.Compare(a.Document.Path, b.Document.Path)
	})
	if len(scored) > MaxRankedResults {
		scored = scored[:MaxRankedResults]
	}

	results := make([]*SearchResult, 0, len(scored))
	for _, sd := range scored {
		excerpt := GenerateExcerpt(sd.Document.Content, intent)
		if excerpt == "" {
			excerpt = "这是关于" + sd.Document.Title + "的文档内容..."
		}
		results = append(results, &SearchResult{
			Path:     sd.Document.Path,
			Title:    sd.Document.Title,
			Excerpt:  excerpt,
			Score:    sd.Score,
			Category: sd.Document.Category,
		})
	}
	return results
}

var sentenceSplit = regexp.MustCompile(`[.!?。！？]`)

// GenerateExcerpt returns the first sentence of text that mentions a query
// keyword (or the component when there are no keywords), truncated to
// ExcerptLength runes. Without a matching sentence it returns the start of
// the text.
func GenerateExcerpt(text string, intent *SearchIntent) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	terms := intent.Keywords
	if len(terms) == 0 && intent.Component != "" {
		terms = []string{intent.Component}
	}

	for _, sentence := range sentenceSplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return truncate(sentence, ExcerptLength)
			}
		}
	}
	return truncate(text, ExcerptLength)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return firstRunes(s, n) + "..."
}

func firstRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
