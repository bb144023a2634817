package sitedoc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// OperationType classifies what a query wants to do with a topic.
type OperationType string

// Operation types, in classification order.
const (
	OperationUsage   OperationType = "usage"
	OperationAPI     OperationType = "api"
	OperationExample OperationType = "example"
	OperationGuide   OperationType = "guide"
	OperationGeneral OperationType = "general"
)

// MaxKeywords caps the number of keywords taken from a query.
const MaxKeywords = 5

// SearchIntent is the structured reading of a free-text query.
type SearchIntent struct {
	OriginalQuery string
	Component     string
	OperationType OperationType
	Keywords      []string
}

// IsComponentQuery reports whether the query names a component.
func (i *SearchIntent) IsComponentQuery() bool {
	return i.Component != ""
}

// operationKeywords is checked in order; the first category with a hit wins.
var operationKeywords = []struct {
	op    OperationType
	terms []string
}{
	{OperationUsage, []string{"用法", "使用", "怎么用", "如何使用", "usage", "how to use"}},
	{OperationAPI, []string{"api", "接口", "属性", "参数", "方法", "事件", "props", "events", "methods"}},
	{OperationExample, []string{"示例", "例子", "案例", "演示", "example", "demo", "sample"}},
	{OperationGuide, []string{"指南", "教程", "入门", "快速开始", "guide", "tutorial", "getting started"}},
}

// OperationKeywords returns the fixed keyword list of an operation type.
func OperationKeywords(op OperationType) []string {
	for _, ok := range operationKeywords {
		if ok.op == op {
			return ok.terms
		}
	}
	return nil
}

const (
	triggerAlt = `查询|搜索|使用|用法|组件|\b(?:query|search|usage|use|components?)\b`
	identAlt   = `[a-z][a-z0-9]*(?:[-_][a-z0-9]+)*`
)

var (
	triggerRE        = regexp.MustCompile(triggerAlt)
	triggerThenIdent = regexp.MustCompile(`(?:` + triggerAlt + `)\s*(` + identAlt + `)`)
	identThenTrigger = regexp.MustCompile(`(` + identAlt + `)\s*(?:的)?\s*(?:组件|用法|使用|\bcomponent\b|\busage\b)`)
	prefixedIdent    = regexp.MustCompile(`\bz-[a-z0-9]+(?:-[a-z0-9]+)*`)
)

// componentStopwords are tokens the identifier patterns can capture that
// never name a component.
var componentStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "for": true, "to": true,
	"how": true, "in": true, "and": true, "or": true,
	"query": true, "search": true, "use": true, "usage": true,
	"component": true, "components": true,
	"api": true, "example": true, "guide": true, "doc": true, "docs": true,
}

// ParseSearchIntent extracts a component hint, an operation type and up to
// MaxKeywords keywords from a query. Matching is case-insensitive; the
// original query is kept unchanged.
func ParseSearchIntent(query string) *SearchIntent {
	lower := strings.ToLower(strings.TrimSpace(query))
	return &SearchIntent{
		OriginalQuery: query,
		Component:     extractComponent(lower),
		OperationType: classifyOperation(lower),
		Keywords:      extractKeywords(lower),
	}
}

func extractComponent(q string) string {
	for _, re := range []*regexp.Regexp{triggerThenIdent, identThenTrigger} {
		for _, m := range re.FindAllStringSubmatch(q, -1) {
			if name := m[1]; !componentStopwords[name] {
				return name
			}
		}
	}
	return prefixedIdent.FindString(q)
}

func classifyOperation(q string) OperationType {
	for _, ok := range operationKeywords {
		for _, term := range ok.terms {
			if containsTerm(q, term) {
				return ok.op
			}
		}
	}
	return OperationGeneral
}

func extractKeywords(q string) []string {
	stripped := triggerRE.ReplaceAllString(q, " ")
	keywords := make([]string, 0, MaxKeywords)
	seen := make(map[string]bool)
	for _, tok := range strings.Fields(stripped) {
		if utf8.RuneCountInString(tok) <= 1 || seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
		if len(keywords) == MaxKeywords {
			break
		}
	}
	return keywords
}

// containsTerm reports whether s contains term. ASCII terms must sit on
// word boundaries so that "use" does not match "user".
func containsTerm(s, term string) bool {
	if !isASCII(term) {
		return strings.Contains(s, term)
	}
	for i := 0; ; {
		j := strings.Index(s[i:], term)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(term)
		if !isWordByteAt(s, start-1) && !isWordByteAt(s, end) {
			return true
		}
		i = start + 1
	}
}

func isWordByteAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
