package sitedoc

import (
	"fmt"
	"strings"
)

// FormatDocuments formats documents for display, one per line.
// Uses title if available, falls back to path.
func FormatDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	lines := make([]string, 0, len(docs))
	for _, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.Path
		}
		lines = append(lines, fmt.Sprintf("[%s] %s  %s", doc.Category, title, doc.Path))
	}
	return strings.Join(lines, "\n")
}

// FormatSearchResults formats ranked results for display.
// Results are separated by blank lines.
func FormatSearchResults(results []*SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for i, r := range results {
		parts = append(parts, fmt.Sprintf("%d. %s (%s, score %.1f)\n   %s\n   %s",
			i+1, r.Title, r.Category, r.Score, r.Path, r.Excerpt))
	}
	return strings.Join(parts, "\n\n")
}

// FormatStructure formats the document structure as a section outline.
func FormatStructure(s *DocumentStructure) string {
	var b strings.Builder
	sections := []struct {
		name  string
		nodes []DocumentNode
	}{
		{"frontend", s.Frontend},
		{"backend", s.Backend},
		{"general", s.General},
	}
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s (%d)\n", section.name, len(section.nodes))
		for _, n := range section.nodes {
			fmt.Fprintf(&b, "- %s  %s\n", n.Title, n.Path)
		}
	}
	return b.String()
}
