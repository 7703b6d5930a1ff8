// Package summary parses AI-generated document summaries. The backend's
// summarizer embeds pseudo-XML tags (<main_topic>, <key_points>/<key_point>,
// <key_terms>/<key_term>) inside an otherwise plain summary_long string. The
// format is an external wire format and is never assumed to be well-formed:
// malformed or unterminated tags yield empty results, never errors.
package summary

import (
	"regexp"
	"strings"

	"moneymong/internal/config"
	"moneymong/internal/domain/models"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Sanitize strips every <...> run from s and trims surrounding whitespace.
// Idempotent on already-clean text.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

// ExtractTag returns the first <tag>...</tag> inner content, case-insensitive
// and trimmed. Absent or unterminated tags return "".
func ExtractTag(s, tag string) string {
	if s == "" || tag == "" {
		return ""
	}
	re, err := regexp.Compile(`(?is)<` + regexp.QuoteMeta(tag) + `>(.*?)</` + regexp.QuoteMeta(tag) + `>`)
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ExtractList locates the parent block and returns every child occurrence
// inside it, trimmed, preserving document order. A missing parent or no
// children returns nil.
func ExtractList(s, parentTag, childTag string) []string {
	parent := ExtractTag(s, parentTag)
	if parent == "" {
		return nil
	}
	re, err := regexp.Compile(`(?is)<` + regexp.QuoteMeta(childTag) + `>(.*?)</` + regexp.QuoteMeta(childTag) + `>`)
	if err != nil {
		return nil
	}
	matches := re.FindAllStringSubmatch(parent, -1)
	if len(matches) == 0 {
		return nil
	}
	items := make([]string, 0, len(matches))
	for _, m := range matches {
		items = append(items, strings.TrimSpace(m[1]))
	}
	return items
}

// SummaryFields are the display fields extracted from a document summary.
// When Fallback is true no structured tags were found anywhere and the caller
// must render Overview plus KeyPoints verbatim instead of the tagged fields.
type SummaryFields struct {
	MainTopic string
	KeyPoints []string
	KeyTerms  []string
	Overview  string
	Fallback  bool
}

// Fields extracts display fields from a summary, falling back to sanitized
// plain text plus the structured key_points array when the summary_long
// carries no recognizable tags. The fallback path is mandatory behavior, not
// styling.
func Fields(sum *models.DocumentSummary) SummaryFields {
	if sum == nil {
		return SummaryFields{Fallback: true}
	}

	f := SummaryFields{
		MainTopic: ExtractTag(sum.SummaryLong, "main_topic"),
		KeyPoints: ExtractList(sum.SummaryLong, "key_points", "key_point"),
		KeyTerms:  ExtractList(sum.SummaryLong, "key_terms", "key_term"),
	}

	if f.MainTopic == "" && len(f.KeyPoints) == 0 && len(f.KeyTerms) == 0 {
		f.Fallback = true
		f.Overview = clampRunes(Sanitize(sum.SummaryLong), config.SummaryLongLimit)
		f.KeyPoints = sum.KeyPoints
	}
	return f
}

// ShortText returns the sanitized list-view blurb for a summary, bounded to
// the backend's summary_short budget.
func ShortText(sum *models.DocumentSummary) string {
	if sum == nil {
		return ""
	}
	return clampRunes(Sanitize(sum.SummaryShort), config.SummaryShortLimit)
}

// clampRunes bounds s to the backend's character budget for the field.
func clampRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
