package summary

import (
	"reflect"
	"strings"
	"testing"

	"moneymong/internal/config"
	"moneymong/internal/domain/models"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips simple tags",
			input:    "<main_topic>반도체 시장 전망</main_topic>",
			expected: "반도체 시장 전망",
		},
		{
			name:     "strips multiple tags and trims",
			input:    "  <a>x</a> plain <b>y</b>  ",
			expected: "x plain y",
		},
		{
			name:     "idempotent on clean text",
			input:    "already clean",
			expected: "already clean",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "unterminated angle bracket left alone",
			input:    "a < b and c",
			expected: "a < b and c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			// Sanitizing the result again must be a no-op.
			if again := Sanitize(got); again != got {
				t.Errorf("Sanitize not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestExtractTag(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tag      string
		expected string
	}{
		{
			name:     "basic extraction",
			input:    "<main_topic>A</main_topic>",
			tag:      "main_topic",
			expected: "A",
		},
		{
			name:     "case insensitive tag match",
			input:    "<Main_Topic>ok</MAIN_TOPIC>",
			tag:      "main_topic",
			expected: "ok",
		},
		{
			name:     "first match wins",
			input:    "<t>first</t><t>second</t>",
			tag:      "t",
			expected: "first",
		},
		{
			name:     "content spans newlines",
			input:    "<t>line1\nline2</t>",
			tag:      "t",
			expected: "line1\nline2",
		},
		{
			name:     "absent tag",
			input:    "no tags here",
			tag:      "main_topic",
			expected: "",
		},
		{
			name:     "unterminated tag",
			input:    "<main_topic>dangling",
			tag:      "main_topic",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			tag:      "main_topic",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTag(tt.input, tt.tag); got != tt.expected {
				t.Errorf("ExtractTag(%q, %q) = %q, want %q", tt.input, tt.tag, got, tt.expected)
			}
		})
	}
}

func TestExtractList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		parent   string
		child    string
		expected []string
	}{
		{
			name:     "preserves document order",
			input:    "<key_points><key_point>X</key_point><key_point>Y</key_point></key_points>",
			parent:   "key_points",
			child:    "key_point",
			expected: []string{"X", "Y"},
		},
		{
			name:     "trims child content",
			input:    "<key_points><key_point>\n  spaced  \n</key_point></key_points>",
			parent:   "key_points",
			child:    "key_point",
			expected: []string{"spaced"},
		},
		{
			name:     "missing parent",
			input:    "<key_point>orphan</key_point>",
			parent:   "key_points",
			child:    "key_point",
			expected: nil,
		},
		{
			name:     "parent without children",
			input:    "<key_points>just text</key_points>",
			parent:   "key_points",
			child:    "key_point",
			expected: nil,
		},
		{
			name:     "children outside parent ignored",
			input:    "<key_point>outside</key_point><key_points><key_point>inside</key_point></key_points>",
			parent:   "key_points",
			child:    "key_point",
			expected: []string{"inside"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractList(tt.input, tt.parent, tt.child)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractList() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFieldsTagged(t *testing.T) {
	sum := &models.DocumentSummary{
		SummaryLong: "<main_topic>거시경제 전망</main_topic>" +
			"<key_points><key_point>성장률 3.2%</key_point><key_point>물가 완화</key_point></key_points>" +
			"<key_terms><key_term>GDP</key_term><key_term>CPI</key_term></key_terms>",
		KeyPoints: []string{"structured array, unused on tagged path"},
	}

	f := Fields(sum)
	if f.Fallback {
		t.Fatal("expected tagged path, got fallback")
	}
	if f.MainTopic != "거시경제 전망" {
		t.Errorf("MainTopic = %q", f.MainTopic)
	}
	if !reflect.DeepEqual(f.KeyPoints, []string{"성장률 3.2%", "물가 완화"}) {
		t.Errorf("KeyPoints = %v", f.KeyPoints)
	}
	if !reflect.DeepEqual(f.KeyTerms, []string{"GDP", "CPI"}) {
		t.Errorf("KeyTerms = %v", f.KeyTerms)
	}
	if f.Overview != "" {
		t.Errorf("Overview = %q, set only on the fallback path", f.Overview)
	}
}

func TestFieldsFallback(t *testing.T) {
	sum := &models.DocumentSummary{
		SummaryLong: "완전히 평범한 요약 텍스트입니다.",
		KeyPoints:   []string{"포인트 1", "포인트 2"},
	}

	f := Fields(sum)
	if !f.Fallback {
		t.Fatal("expected fallback when no tags are present")
	}
	if f.Overview != "완전히 평범한 요약 텍스트입니다." {
		t.Errorf("Overview = %q", f.Overview)
	}
	if !reflect.DeepEqual(f.KeyPoints, sum.KeyPoints) {
		t.Errorf("KeyPoints = %v, want verbatim structured array", f.KeyPoints)
	}
}

func TestFieldsFallbackClampsOverview(t *testing.T) {
	sum := &models.DocumentSummary{
		SummaryLong: strings.Repeat("가", config.SummaryLongLimit+50),
	}

	f := Fields(sum)
	if !f.Fallback {
		t.Fatal("expected fallback path")
	}
	if got := len([]rune(f.Overview)); got != config.SummaryLongLimit {
		t.Errorf("Overview length = %d, want %d", got, config.SummaryLongLimit)
	}
}

func TestShortText(t *testing.T) {
	if got := ShortText(nil); got != "" {
		t.Errorf("ShortText(nil) = %q", got)
	}

	sum := &models.DocumentSummary{SummaryShort: "<b>짧은</b> 요약"}
	if got := ShortText(sum); got != "짧은 요약" {
		t.Errorf("ShortText() = %q", got)
	}

	sum = &models.DocumentSummary{SummaryShort: strings.Repeat("나", config.SummaryShortLimit+10)}
	if got := len([]rune(ShortText(sum))); got != config.SummaryShortLimit {
		t.Errorf("ShortText length = %d, want %d", got, config.SummaryShortLimit)
	}
}

func TestFieldsNilSummary(t *testing.T) {
	f := Fields(nil)
	if !f.Fallback {
		t.Fatal("nil summary must take the fallback path")
	}
}

func TestKeywordsNormalization(t *testing.T) {
	tests := []struct {
		name     string
		entities map[string]interface{}
		expected []string
	}{
		{
			name:     "string form",
			entities: map[string]interface{}{"keywords": "인플레이션"},
			expected: []string{"인플레이션"},
		},
		{
			name:     "list form",
			entities: map[string]interface{}{"keywords": []interface{}{"GDP", "통화정책"}},
			expected: []string{"GDP", "통화정책"},
		},
		{
			name:     "list with non-strings skipped",
			entities: map[string]interface{}{"keywords": []interface{}{"GDP", 42, ""}},
			expected: []string{"GDP"},
		},
		{
			name:     "missing field",
			entities: map[string]interface{}{},
			expected: nil,
		},
		{
			name:     "nil entities",
			entities: nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Keywords(tt.entities); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Keywords() = %v, want %v", got, tt.expected)
			}
		})
	}
}
