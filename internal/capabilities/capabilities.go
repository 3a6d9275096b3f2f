// Package capabilities is the static catalog behind the Capabilities screen
// and the prompts it hands to the chat.
package capabilities

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/zhubert/manus/internal/i18n"
)

// Category groups capabilities on the screen.
type Category string

const (
	CategoryResearch    Category = "research"
	CategoryDevelopment Category = "development"
	CategoryAnalysis    Category = "analysis"
	CategoryAutomation  Category = "automation"
	CategoryGeneral     Category = "general"
)

// Capability is one thing the assistant advertises. Colors are hex accents
// for the light and dark themes.
type Capability struct {
	ID             string
	TitleKey       string
	DescriptionKey string
	Category       Category
	Color          string
	DarkColor      string
}

var catalog = []Capability{
	{"1", "capabilityInformationResearchTitle", "capabilityInformationResearchDescription", CategoryResearch, "#3B82F6", "#60A5FA"},
	{"2", "capabilityDataAnalysisTitle", "capabilityDataAnalysisDescription", CategoryAnalysis, "#8B5CF6", "#A78BFA"},
	{"3", "capabilityCodeGenerationTitle", "capabilityCodeGenerationDescription", CategoryDevelopment, "#10B981", "#34D399"},
	{"4", "capabilityContentWritingTitle", "capabilityContentWritingDescription", CategoryResearch, "#F59E0B", "#FBBF24"},
	{"5", "capabilityWebAutomationTitle", "capabilityWebAutomationDescription", CategoryAutomation, "#EF4444", "#F87171"},
	{"6", "capabilityDatabaseManagementTitle", "capabilityDatabaseManagementDescription", CategoryDevelopment, "#6366F1", "#818CF8"},
	{"7", "capabilityFileSystemOperationsTitle", "capabilityFileSystemOperationsDescription", CategoryAutomation, "#14B8A6", "#2DD4BF"},
	{"8", "capabilitySystemConfigurationTitle", "capabilitySystemConfigurationDescription", CategoryAutomation, "#84CC16", "#A3E635"},
	{"9", "capabilityGeneralProblemSolvingTitle", "capabilityGeneralProblemSolvingDescription", CategoryGeneral, "#EC4899", "#F472B6"},
}

// All returns every capability in catalog order.
func All() []Capability {
	out := make([]Capability, len(catalog))
	copy(out, catalog)
	return out
}

// Categories returns the categories in tab order. The translation key for
// a category label is the category name itself.
func Categories() []Category {
	return []Category{CategoryResearch, CategoryDevelopment, CategoryAnalysis, CategoryAutomation, CategoryGeneral}
}

// ByCategory returns the capabilities in c.
func ByCategory(c Category) []Capability {
	var out []Capability
	for _, capability := range catalog {
		if capability.Category == c {
			out = append(out, capability)
		}
	}
	return out
}

// Accent returns the capability's colour for the given theme.
func (c Capability) Accent(dark bool) string {
	if dark {
		return c.DarkColor
	}
	return c.Color
}

// maxFuzzyRatio is the largest edit distance, relative to word length, that
// still counts as a match.
const maxFuzzyRatio = 0.34

// Search ranks capabilities whose translated title matches query. Substring
// matches come first; then titles with a word within a small edit distance
// of a query word. An empty query returns nil.
func Search(query string, t i18n.Translator) []Capability {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	type scored struct {
		capability Capability
		score      float64
		order      int
	}
	var hits []scored
	for i, c := range catalog {
		title := strings.ToLower(t.T(c.TitleKey))
		if strings.Contains(title, query) {
			hits = append(hits, scored{c, 0, i})
			continue
		}
		if s, ok := fuzzyScore(query, title); ok {
			hits = append(hits, scored{c, s, i})
		}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		if hits[a].score != hits[b].score {
			return hits[a].score < hits[b].score
		}
		return hits[a].order < hits[b].order
	})
	out := make([]Capability, len(hits))
	for i, h := range hits {
		out[i] = h.capability
	}
	return out
}

// fuzzyScore returns the best normalised distance between any query word and
// any title word. Scores are offset by one so they sort after substrings.
func fuzzyScore(query, title string) (float64, bool) {
	best := -1.0
	for _, q := range strings.Fields(query) {
		for _, w := range strings.Fields(title) {
			n := max(utf8.RuneCountInString(q), utf8.RuneCountInString(w))
			if n == 0 {
				continue
			}
			ratio := float64(levenshtein.ComputeDistance(q, w)) / float64(n)
			if ratio <= maxFuzzyRatio && (best < 0 || ratio < best) {
				best = ratio
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return 1 + best, true
}

// PrefillFor returns the chat input used when starting a chat about c.
func PrefillFor(c Capability, t i18n.Translator) string {
	title := strings.ToLower(t.T(c.TitleKey))
	return t.T("prefillHelpWith", i18n.Params{
		i18n.DefaultValueParam: "I need help with {{title}}.",
		"title":                title,
	})
}

// QuickStart is a canned opening prompt.
type QuickStart struct {
	LabelKey     string
	PrefillKey   string
	DefaultValue string
}

// Prefill returns the translated prompt.
func (q QuickStart) Prefill(t i18n.Translator) string {
	return t.T(q.PrefillKey, i18n.Params{i18n.DefaultValueParam: q.DefaultValue})
}

// QuickStarts returns the quick start prompts in display order.
func QuickStarts() []QuickStart {
	return []QuickStart{
		{LabelKey: "askAQuestion", PrefillKey: "prefillAskQuestion", DefaultValue: "I have a question about..."},
		{LabelKey: "researchTopic", PrefillKey: "prefillResearchTopic", DefaultValue: "Can you research the topic of..."},
		{LabelKey: "generateCode", PrefillKey: "prefillGenerateCode", DefaultValue: "Please generate code for..."},
	}
}
