package chat

import (
	"fmt"
	"strings"

	"github.com/ibam-edu/actioncoach/internal/models"
)

// Content mining limits.
const (
	maxMinedExamples   = 3
	maxMinedKeyPoints  = 5
	maxSummarySections = 2
	summarySectionLen  = 200
	summaryFallbackLen = 300
)

// This file is the best-effort content miner: naive split-and-filter
// heuristics that pull illustrative text out of unstructured session
// reading content. Results are explicitly best-effort - every function may
// return an empty result, and callers must fall back to generic templates
// when it does.

// ExtractExamples returns up to three sentences that look like business
// examples or stories. May return nil when nothing matches.
func ExtractExamples(content string) []string {
	var out []string
	for _, sentence := range strings.Split(content, ".") {
		s := strings.TrimSpace(sentence)
		if s == "" {
			continue
		}
		lower := strings.ToLower(s)
		if strings.Contains(lower, "example") || strings.Contains(lower, "story") || strings.Contains(lower, "business") {
			out = append(out, s+".")
			if len(out) == maxMinedExamples {
				break
			}
		}
	}
	return out
}

// ExtractKeyPoints returns up to five lines that look like bullet or
// numbered items; when none exist it falls back to the first few sentences.
// May return nil for empty content.
func ExtractKeyPoints(content string) []string {
	var bullets []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "-") || startsWithNumberedItem(trimmed) {
			bullets = append(bullets, trimmed)
			if len(bullets) == maxMinedKeyPoints {
				break
			}
		}
	}
	if len(bullets) > 0 {
		return bullets
	}

	var sentences []string
	for _, sentence := range strings.Split(content, ".") {
		s := strings.TrimSpace(sentence)
		if s == "" {
			continue
		}
		sentences = append(sentences, s)
		if len(sentences) == maxMinedExamples {
			break
		}
	}
	return sentences
}

// Summarize builds a short structured summary from reading content: the
// first substantial paragraphs, truncated. Falls back to a plain prefix for
// unstructured text, and returns "" for empty content.
func Summarize(content string) string {
	var sections []string
	for _, para := range strings.Split(content, "\n\n") {
		p := strings.TrimSpace(para)
		if len(p) <= 50 {
			continue
		}
		if len(p) > summarySectionLen {
			p = p[:summarySectionLen] + "..."
		}
		sections = append(sections, fmt.Sprintf("**Section %d:** %s", len(sections)+1, p))
		if len(sections) == maxSummarySections {
			break
		}
	}
	if len(sections) > 0 {
		return strings.Join(sections, "\n\n")
	}
	if len(content) > summaryFallbackLen {
		return content[:summaryFallbackLen] + "..."
	}
	return content
}

// Theme names produced by ExtractThemes.
const (
	ThemeDivinePurpose      = "divine_purpose"
	ThemeCallingDiscovery   = "calling_discovery"
	ThemeServiceFocus       = "service_focus"
	ThemeBiblicalProsperity = "biblical_prosperity"
	ThemeFaithOverFear      = "faith_over_fear"
	ThemeStewardship        = "stewardship"
	ThemeServiceOrientation = "service_orientation"
	ThemeKingdomImpact      = "kingdom_impact"
	ThemeIntegrity          = "integrity"
	ThemeWisdomApplication  = "wisdom_application"
)

// titleThemeKeywords and contentThemeKeywords map detection keywords to
// theme names, checked against the session title and reading text.
var titleThemeKeywords = []struct {
	keywords []string
	theme    string
}{
	{[]string{"gift", "good"}, ThemeDivinePurpose},
	{[]string{"why", "purpose"}, ThemeCallingDiscovery},
	{[]string{"customer", "market"}, ThemeServiceFocus},
	{[]string{"money", "profit"}, ThemeBiblicalProsperity},
	{[]string{"fear", "courage"}, ThemeFaithOverFear},
}

var contentThemeKeywords = []struct {
	keywords []string
	theme    string
}{
	{[]string{"steward", "faithful"}, ThemeStewardship},
	{[]string{"serve", "others"}, ThemeServiceOrientation},
	{[]string{"kingdom", "ministry"}, ThemeKingdomImpact},
	{[]string{"integrity", "honesty"}, ThemeIntegrity},
}

// ExtractThemes derives content themes from a session's title, reading text,
// and scripture reference. Duplicates are removed; order follows detection
// order. May return nil.
func ExtractThemes(title string, content *models.SessionContent) []string {
	seen := make(map[string]bool)
	var themes []string
	add := func(theme string) {
		if !seen[theme] {
			seen[theme] = true
			themes = append(themes, theme)
		}
	}

	lowerTitle := strings.ToLower(title)
	for _, tk := range titleThemeKeywords {
		if containsAny(lowerTitle, tk.keywords) {
			add(tk.theme)
		}
	}

	if content == nil {
		return themes
	}

	lowerReading := strings.ToLower(content.Reading)
	for _, ck := range contentThemeKeywords {
		if containsAny(lowerReading, ck.keywords) {
			add(ck.theme)
		}
	}

	if content.Scripture != nil {
		ref := strings.ToLower(content.Scripture.Reference)
		if strings.Contains(ref, "matthew 25") || strings.Contains(ref, "talents") {
			add(ThemeStewardship)
		}
		if strings.Contains(ref, "proverbs") {
			add(ThemeWisdomApplication)
		}
	}

	return themes
}

func startsWithNumberedItem(line string) bool {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	return i > 0 && i < len(line) && line[i] == '.'
}
