// ABOUTME: This file parses free-form model output into titled summary sections
// ABOUTME: Line-oriented heuristics; every input yields a usable result
package service

import (
	"regexp"
	"strings"

	"video-digest/domain"
)

// defaultSectionTitle collects points that arrive before any heading.
const defaultSectionTitle = "Основные тезисы"

var (
	tldrPrefixPattern    = regexp.MustCompile(`(?i)^(TL;DR|Кратко|Суть)[:\s]*`)
	headingNumberPattern = regexp.MustCompile(`^\d+\.`)
	headingStripPattern  = regexp.MustCompile(`^#+\s*|^\d+\.\s*`)
	bulletPattern        = regexp.MustCompile(`^[-*•]\s`)
	bulletStripPattern   = regexp.MustCompile(`^[-*•]\s*`)
)

// ParseGeneratedText converts raw model output into a structured summary.
// The parser is total: malformed or unstructured input degrades into a single
// default section instead of an error. Headings that never accumulate a point
// are dropped.
func ParseGeneratedText(response string) *domain.SummaryResult {
	var lines []string
	for _, line := range strings.Split(response, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	result := &domain.SummaryResult{
		Sections: []domain.SummarySection{},
	}

	var current *domain.SummarySection

	flush := func() {
		if current != nil && len(current.Points) > 0 {
			result.Sections = append(result.Sections, *current)
		}
	}

	for _, line := range lines {
		if isTLDRLine(line) {
			result.TLDR = strings.TrimSpace(tldrPrefixPattern.ReplaceAllString(line, ""))
			continue
		}

		if strings.HasPrefix(line, "#") || headingNumberPattern.MatchString(line) {
			flush()
			current = &domain.SummarySection{
				Title:  strings.TrimSpace(headingStripPattern.ReplaceAllString(line, "")),
				Points: []string{},
			}

			continue
		}

		if bulletPattern.MatchString(line) {
			point := strings.TrimSpace(bulletStripPattern.ReplaceAllString(line, ""))
			current = appendPoint(current, point)

			continue
		}

		// Plain prose lines count as points too.
		current = appendPoint(current, line)
	}

	flush()

	// No explicit TL;DR: promote the first point.
	if result.TLDR == "" && len(result.Sections) > 0 && len(result.Sections[0].Points) > 0 {
		result.TLDR = result.Sections[0].Points[0]
	}

	// Nothing matched the structure at all: keep every line as a point.
	if len(result.Sections) == 0 && len(lines) > 0 {
		result.Sections = append(result.Sections, domain.SummarySection{
			Title:  defaultSectionTitle,
			Points: lines,
		})
	}

	return result
}

func isTLDRLine(line string) bool {
	lower := strings.ToLower(line)

	return strings.HasPrefix(lower, "tl;dr") ||
		strings.HasPrefix(lower, "кратко") ||
		strings.HasPrefix(lower, "суть")
}

func appendPoint(current *domain.SummarySection, point string) *domain.SummarySection {
	if current == nil {
		return &domain.SummarySection{
			Title:  defaultSectionTitle,
			Points: []string{point},
		}
	}

	current.Points = append(current.Points, point)

	return current
}
