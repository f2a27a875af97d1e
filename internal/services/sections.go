package services

import "strings"

// sectionKind identifies a named CV section. Heading detection is a
// case-insensitive substring scan against the synonym set of each kind; a
// heading of any other kind terminates the section being collected.
type sectionKind int

const (
	sectionSkills sectionKind = iota
	sectionEducation
	sectionExperience
	sectionLanguages
	sectionInterests
)

var sectionOrder = []sectionKind{
	sectionSkills,
	sectionEducation,
	sectionExperience,
	sectionLanguages,
	sectionInterests,
}

var sectionHeadings = map[sectionKind][]string{
	sectionSkills: {
		"technical skills", "core competencies", "skills",
		"competencies", "technologies", "expertise",
	},
	sectionEducation: {
		"education", "academic background", "qualifications", "studies",
	},
	sectionExperience: {
		"work experience", "professional experience", "experience",
		"work history", "employment", "career",
	},
	sectionLanguages: {
		"language skills", "languages",
	},
	sectionInterests: {
		"personal interests", "interests", "hobbies", "activities",
	},
}

// Bullet glyphs and separators recognized inside a section line, in priority
// order. The first delimiter present in the line wins; a line without any
// delimiter is one item.
var sectionDelimiters = []string{
	",", "•", "·", "○", "●", "■", "▪", "▫", "□", "➢", "►", "»", "|", ";",
}

// headingKind classifies a line as a section heading. Lines longer than four
// words are body text, not headings. When more than one synonym matches, the
// longest match wins ("language skills" beats "skills").
func headingKind(line string) (sectionKind, bool) {
	lower := strings.ToLower(strings.TrimSpace(line))
	if lower == "" || len(strings.Fields(lower)) > 4 {
		return 0, false
	}

	best := sectionKind(0)
	bestLen := 0
	for _, kind := range sectionOrder {
		for _, name := range sectionHeadings[kind] {
			if strings.Contains(lower, name) && len(name) > bestLen {
				best = kind
				bestLen = len(name)
			}
		}
	}

	if bestLen == 0 {
		return 0, false
	}
	return best, true
}

// sectionLines collects the non-empty lines under every heading of the given
// kind, stopping each run at the next heading of a different kind.
func sectionLines(text string, kind sectionKind) []string {
	var collected []string
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if k, ok := headingKind(trimmed); ok {
			inSection = k == kind
			continue
		}

		if inSection {
			collected = append(collected, trimmed)
		}
	}

	return collected
}

// splitSectionLine splits a collected line on the first delimiter present,
// else returns the whole line as a single item. Empty fragments are dropped.
func splitSectionLine(line string) []string {
	for _, delim := range sectionDelimiters {
		if strings.Contains(line, delim) {
			var items []string
			for _, part := range strings.Split(line, delim) {
				part = strings.TrimSpace(part)
				if part != "" {
					items = append(items, part)
				}
			}
			return items
		}
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	return []string{line}
}

// containsTerm reports whether term occurs in lower-cased text with
// non-word characters (or the text boundary) on both sides. This keeps short
// vocabulary terms from matching inside longer words.
func containsTerm(lower, term string) bool {
	start := 0
	for {
		i := strings.Index(lower[start:], term)
		if i < 0 {
			return false
		}

		from := start + i
		to := from + len(term)

		beforeOK := from == 0 || !isWordByte(lower[from-1])
		afterOK := to == len(lower) || !isWordByte(lower[to])
		if beforeOK && afterOK {
			return true
		}

		start = from + 1
	}
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
