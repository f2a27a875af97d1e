package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/jdkato/prose/v2"

	"jobboard/internal/models"
)

type CvParserService interface {
	ParseCv(data []byte) *models.CvRecord
	ParseText(text string) *models.CvRecord
	ExtractName(text string) *string
	ExtractEmail(text string) *string
	ExtractPhone(text string) *string
	ExtractEducation(text string) []string
	ExtractExperience(text string) []string
	ExtractSkills(text string) []string
	ExtractLanguages(text string) []string
	ExtractInterests(text string) []string
}

type cvParserService struct {
	pdf PDFService
}

func NewCvParserService(pdf PDFService) CvParserService {
	return &cvParserService{pdf: pdf}
}

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Loose phone pattern. It stops at punctuation such as hyphens, so a
	// hyphenated international number yields only its leading segment. Stored
	// profiles rely on that exact behavior, so the pattern stays as is.
	phoneRe = regexp.MustCompile(`\+?[0-9][0-9 ()]{6,}[0-9]`)

	fluencyRe      = regexp.MustCompile(`(?i)\b(?:fluent in|native speaker of|native in|proficient in|bilingual in)\s+([a-zA-Z]+)`)
	cefrRe         = regexp.MustCompile(`(?i)\b([a-z]+)[\s:(-]+([abc][12])\b`)
	interestedInRe = regexp.MustCompile(`(?i)\binterested in\s+([^.,\n;!?]{1,80})`)

	// Drops rating artifacts such as "java - 2020" picked up from skill
	// tables that pair a name with a year or level number.
	ratingArtifactRe = regexp.MustCompile(`^[a-z][a-z+#. ]*\s*-\s*[0-9]+$`)
)

var educationKeywords = []string{
	"bachelor", "master", "phd", "university", "college", "degree",
	"diploma", "gpa",
}

var experienceKeywords = []string{
	"experience", "internship", "company", "employed", "worked", "position",
}

var strayLeadWords = map[string]bool{
	"and": true, "or": true, "with": true, "in": true, "of": true,
	"for": true, "to": true, "the": true, "a": true, "an": true,
	"on": true, "at": true, "by": true, "from": true,
}

// How much of the document head the named-entity pass reads. Names sit at
// the top of a CV; scanning the whole text only slows the model down.
const nameScanLimit = 1500

// ParseCv runs the whole extraction pipeline on a raw document. Extraction
// failures degrade to an empty record; this never returns an error.
func (s *cvParserService) ParseCv(data []byte) *models.CvRecord {
	return s.ParseText(s.pdf.ExtractText(data))
}

// ParseText runs every field extractor against one extracted text. The
// extractors are independent of each other; the order here carries no
// meaning.
func (s *cvParserService) ParseText(text string) *models.CvRecord {
	return &models.CvRecord{
		Name:       s.ExtractName(text),
		Email:      s.ExtractEmail(text),
		Phone:      s.ExtractPhone(text),
		Education:  s.ExtractEducation(text),
		Experience: s.ExtractExperience(text),
		Skills:     s.ExtractSkills(text),
		Languages:  s.ExtractLanguages(text),
		Interests:  s.ExtractInterests(text),
	}
}

// ExtractName returns the first entity the NLP model tags as a person, or
// nil when none is found.
func (s *cvParserService) ExtractName(text string) *string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	head := text
	if runes := []rune(head); len(runes) > nameScanLimit {
		head = string(runes[:nameScanLimit])
	}

	doc, err := prose.NewDocument(head)
	if err != nil {
		return nil
	}

	for _, ent := range doc.Entities() {
		if ent.Label != "PERSON" {
			continue
		}
		name := strings.TrimSpace(ent.Text)
		if name != "" {
			return &name
		}
	}

	return nil
}

func (s *cvParserService) ExtractEmail(text string) *string {
	if match := emailRe.FindString(text); match != "" {
		return &match
	}
	return nil
}

func (s *cvParserService) ExtractPhone(text string) *string {
	if match := phoneRe.FindString(text); match != "" {
		match = strings.TrimSpace(match)
		return &match
	}
	return nil
}

// ExtractEducation collects, verbatim and in order, every line containing an
// education keyword. Duplicates are kept.
func (s *cvParserService) ExtractEducation(text string) []string {
	return lineKeywordScan(text, educationKeywords)
}

// ExtractExperience collects, verbatim and in order, every line containing a
// work-history keyword. Duplicates are kept.
func (s *cvParserService) ExtractExperience(text string) []string {
	return lineKeywordScan(text, experienceKeywords)
}

// ExtractSkills merges section-scoped items with a full-text vocabulary scan,
// filters out fragments that are not plausible skills, and returns the
// deduplicated result sorted.
func (s *cvParserService) ExtractSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	found := make(map[string]struct{})

	for _, line := range sectionLines(text, sectionSkills) {
		for _, item := range splitSectionLine(line) {
			item = strings.ToLower(item)
			if validFragment(item) {
				found[item] = struct{}{}
			}
		}
	}

	lower := strings.ToLower(text)
	for _, term := range skillsVocabulary {
		if containsTerm(lower, term) {
			found[term] = struct{}{}
		}
	}
	for _, term := range contextSkills {
		if containsTerm(lower, term) {
			found[term] = struct{}{}
		}
	}

	return sortedSet(found)
}

// ExtractLanguages merges section-scoped items (keeping proficiency
// annotations such as "english (fluent)") with full-text scans for language
// names, fluency phrases and CEFR levels. When nothing is found and the text
// itself reads as English, "english" is asserted.
func (s *cvParserService) ExtractLanguages(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	found := make(map[string]struct{})

	for _, line := range sectionLines(text, sectionLanguages) {
		for _, item := range splitSectionLine(line) {
			if v := languageItem(item); v != "" {
				found[v] = struct{}{}
			}
		}
	}

	lower := strings.ToLower(text)
	for _, lang := range languagesVocabulary {
		if containsTerm(lower, lang) {
			found[lang] = struct{}{}
		}
	}

	for _, m := range fluencyRe.FindAllStringSubmatch(text, -1) {
		lang := strings.ToLower(m[1])
		if isKnownLanguage(lang) {
			found[lang] = struct{}{}
		}
	}

	for _, m := range cefrRe.FindAllStringSubmatch(text, -1) {
		lang := strings.ToLower(m[1])
		if isKnownLanguage(lang) {
			found[lang+" ("+strings.ToLower(m[2])+")"] = struct{}{}
		}
	}

	if len(found) == 0 && whatlanggo.Detect(text).Lang == whatlanggo.Eng {
		found["english"] = struct{}{}
	}

	return sortedSet(found)
}

// ExtractInterests merges section-scoped items, a full-text vocabulary scan
// and short "interested in ..." trailing phrases, under the same fragment
// filters as ExtractSkills.
func (s *cvParserService) ExtractInterests(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	found := make(map[string]struct{})

	for _, line := range sectionLines(text, sectionInterests) {
		for _, item := range splitSectionLine(line) {
			item = strings.ToLower(item)
			if validFragment(item) {
				found[item] = struct{}{}
			}
		}
	}

	lower := strings.ToLower(text)
	for _, term := range interestsVocabulary {
		if containsTerm(lower, term) {
			found[term] = struct{}{}
		}
	}

	for _, m := range interestedInRe.FindAllStringSubmatch(text, -1) {
		phrase := strings.ToLower(strings.TrimSpace(m[1]))
		words := strings.Fields(phrase)
		if len(words) > 7 {
			words = words[:7]
		}
		candidate := strings.Join(words, " ")
		if validFragment(candidate) {
			found[candidate] = struct{}{}
		}
	}

	return sortedSet(found)
}

func lineKeywordScan(text string, keywords []string) []string {
	var collected []string

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		lower := strings.ToLower(trimmed)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				collected = append(collected, trimmed)
				break
			}
		}
	}

	return collected
}

// validFragment decides whether a lowercased section item is a plausible
// skill or interest: at most four words, no stray leading conjunction, no
// list markers, not a bare section heading, not a rating artifact.
func validFragment(item string) bool {
	item = strings.TrimSpace(item)
	if item == "" {
		return false
	}

	words := strings.Fields(item)
	if len(words) > 4 {
		return false
	}
	if strayLeadWords[words[0]] {
		return false
	}

	if strings.Contains(item, "including") || strings.Contains(item, "such as") {
		return false
	}
	if containsTerm(item, "like") || containsTerm(item, "etc") {
		return false
	}

	if isHeadingName(item) {
		return false
	}

	return !ratingArtifactRe.MatchString(item)
}

func isHeadingName(item string) bool {
	for _, kind := range sectionOrder {
		for _, name := range sectionHeadings[kind] {
			if item == name {
				return true
			}
		}
	}
	return false
}

// languageItem normalizes one language-section item, preserving proficiency
// annotations attached with ":", "-" or "(...)". Returns "" for items that
// do not look like a language entry.
func languageItem(item string) string {
	lower := strings.ToLower(strings.TrimSpace(item))
	if lower == "" {
		return ""
	}

	sep := -1
	for _, s := range []string{":", "-", "("} {
		if i := strings.Index(lower, s); i >= 0 && (sep == -1 || i < sep) {
			sep = i
		}
	}

	name := lower
	annotation := ""
	if sep >= 0 {
		name = strings.TrimSpace(lower[:sep])
		annotation = strings.Trim(lower[sep:], " :-()")
	}

	if name == "" || len(strings.Fields(name)) > 2 {
		return ""
	}

	if annotation != "" {
		return name + " (" + annotation + ")"
	}
	return name
}

func isKnownLanguage(name string) bool {
	for _, lang := range languagesVocabulary {
		if lang == name {
			return true
		}
	}
	return false
}

func sortedSet(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}

	items := make([]string, 0, len(set))
	for item := range set {
		items = append(items, item)
	}
	sort.Strings(items)

	return items
}
