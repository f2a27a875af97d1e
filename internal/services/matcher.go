package services

import (
	"math"
	"strings"
)

// MatchResult is the outcome of scoring one employee against one job. It is
// built fresh per pair and never mutated afterwards.
type MatchResult struct {
	Score         float64
	MatchedSkills []string
	MissingSkills []string
	ContractMatch bool
}

type MatcherService interface {
	ParseSkills(text string) []string
	SkillMatches(jobSkill string, employeeSkills []string) bool
	CalculateMatchScore(employeeSkills, requiredSkills, preferredSkills, preferredContract, jobType string) MatchResult
}

type matcherService struct{}

func NewMatcherService() MatcherService {
	return &matcherService{}
}

// Score constants. The skill portion tops out at 90 so a perfect skill match
// still leaves headroom for the contract bonus.
const (
	emptyProfileScore = 15.0
	openJobScore      = 50.0
	skillScoreCap     = 90.0
	contractBonus     = 10.0
	requiredWeight    = 0.7
	preferredWeight   = 0.3
)

// ParseSkills splits free skill text into normalized tokens. The delimiter is
// whichever of comma, semicolon or newline occurs strictly more often than
// both others; comma is the default, ties included.
func (m *matcherService) ParseSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	commas := strings.Count(text, ",")
	semicolons := strings.Count(text, ";")
	newlines := strings.Count(text, "\n")

	delimiter := ","
	switch {
	case semicolons > commas && semicolons > newlines:
		delimiter = ";"
	case newlines > commas && newlines > semicolons:
		delimiter = "\n"
	}

	var tokens []string
	for _, part := range strings.Split(text, delimiter) {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	return tokens
}

// SkillMatches reports whether a job skill is covered by any employee skill:
// exact token equality, membership in the same synonym group, or substring
// containment in either direction when the shorter side is longer than three
// characters. Best effort, not semantic; substring false positives are an
// accepted tradeoff.
func (m *matcherService) SkillMatches(jobSkill string, employeeSkills []string) bool {
	job := strings.ToLower(strings.TrimSpace(jobSkill))
	if job == "" {
		return false
	}

	for _, emp := range employeeSkills {
		if emp == job {
			return true
		}
	}

	for _, variant := range synonymsOf(job) {
		for _, emp := range employeeSkills {
			if emp == variant {
				return true
			}
		}
	}

	for _, emp := range employeeSkills {
		shorter, longer := emp, job
		if len(shorter) > len(longer) {
			shorter, longer = longer, shorter
		}
		if len(shorter) > 3 && strings.Contains(longer, shorter) {
			return true
		}
	}

	return false
}

// CalculateMatchScore scores an employee's skill text against a job's
// required and preferred skill texts, weighting required 70/30 over preferred
// when both tiers exist. Pure and deterministic.
func (m *matcherService) CalculateMatchScore(employeeSkills, requiredSkills, preferredSkills, preferredContract, jobType string) MatchResult {
	employee := m.ParseSkills(employeeSkills)
	required := m.ParseSkills(requiredSkills)
	preferred := m.ParseSkills(preferredSkills)

	contractOK := preferredContract != "" && preferredContract == jobType

	// An empty profile is not disqualifying, just a low fixed baseline.
	if len(employee) == 0 {
		return MatchResult{
			Score:         emptyProfileScore,
			MissingSkills: required,
			ContractMatch: contractOK,
		}
	}

	// A job that asks for nothing is a neutral fit for anyone.
	if len(required) == 0 && len(preferred) == 0 {
		return MatchResult{
			Score:         openJobScore,
			MatchedSkills: employee,
			ContractMatch: contractOK,
		}
	}

	var matchedRequired, missingRequired []string
	for _, skill := range required {
		if m.SkillMatches(skill, employee) {
			matchedRequired = append(matchedRequired, skill)
		} else {
			missingRequired = append(missingRequired, skill)
		}
	}

	preferredMatchCount := 0
	var matchedPreferred []string
	for _, skill := range preferred {
		if !m.SkillMatches(skill, employee) {
			continue
		}
		preferredMatchCount++
		if !containsToken(matchedRequired, skill) {
			matchedPreferred = append(matchedPreferred, skill)
		}
	}

	// An absent tier never penalizes the candidate.
	requiredPct := 1.0
	if len(required) > 0 {
		requiredPct = float64(len(matchedRequired)) / float64(len(required))
	}
	preferredPct := 1.0
	if len(preferred) > 0 {
		preferredPct = float64(preferredMatchCount) / float64(len(preferred))
	}

	reqWeight, prefWeight := requiredWeight, preferredWeight
	switch {
	case len(required) == 0:
		reqWeight, prefWeight = 0, 1
	case len(preferred) == 0:
		reqWeight, prefWeight = 1, 0
	}

	score := (requiredPct*reqWeight + preferredPct*prefWeight) * skillScoreCap
	if contractOK {
		score += contractBonus
	}
	score = math.Round(math.Min(100, score)*10) / 10

	return MatchResult{
		Score:         score,
		MatchedSkills: append(matchedRequired, matchedPreferred...),
		MissingSkills: missingRequired,
		ContractMatch: contractOK,
	}
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}
