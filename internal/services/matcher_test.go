package services

import (
	"reflect"
	"testing"
)

func TestParseSkillsEmpty(t *testing.T) {
	m := NewMatcherService()

	if got := m.ParseSkills(""); len(got) != 0 {
		t.Errorf("expected no tokens for empty input, got %v", got)
	}
	if got := m.ParseSkills("   \n "); len(got) != 0 {
		t.Errorf("expected no tokens for blank input, got %v", got)
	}
}

func TestParseSkillsDelimiterElection(t *testing.T) {
	m := NewMatcherService()
	want := []string{"python", "django", "javascript"}

	tests := []struct {
		name  string
		input string
	}{
		{"comma", "Python, Django, JavaScript"},
		{"semicolon", "Python; Django; JavaScript"},
		{"newline", "Python\nDjango\nJavaScript"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.ParseSkills(tt.input)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("ParseSkills(%q) = %v, want %v", tt.input, got, want)
			}
		})
	}
}

func TestParseSkillsDefaultsToComma(t *testing.T) {
	m := NewMatcherService()

	// One semicolon inside a token must not beat the comma default.
	got := m.ParseSkills("python, c; sharp, django")
	want := []string{"python", "c; sharp", "django"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSkills = %v, want %v", got, want)
	}
}

func TestParseSkillsTieFallsBackToComma(t *testing.T) {
	m := NewMatcherService()

	// Two semicolons and two newlines tie above zero commas: no delimiter
	// strictly wins, so the comma default applies and the text stays one token.
	got := m.ParseSkills("a;b\nc;d\ne")
	want := []string{"a;b\nc;d\ne"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSkills = %v, want %v", got, want)
	}
}

func TestSkillMatches(t *testing.T) {
	m := NewMatcherService()

	tests := []struct {
		name           string
		jobSkill       string
		employeeSkills []string
		want           bool
	}{
		{"exact case-insensitive", "Python", []string{"python"}, true},
		{"synonym table", "JavaScript", []string{"js"}, true},
		{"synonym reversed", "aws", []string{"amazon web services"}, true},
		{"kubernetes alias", "Kubernetes", []string{"k8s"}, true},
		{"no match", "java", []string{"python", "django"}, false},
		{"substring containment", "React", []string{"reactjs"}, true},
		{"short substring guarded", "sql", []string{"mysql"}, false},
		{"empty job skill", "", []string{"python"}, false},
		{"empty employee skills", "python", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.SkillMatches(tt.jobSkill, tt.employeeSkills); got != tt.want {
				t.Errorf("SkillMatches(%q, %v) = %v, want %v", tt.jobSkill, tt.employeeSkills, got, tt.want)
			}
		})
	}
}

func TestCalculateMatchScoreEmptyProfile(t *testing.T) {
	m := NewMatcherService()

	result := m.CalculateMatchScore("", "Python, Django", "", "", "")
	if result.Score != 15.0 {
		t.Errorf("expected baseline score 15.0, got %v", result.Score)
	}
	if len(result.MatchedSkills) != 0 {
		t.Errorf("expected no matched skills, got %v", result.MatchedSkills)
	}
	if want := []string{"python", "django"}; !reflect.DeepEqual(result.MissingSkills, want) {
		t.Errorf("expected missing %v, got %v", want, result.MissingSkills)
	}
}

func TestCalculateMatchScoreOpenJob(t *testing.T) {
	m := NewMatcherService()

	result := m.CalculateMatchScore("Python, Django", "", "", "", "")
	if result.Score != 50.0 {
		t.Errorf("expected neutral score 50.0, got %v", result.Score)
	}
	if want := []string{"python", "django"}; !reflect.DeepEqual(result.MatchedSkills, want) {
		t.Errorf("expected matched %v, got %v", want, result.MatchedSkills)
	}
	if len(result.MissingSkills) != 0 {
		t.Errorf("expected no missing skills, got %v", result.MissingSkills)
	}
}

func TestCalculateMatchScorePerfectWithContract(t *testing.T) {
	m := NewMatcherService()

	result := m.CalculateMatchScore("Python, Django, React, AWS", "Python, Django", "React, AWS", "FT", "FT")
	if result.Score != 100.0 {
		t.Errorf("expected 100.0, got %v", result.Score)
	}
	if want := []string{"python", "django", "react", "aws"}; !reflect.DeepEqual(result.MatchedSkills, want) {
		t.Errorf("expected matched %v, got %v", want, result.MatchedSkills)
	}
	if len(result.MissingSkills) != 0 {
		t.Errorf("expected no missing skills, got %v", result.MissingSkills)
	}
	if !result.ContractMatch {
		t.Error("expected contract match")
	}
}

func TestCalculateMatchScoreSynonymsNoContract(t *testing.T) {
	m := NewMatcherService()

	result := m.CalculateMatchScore("js, reactjs, aws", "JavaScript, React, Amazon Web Services", "", "", "")
	if result.Score != 90.0 {
		t.Errorf("expected 90.0 (full required weight, no bonus), got %v", result.Score)
	}
	if len(result.MatchedSkills) != 3 {
		t.Errorf("expected 3 matched skills, got %v", result.MatchedSkills)
	}
	if len(result.MissingSkills) != 0 {
		t.Errorf("expected no missing skills, got %v", result.MissingSkills)
	}
	if result.ContractMatch {
		t.Error("expected no contract match")
	}
}

func TestCalculateMatchScorePartialRequired(t *testing.T) {
	m := NewMatcherService()

	result := m.CalculateMatchScore("python", "Python, Java", "", "", "")
	if result.Score != 45.0 {
		t.Errorf("expected 45.0 for half of required matched, got %v", result.Score)
	}
	if want := []string{"python"}; !reflect.DeepEqual(result.MatchedSkills, want) {
		t.Errorf("expected matched %v, got %v", want, result.MatchedSkills)
	}
	if want := []string{"java"}; !reflect.DeepEqual(result.MissingSkills, want) {
		t.Errorf("expected missing %v, got %v", want, result.MissingSkills)
	}
}

func TestCalculateMatchScorePreferredOnly(t *testing.T) {
	m := NewMatcherService()

	// With no required tier the preferred tier carries full weight.
	result := m.CalculateMatchScore("python", "", "Python, Java", "", "")
	if result.Score != 45.0 {
		t.Errorf("expected 45.0, got %v", result.Score)
	}
	if want := []string{"python"}; !reflect.DeepEqual(result.MatchedSkills, want) {
		t.Errorf("expected matched %v, got %v", want, result.MatchedSkills)
	}
	if len(result.MissingSkills) != 0 {
		t.Errorf("missing skills track the required tier only, got %v", result.MissingSkills)
	}
}

func TestCalculateMatchScoreContractMismatch(t *testing.T) {
	m := NewMatcherService()

	result := m.CalculateMatchScore("Python, Django", "Python, Django", "", "PT", "FT")
	if result.Score != 90.0 {
		t.Errorf("expected 90.0 without bonus, got %v", result.Score)
	}
	if result.ContractMatch {
		t.Error("expected no contract match for PT vs FT")
	}
}

func TestCalculateMatchScoreDeterministic(t *testing.T) {
	m := NewMatcherService()

	first := m.CalculateMatchScore("python; go; docker", "Golang, Docker", "Kubernetes", "FT", "PT")
	second := m.CalculateMatchScore("python; go; docker", "Golang, Docker", "Kubernetes", "FT", "PT")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same inputs produced different results: %v vs %v", first, second)
	}
}
