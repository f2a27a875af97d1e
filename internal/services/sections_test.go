package services

import (
	"reflect"
	"testing"
)

func TestHeadingKind(t *testing.T) {
	tests := []struct {
		line string
		kind sectionKind
		ok   bool
	}{
		{"SKILLS", sectionSkills, true},
		{"Technical Skills", sectionSkills, true},
		{"EDUCATION", sectionEducation, true},
		{"Work Experience", sectionExperience, true},
		{"Languages", sectionLanguages, true},
		{"LANGUAGE SKILLS", sectionLanguages, true}, // longest synonym wins over "skills"
		{"Hobbies", sectionInterests, true},
		{"", 0, false},
		{"I used my communication skills daily in a large team", 0, false}, // too long to be a heading
		{"Initech Corporation", 0, false},
	}

	for _, tt := range tests {
		kind, ok := headingKind(tt.line)
		if ok != tt.ok {
			t.Errorf("headingKind(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			continue
		}
		if ok && kind != tt.kind {
			t.Errorf("headingKind(%q) = %v, want %v", tt.line, kind, tt.kind)
		}
	}
}

func TestSectionLinesStopsAtNextHeading(t *testing.T) {
	text := "SKILLS\nPython\nDocker\nEDUCATION\nExample University"

	got := sectionLines(text, sectionSkills)
	want := []string{"Python", "Docker"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sectionLines = %v, want %v", got, want)
	}
}

func TestSectionLinesSkipsBlankLines(t *testing.T) {
	text := "SKILLS\n\nPython\n\nDocker\n"

	got := sectionLines(text, sectionSkills)
	want := []string{"Python", "Docker"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sectionLines = %v, want %v", got, want)
	}
}

func TestSectionLinesMissingSection(t *testing.T) {
	if got := sectionLines("just a paragraph of text", sectionSkills); len(got) != 0 {
		t.Errorf("expected no lines, got %v", got)
	}
}

func TestSplitSectionLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"Python, Django, Docker", []string{"Python", "Django", "Docker"}},
		{"Leadership • Communication", []string{"Leadership", "Communication"}},
		{"Go | Rust | Zig", []string{"Go", "Rust", "Zig"}},
		{"Plain line without delimiters", []string{"Plain line without delimiters"}},
		{"  ", nil},
	}

	for _, tt := range tests {
		got := splitSectionLine(tt.line)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitSectionLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestContainsTerm(t *testing.T) {
	tests := []struct {
		text string
		term string
		want bool
	}{
		{"worked with python daily", "python", true},
		{"javascript expert", "java", false}, // bounded: no match inside a longer word
		{"knows c++ and c#", "c++", true},
		{"shipped node.js services", "node.js", true},
		{"python", "python", true},
		{"", "python", false},
	}

	for _, tt := range tests {
		if got := containsTerm(tt.text, tt.term); got != tt.want {
			t.Errorf("containsTerm(%q, %q) = %v, want %v", tt.text, tt.term, got, tt.want)
		}
	}
}
