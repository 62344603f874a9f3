package parsers

import (
	"reflect"
	"strings"
	"testing"
)

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func containsFold(list []string, want string) bool {
	for _, s := range list {
		if strings.Contains(strings.ToLower(s), strings.ToLower(want)) {
			return true
		}
	}
	return false
}

func TestProfileExtractor_Basic(t *testing.T) {
	extractor := NewProfileExtractor()

	text := "John Smith\n5 years of experience in backend\nSkills: Python, AWS, Docker\nSenior Software Engineer 2019-2022"
	profile := extractor.Extract(text)

	if profile.Name != "John Smith" {
		t.Errorf("Expected name 'John Smith', got '%s'", profile.Name)
	}

	if !strings.Contains(profile.Experience, "5 years of experience") {
		t.Errorf("Expected experience to contain '5 years of experience', got '%s'", profile.Experience)
	}

	for _, skill := range []string{"Python", "AWS", "Docker"} {
		if !containsString(profile.Skills, skill) {
			t.Errorf("Expected skills to include '%s', got %v", skill, profile.Skills)
		}
	}

	if !containsFold(profile.LastTwoJobs, "software engineer") {
		t.Errorf("Expected a software engineer title in %v", profile.LastTwoJobs)
	}
}

func TestProfileExtractor_NoRecognizablePatterns(t *testing.T) {
	extractor := NewProfileExtractor()

	profile := extractor.Extract("xyz 123 !!! qqq")

	if profile.Name != NameNotFound {
		t.Errorf("Expected name sentinel, got '%s'", profile.Name)
	}
	if profile.Experience != ExperienceNotFound {
		t.Errorf("Expected experience sentinel, got '%s'", profile.Experience)
	}
	if !reflect.DeepEqual(profile.Skills, []string{SkillsNotFound}) {
		t.Errorf("Expected skills sentinel, got %v", profile.Skills)
	}
	if !reflect.DeepEqual(profile.LastTwoJobs, []string{JobTitlesNotFound}) {
		t.Errorf("Expected job titles sentinel, got %v", profile.LastTwoJobs)
	}
}

func TestProfileExtractor_EmptyInput(t *testing.T) {
	extractor := NewProfileExtractor()

	for _, input := range []string{"", "   \n\t  \n"} {
		profile := extractor.Extract(input)

		if profile.Name != NameNotFound {
			t.Errorf("Expected name sentinel for %q, got '%s'", input, profile.Name)
		}
		if profile.Experience != ExperienceNotFound {
			t.Errorf("Expected experience sentinel for %q, got '%s'", input, profile.Experience)
		}
	}
}

func TestProfileExtractor_LengthBounds(t *testing.T) {
	extractor := NewProfileExtractor()

	// A resume dense enough to overflow both caps.
	text := `Jane Doe
Skills: JavaScript, TypeScript, Python, Java, Ruby, PHP, Swift, Kotlin, Rust, Scala, React, Angular, Vue, Django, Flask, MySQL, PostgreSQL, MongoDB, Redis, AWS, Azure, Docker, Kubernetes
Senior Software Engineer 2020-2022
Lead Developer 2018-2020
Junior Analyst 2016-2018`

	profile := extractor.Extract(text)

	if len(profile.Skills) > 15 {
		t.Errorf("Skills should be capped at 15, got %d", len(profile.Skills))
	}
	if len(profile.LastTwoJobs) > 2 {
		t.Errorf("LastTwoJobs should be capped at 2, got %d", len(profile.LastTwoJobs))
	}
}

func TestProfileExtractor_Idempotent(t *testing.T) {
	extractor := NewProfileExtractor()

	text := "John Smith\n5 years of experience in backend\nSkills: Python, AWS, Docker\nSenior Software Engineer 2019-2022"
	first := extractor.Extract(text)
	second := extractor.Extract(text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract should be deterministic: %+v vs %+v", first, second)
	}
}

func TestProfileExtractor_AllCapsName(t *testing.T) {
	extractor := NewProfileExtractor()

	profile := extractor.Extract("ALICE JOHNSON\nworked on various things")

	if profile.Name != "ALICE JOHNSON" {
		t.Errorf("Expected 'ALICE JOHNSON', got '%s'", profile.Name)
	}
}

func TestProfileExtractor_NameLabel(t *testing.T) {
	extractor := NewProfileExtractor()

	profile := extractor.Extract("resume\nname: maria garcia\nother content")

	if profile.Name != "maria garcia" {
		t.Errorf("Expected 'maria garcia', got '%s'", profile.Name)
	}
}

func TestProfileExtractor_SkillsDelimiters(t *testing.T) {
	extractor := NewProfileExtractor()

	profile := extractor.Extract("Skills: JavaScript, React; Node.js | TypeScript")

	for _, skill := range []string{"JavaScript", "React", "Node.js", "TypeScript"} {
		if !containsString(profile.Skills, skill) {
			t.Errorf("Expected skills to include '%s', got %v", skill, profile.Skills)
		}
	}
	for _, skill := range profile.Skills {
		if strings.TrimSpace(skill) == "" {
			t.Errorf("Skills should not contain empty tokens, got %v", profile.Skills)
		}
	}
}

func TestProfileExtractor_SkillsStopwords(t *testing.T) {
	extractor := NewProfileExtractor()

	profile := extractor.Extract("Skills: Terraform, and, etc, more, Ansible")

	for _, stop := range []string{"and", "etc", "more"} {
		if containsString(profile.Skills, stop) {
			t.Errorf("Stopword '%s' should be filtered, got %v", stop, profile.Skills)
		}
	}
	if !containsString(profile.Skills, "Terraform") || !containsString(profile.Skills, "Ansible") {
		t.Errorf("Expected real skills to survive the filter, got %v", profile.Skills)
	}
}

func TestProfileExtractor_SkillsBulletSection(t *testing.T) {
	extractor := NewProfileExtractor()

	text := `Chris Evans

TECHNOLOGIES
• Kafka
• GraphQL
- Elasticsearch

EXPERIENCE
Built things`

	profile := extractor.Extract(text)

	for _, skill := range []string{"Kafka", "GraphQL", "Elasticsearch"} {
		if !containsString(profile.Skills, skill) {
			t.Errorf("Expected skills to include '%s', got %v", skill, profile.Skills)
		}
	}
}

func TestProfileExtractor_SkillCategories(t *testing.T) {
	extractor := NewProfileExtractor()

	// One representative per vocabulary category.
	samples := map[string]string{
		"languages":  "I write Python daily",
		"frameworks": "mostly Django services",
		"databases":  "backed by PostgreSQL",
		"cloud":      "deployed with Kubernetes",
		"web":        "exposing GraphQL endpoints",
	}
	expected := map[string]string{
		"languages":  "Python",
		"frameworks": "Django",
		"databases":  "PostgreSQL",
		"cloud":      "Kubernetes",
		"web":        "GraphQL",
	}

	for category, text := range samples {
		profile := extractor.Extract(text)
		if !containsString(profile.Skills, expected[category]) {
			t.Errorf("Category '%s': expected '%s' in %v", category, expected[category], profile.Skills)
		}
	}
}

func TestProfileExtractor_ExperienceLabel(t *testing.T) {
	extractor := NewProfileExtractor()

	profile := extractor.Extract("Experience: built distributed systems at scale")

	if profile.Experience != "built distributed systems at scale" {
		t.Errorf("Expected label remainder, got '%s'", profile.Experience)
	}
}

func TestProfileExtractor_ExperienceKeywordFallback(t *testing.T) {
	extractor := NewProfileExtractor()

	profile := extractor.Extract("worked as a developer, then as a consultant, then as a manager")

	if !strings.HasPrefix(profile.Experience, "Approximately 3") {
		t.Errorf("Expected approximate count of 3 positions, got '%s'", profile.Experience)
	}
}

func TestProfileExtractor_JobTitleFamilies(t *testing.T) {
	extractor := NewProfileExtractor()

	tests := []struct {
		input string
		want  string
	}{
		{"was a Principal Architect for years", "Principal Architect"},
		{"hired as Full-Stack Developer", "Full-Stack Developer"},
		{"working as DevOps Engineer", "DevOps Engineer"},
	}

	for _, test := range tests {
		profile := extractor.Extract(test.input)
		if !containsString(profile.LastTwoJobs, test.want) {
			t.Errorf("Input '%s': expected title '%s', got %v", test.input, test.want, profile.LastTwoJobs)
		}
	}
}

func TestProfileExtractor_DateRangeHeuristic(t *testing.T) {
	extractor := NewProfileExtractor()

	profile := extractor.Extract("2019-2022 Platform Wrangler at Initech")

	if !containsString(profile.LastTwoJobs, "Platform Wrangler") {
		t.Errorf("Expected 'Platform Wrangler' from the date-range heuristic, got %v", profile.LastTwoJobs)
	}
}
