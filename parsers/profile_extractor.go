package parsers

import (
	"fmt"
	"regexp"
	"strings"

	"careercompass/models"
)

// Sentinel values returned when an extraction step finds no candidates.
const (
	NameNotFound       = "Name not found"
	ExperienceNotFound = "Experience details not found"
	ExperienceEmpty    = "Experience not specified"
	SkillsNotFound     = "Skills not found"
	JobTitlesNotFound  = "Job titles not found"
)

const (
	maxSkills    = 15
	maxJobTitles = 2
)

// skillVocabulary maps a skill category to the regex matching its fixed
// vocabulary across the whole text. Categories are enumerable so tests can
// cover each one independently.
var skillVocabulary = []struct {
	Category string
	Pattern  string
}{
	{"languages", `(?i)\b(JavaScript|TypeScript|Python|Java|C\+\+|C#|Golang|Go|Ruby|PHP|Swift|Kotlin|Rust|Scala)\b`},
	{"frameworks", `(?i)\b(React|Angular|Vue|Node\.js|Express|Django|Flask|Spring|Rails|Laravel|Next\.js)\b`},
	{"databases", `(?i)\b(MySQL|PostgreSQL|MongoDB|Redis|Oracle|SQLite|Cassandra|DynamoDB|Elasticsearch|SQL)\b`},
	{"cloud", `(?i)\b(AWS|Azure|GCP|Docker|Kubernetes|Terraform|Jenkins|Ansible|CI/CD|Linux|Git)\b`},
	{"web", `(?i)\b(HTML|CSS|GraphQL|REST|Agile|Scrum|Microservices|Kafka|Machine Learning)\b`},
}

// jobTitlePatterns are the two title regex families: seniority-prefixed core
// titles and specialization-prefixed developer/engineer titles.
var jobTitlePatterns = []struct {
	Family  string
	Pattern string
}{
	{"seniority", `(?i)\b((?:Senior|Junior|Lead|Principal)\s+)?(Software Engineer|Developer|Programmer|Analyst|Manager|Director|Consultant|Designer|Architect)\b`},
	{"specialization", `(?i)\b(Full[\s-]?Stack|Frontend|Backend|DevOps|Data|Mobile|Web)\s+(Developer|Engineer)\b`},
}

// roleKeywords feed the approximate-positions fallback of experience
// extraction.
var roleKeywords = []string{
	"software engineer", "developer", "manager", "analyst", "consultant", "designer",
}

// skillStopwords are filler tokens that must never appear as skills.
var skillStopwords = map[string]bool{
	"and": true, "etc": true, "more": true,
}

// ProfileExtractor turns free-form resume text into a CandidateProfile using
// rule-based pattern matching. It is pure and safe for concurrent use.
type ProfileExtractor struct {
	nameLineRegex    *regexp.Regexp
	nameLabelRegex   *regexp.Regexp
	nameCapsRegex    *regexp.Regexp
	firstLineRegex   *regexp.Regexp
	yearsOfExpRegex  *regexp.Regexp
	expLabelRegex    *regexp.Regexp
	yearsInRegex     *regexp.Regexp
	roleCountRegexes []*regexp.Regexp
	skillRegexes     []*regexp.Regexp
	skillSectRegex   *regexp.Regexp
	skillSplitRegex  *regexp.Regexp
	skillLineRegex   *regexp.Regexp
	titleRegexes     []*regexp.Regexp
	dateRangeRegex   *regexp.Regexp
	capsRunRegex     *regexp.Regexp
}

// NewProfileExtractor compiles all extraction patterns once.
func NewProfileExtractor() *ProfileExtractor {
	e := &ProfileExtractor{
		nameLineRegex:   regexp.MustCompile(`(?m)^([A-Z][a-z]+ [A-Z][a-z]+)\s*$`),
		nameLabelRegex:  regexp.MustCompile(`(?i)name:\s*([a-zA-Z ]+)`),
		nameCapsRegex:   regexp.MustCompile(`(?m)^([A-Z][A-Z ]+[A-Z])\s*$`),
		firstLineRegex:  regexp.MustCompile(`^[A-Za-z ]{2,50}$`),
		yearsOfExpRegex: regexp.MustCompile(`(?i)\d+\+?\s*years?\s+of\s+experience`),
		expLabelRegex:   regexp.MustCompile(`(?im)^.*experience:(.*)$`),
		yearsInRegex:    regexp.MustCompile(`(?i)\d+\+?\s*years?\s+in`),
		skillSectRegex:  regexp.MustCompile(`(?is)skills[^:\n]*[:\n](.*?)(?:\n\s*\n|\n[A-Z][A-Z ]{2,}\n|$)`),
		skillSplitRegex: regexp.MustCompile(`[,/|;\n•\-+*]`),
		skillLineRegex:  regexp.MustCompile(`[,/|;]`),
		dateRangeRegex:  regexp.MustCompile(`(?i)(19|20)\d{2}\s*[-–]\s*((19|20)\d{2}|present)[^\n]*`),
		capsRunRegex:    regexp.MustCompile(`[A-Z][a-z]+(?: [A-Z][a-z]+)*`),
	}

	for _, kw := range roleKeywords {
		e.roleCountRegexes = append(e.roleCountRegexes, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(kw)))
	}
	for _, v := range skillVocabulary {
		e.skillRegexes = append(e.skillRegexes, regexp.MustCompile(v.Pattern))
	}
	for _, t := range jobTitlePatterns {
		e.titleRegexes = append(e.titleRegexes, regexp.MustCompile(t.Pattern))
	}

	return e
}

// Extract runs the four independent extraction steps against the full text.
// Every step degrades to its sentinel instead of failing, so a profile is
// always produced; empty or whitespace-only input yields all sentinels.
func (e *ProfileExtractor) Extract(text string) models.CandidateProfile {
	return models.CandidateProfile{
		Name:        e.extractName(text),
		Experience:  e.extractExperience(text),
		Skills:      e.extractSkills(text),
		LastTwoJobs: e.extractJobTitles(text),
	}
}

// nameStrategies returns the ordered name extraction cascade; the first
// strategy producing a match wins, with no scoring between candidates.
func (e *ProfileExtractor) nameStrategies() []func(string) (string, bool) {
	return []func(string) (string, bool){
		// Firstname Lastname anchored to a line start.
		func(text string) (string, bool) {
			m := e.nameLineRegex.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			return m[1], true
		},
		// "Name: ..." label, remainder of the line.
		func(text string) (string, bool) {
			m := e.nameLabelRegex.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			return strings.TrimSpace(m[1]), true
		},
		// All-caps name on its own line.
		func(text string) (string, bool) {
			m := e.nameCapsRegex.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			return strings.TrimSpace(m[1]), true
		},
		// First line verbatim when it is plausibly a name.
		func(text string) (string, bool) {
			first := strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
			if e.firstLineRegex.MatchString(first) {
				return first, true
			}
			return "", false
		},
	}
}

func (e *ProfileExtractor) extractName(text string) string {
	for _, strategy := range e.nameStrategies() {
		if name, ok := strategy(text); ok && name != "" {
			return name
		}
	}
	return NameNotFound
}

func (e *ProfileExtractor) extractExperience(text string) string {
	if m := e.yearsOfExpRegex.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}

	if m := e.expLabelRegex.FindStringSubmatch(text); m != nil {
		rest := strings.TrimSpace(m[1])
		if rest == "" {
			return ExperienceEmpty
		}
		return rest
	}

	if m := e.yearsInRegex.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}

	// Fallback: count mentions of common role keywords across the text.
	count := 0
	for _, re := range e.roleCountRegexes {
		count += len(re.FindAllString(text, -1))
	}
	if count > 0 {
		return fmt.Sprintf("Approximately %d relevant positions found", count)
	}

	return ExperienceNotFound
}

func (e *ProfileExtractor) extractSkills(text string) []string {
	found := newOrderedSet()

	// Source 1: fixed vocabulary matched across the whole text. Matches are
	// kept as they appear in the text; the set absorbs repeats.
	for _, re := range e.skillRegexes {
		for _, m := range re.FindAllString(text, -1) {
			found.Add(m)
		}
	}

	// Source 2: a labeled skills section up to the next blank line or
	// capitalized section header, split on common delimiters.
	if m := e.skillSectRegex.FindStringSubmatch(text); m != nil {
		for _, token := range e.skillSplitRegex.Split(m[1], -1) {
			if s, ok := cleanSkillToken(token); ok {
				found.Add(s)
			}
		}
	}

	// Source 3: line scan that follows the skills section through bullet
	// lists until another section starts.
	inSkills := false
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if inSkills {
			if strings.Contains(lower, "experience") || strings.Contains(lower, "education") || strings.Contains(lower, "work") {
				inSkills = false
				continue
			}
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			trimmed = strings.TrimLeft(trimmed, "•◦-*+ \t")
			for _, token := range e.skillLineRegex.Split(trimmed, -1) {
				if s, ok := cleanSkillToken(token); ok {
					found.Add(s)
				}
			}
			continue
		}
		if strings.Contains(lower, "skills") || strings.Contains(lower, "technologies") {
			inSkills = true
		}
	}

	skills := found.Values(maxSkills)
	if len(skills) == 0 {
		return []string{SkillsNotFound}
	}
	return skills
}

// cleanSkillToken trims a candidate skill token and applies the shared
// length and stopword filter.
func cleanSkillToken(token string) (string, bool) {
	s := strings.TrimSpace(token)
	if len(s) <= 2 || len(s) >= 50 {
		return "", false
	}
	if skillStopwords[strings.ToLower(s)] {
		return "", false
	}
	return s, true
}

func (e *ProfileExtractor) extractJobTitles(text string) []string {
	found := newOrderedSet()

	// Title regex families over the whole text.
	for _, re := range e.titleRegexes {
		for _, m := range re.FindAllString(text, -1) {
			found.Add(strings.TrimSpace(m))
		}
	}

	// Date-range heuristic: a YYYY-YYYY or YYYY-present span with trailing
	// text often carries the title nearby. Capitalized-word runs in that
	// span become candidates. This deliberately over-captures; it is a
	// best-effort fallback, not a precise match.
	for _, m := range e.dateRangeRegex.FindAllString(text, -1) {
		for _, run := range e.capsRunRegex.FindAllString(m, -1) {
			if len(run) >= 6 && len(run) < 50 {
				found.Add(run)
			}
		}
	}

	titles := found.Values(maxJobTitles)
	if len(titles) == 0 {
		return []string{JobTitlesNotFound}
	}
	return titles
}
