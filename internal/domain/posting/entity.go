package posting

import (
	"strings"
	"time"
)

type Posting struct {
	JobTitle       string
	PostingDate    time.Time
	RequiredSkills string
	SkillList      []string
}

func New(jobTitle string, postingDate time.Time, requiredSkills string) Posting {
	return Posting{
		JobTitle:       jobTitle,
		PostingDate:    postingDate,
		RequiredSkills: requiredSkills,
		SkillList:      ParseSkillList(requiredSkills),
	}
}

// ParseSkillList splits a comma-separated skill cell into trimmed, lowercased
// tokens. A cell without commas yields the whole value as a single token;
// empty tokens are dropped, so a blank cell has no skills.
func ParseSkillList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = NormalizeSkill(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseSkillSet normalizes free-text user input into a set of skills.
func ParseSkillSet(raw string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, s := range ParseSkillList(raw) {
		set[s] = struct{}{}
	}
	return set
}
