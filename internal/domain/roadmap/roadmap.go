package roadmap

import (
	"slices"

	"skill-insight/internal/domain/frequency"
	"skill-insight/internal/domain/posting"
)

const DefaultTopSkills = 10

type Result struct {
	TargetRole     string   `json:"target_role"`
	RequiredSkills []string `json:"required_skills"`
	UserSkills     []string `json:"user_skills"`
	Gap            []string `json:"gap"`
}

// Roles lists distinct job titles in order of first appearance.
func Roles(postings []posting.Posting) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range postings {
		if _, ok := seen[p.JobTitle]; ok {
			continue
		}
		seen[p.JobTitle] = struct{}{}
		out = append(out, p.JobTitle)
	}
	return out
}

// RoleSkills ranks the skills of postings whose title equals role and keeps
// the top n.
func RoleSkills(postings []posting.Posting, role string, n int) []string {
	filtered := make([]posting.Posting, 0)
	for _, p := range postings {
		if p.JobTitle == role {
			filtered = append(filtered, p)
		}
	}

	rows := frequency.Top(frequency.Count(filtered), n)
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Skill)
	}
	return out
}

// Generate computes the gap between the role's top skills and the user's
// comma-separated skills. The gap keeps the ranking of the required skills.
func Generate(postings []posting.Posting, role, userInput string, n int) Result {
	if n <= 0 {
		n = DefaultTopSkills
	}

	required := RoleSkills(postings, role, n)
	user := posting.ParseSkillSet(userInput)

	gap := make([]string, 0, len(required))
	for _, s := range required {
		if _, ok := user[s]; ok {
			continue
		}
		gap = append(gap, s)
	}

	userSkills := make([]string, 0, len(user))
	for s := range user {
		userSkills = append(userSkills, s)
	}
	slices.Sort(userSkills)

	return Result{
		TargetRole:     role,
		RequiredSkills: required,
		UserSkills:     userSkills,
		Gap:            gap,
	}
}
