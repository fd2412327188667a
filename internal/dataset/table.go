package dataset

import (
	"time"

	"skill-insight/internal/domain/posting"
	"skill-insight/internal/domain/roadmap"
	"skill-insight/internal/domain/trend"
)

// Table is the read-only posting table shared by every view. It is built once
// per process and must not be mutated after Load returns.
type Table struct {
	Source      string
	Fingerprint string
	LoadedAt    time.Time
	Postings    []posting.Posting
}

type Summary struct {
	Source         string     `json:"source"`
	Fingerprint    string     `json:"fingerprint"`
	Postings       int        `json:"postings"`
	SkillTokens    int        `json:"skill_tokens"`
	DistinctSkills int        `json:"distinct_skills"`
	DistinctRoles  int        `json:"distinct_roles"`
	FirstPosted    *time.Time `json:"first_posted,omitempty"`
	LastPosted     *time.Time `json:"last_posted,omitempty"`
}

func NewTable(source, fingerprint string, postings []posting.Posting) *Table {
	return &Table{
		Source:      source,
		Fingerprint: fingerprint,
		LoadedAt:    time.Now().UTC(),
		Postings:    postings,
	}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Postings)
}

func (t *Table) Summary() Summary {
	s := Summary{
		Source:         t.Source,
		Fingerprint:    t.Fingerprint,
		Postings:       len(t.Postings),
		DistinctSkills: len(trend.Skills(t.Postings)),
		DistinctRoles:  len(roadmap.Roles(t.Postings)),
	}

	var first, last time.Time
	for i, p := range t.Postings {
		s.SkillTokens += len(p.SkillList)
		if i == 0 || p.PostingDate.Before(first) {
			first = p.PostingDate
		}
		if i == 0 || p.PostingDate.After(last) {
			last = p.PostingDate
		}
	}
	if len(t.Postings) > 0 {
		s.FirstPosted = &first
		s.LastPosted = &last
	}
	return s
}
