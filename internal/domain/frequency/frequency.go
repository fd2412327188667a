package frequency

import (
	"slices"

	"skill-insight/internal/domain/posting"
)

type Row struct {
	Skill     string `json:"skill"`
	Frequency int    `json:"frequency"`
}

// Count flattens every posting's skill list and returns one row per distinct
// skill ordered by frequency descending. Ties keep first-occurrence order.
func Count(postings []posting.Posting) []Row {
	index := make(map[string]int)
	rows := make([]Row, 0)

	for _, p := range postings {
		for _, s := range p.SkillList {
			i, ok := index[s]
			if !ok {
				i = len(rows)
				index[s] = i
				rows = append(rows, Row{Skill: s})
			}
			rows[i].Frequency++
		}
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		return b.Frequency - a.Frequency
	})
	return rows
}

func Top(rows []Row, n int) []Row {
	if n < 0 {
		n = 0
	}
	if n > len(rows) {
		n = len(rows)
	}
	return rows[:n]
}

func Total(rows []Row) int {
	total := 0
	for _, r := range rows {
		total += r.Frequency
	}
	return total
}
