package trend

import (
	"slices"
	"strings"
	"time"

	"skill-insight/internal/domain/posting"
)

const monthLayout = "2006-01"

// YearMonth is a calendar month bucket, stored as the first instant of the month in UTC.
type YearMonth time.Time

// MonthOf buckets t by its own wall-clock month; a zone offset never moves a
// posting into the neighbouring month.
func MonthOf(t time.Time) YearMonth {
	return YearMonth(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC))
}

func (m YearMonth) String() string {
	return time.Time(m).Format(monthLayout)
}

func (m YearMonth) Before(o YearMonth) bool {
	return time.Time(m).Before(time.Time(o))
}

func (m YearMonth) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *YearMonth) UnmarshalText(b []byte) error {
	t, err := time.Parse(monthLayout, string(b))
	if err != nil {
		return err
	}
	*m = YearMonth(t)
	return nil
}

type MonthlySkillCount struct {
	YearMonth YearMonth `json:"year_month"`
	Skill     string    `json:"skill"`
	Count     int       `json:"count"`
}

type Point struct {
	YearMonth YearMonth `json:"year_month"`
	Count     int       `json:"count"`
}

type monthSkill struct {
	month YearMonth
	skill string
}

// MonthlyCounts explodes postings into one row per skill and counts each
// (month, skill) pair. Rows are ordered by month, then skill. Months without a
// posting for a skill produce no row.
func MonthlyCounts(postings []posting.Posting) []MonthlySkillCount {
	counts := make(map[monthSkill]int)
	for _, p := range postings {
		m := MonthOf(p.PostingDate)
		for _, s := range p.SkillList {
			counts[monthSkill{month: m, skill: s}]++
		}
	}

	out := make([]MonthlySkillCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, MonthlySkillCount{YearMonth: k.month, Skill: k.skill, Count: c})
	}
	slices.SortFunc(out, func(a, b MonthlySkillCount) int {
		if c := time.Time(a.YearMonth).Compare(time.Time(b.YearMonth)); c != 0 {
			return c
		}
		return strings.Compare(a.Skill, b.Skill)
	})
	return out
}

// Series filters monthly counts down to one skill in chronological order.
func Series(counts []MonthlySkillCount, skill string) []Point {
	skill = posting.NormalizeSkill(skill)
	out := make([]Point, 0)
	for _, c := range counts {
		if c.Skill != skill {
			continue
		}
		out = append(out, Point{YearMonth: c.YearMonth, Count: c.Count})
	}
	slices.SortStableFunc(out, func(a, b Point) int {
		return time.Time(a.YearMonth).Compare(time.Time(b.YearMonth))
	})
	return out
}

// Skills lists distinct skills in order of first appearance in the exploded table.
func Skills(postings []posting.Posting) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range postings {
		for _, s := range p.SkillList {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
