package posting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSkillList(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "trims and lowercases", raw: " Python , SQL,Excel ", want: []string{"python", "sql", "excel"}},
		{name: "single value", raw: "Kubernetes", want: []string{"kubernetes"}},
		{name: "empty tokens dropped", raw: "go,, ,rust", want: []string{"go", "rust"}},
		{name: "empty cell", raw: "", want: []string{}},
		{name: "keeps duplicates", raw: "go, Go", want: []string{"go", "go"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseSkillList(tc.raw))
		})
	}
}

func TestParseSkillSet(t *testing.T) {
	set := ParseSkillSet("Python, sql , python")
	assert.Len(t, set, 2)
	assert.Contains(t, set, "python")
	assert.Contains(t, set, "sql")

	assert.Empty(t, ParseSkillSet(""))
}

func TestNew(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	p := New("Data Scientist", date, "Python, SQL")

	assert.Equal(t, "Data Scientist", p.JobTitle)
	assert.Equal(t, date, p.PostingDate)
	assert.Equal(t, "Python, SQL", p.RequiredSkills)
	assert.Equal(t, []string{"python", "sql"}, p.SkillList)
}
