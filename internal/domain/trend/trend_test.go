package trend

import (
	"encoding/json"
	"testing"
	"time"

	"skill-insight/internal/domain/posting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func fixture() []posting.Posting {
	return []posting.Posting{
		posting.New("Data Scientist", day(2024, time.March, 4), "python, sql"),
		posting.New("Data Scientist", day(2024, time.January, 20), "python"),
		posting.New("ML Engineer", day(2024, time.January, 2), "python, pytorch"),
		posting.New("ML Engineer", day(2023, time.December, 31), "sql"),
	}
}

func TestMonthlyCounts(t *testing.T) {
	rows := MonthlyCounts(fixture())

	require.Len(t, rows, 5)
	assert.Equal(t, "2023-12", rows[0].YearMonth.String())
	assert.Equal(t, "sql", rows[0].Skill)
	assert.Equal(t, "2024-01", rows[1].YearMonth.String())
	assert.Equal(t, "python", rows[1].Skill)
	assert.Equal(t, 2, rows[1].Count)
	assert.Equal(t, "pytorch", rows[2].Skill)
}

func TestSeries_ChronologicalWithGaps(t *testing.T) {
	pts := Series(MonthlyCounts(fixture()), "Python")

	require.Len(t, pts, 2)
	assert.Equal(t, "2024-01", pts[0].YearMonth.String())
	assert.Equal(t, 2, pts[0].Count)
	assert.Equal(t, "2024-03", pts[1].YearMonth.String())
	assert.Equal(t, 1, pts[1].Count)
}

func TestSeries_SumsToSkillFrequency(t *testing.T) {
	ps := fixture()
	counts := MonthlyCounts(ps)

	for _, skill := range Skills(ps) {
		want := 0
		for _, p := range ps {
			for _, s := range p.SkillList {
				if s == skill {
					want++
				}
			}
		}

		got := 0
		for _, pt := range Series(counts, skill) {
			got += pt.Count
		}
		assert.Equal(t, want, got, skill)
	}
}

func TestSeries_UnknownSkill(t *testing.T) {
	assert.Empty(t, Series(MonthlyCounts(fixture()), "cobol"))
}

func TestSkills_FirstAppearanceOrder(t *testing.T) {
	assert.Equal(t, []string{"python", "sql", "pytorch"}, Skills(fixture()))
}

func TestYearMonth_JSON(t *testing.T) {
	b, err := json.Marshal(Point{YearMonth: MonthOf(day(2024, time.July, 9)), Count: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"year_month":"2024-07","count":3}`, string(b))

	var p Point
	require.NoError(t, json.Unmarshal(b, &p))
	assert.Equal(t, "2024-07", p.YearMonth.String())
}

func TestMonthOf_KeepsWallClockMonth(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	late := time.Date(2024, time.January, 31, 23, 30, 0, 0, est)

	assert.Equal(t, "2024-01", MonthOf(late).String())
	assert.Equal(t, "2024-02", MonthOf(late.UTC()).String())
}
