package roadmap

import (
	"testing"
	"time"

	"skill-insight/internal/domain/posting"

	"github.com/stretchr/testify/assert"
)

func fixture() []posting.Posting {
	d := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	return []posting.Posting{
		posting.New("Data Analyst", d, "python, sql, excel"),
		posting.New("Data Analyst", d, "python, sql"),
		posting.New("Data Analyst", d, "python"),
		posting.New("ML Engineer", d, "pytorch, python, docker"),
	}
}

func TestGenerate_Gap(t *testing.T) {
	res := Generate(fixture(), "Data Analyst", "python", 10)

	assert.Equal(t, "Data Analyst", res.TargetRole)
	assert.Equal(t, []string{"python", "sql", "excel"}, res.RequiredSkills)
	assert.Equal(t, []string{"python"}, res.UserSkills)
	assert.ElementsMatch(t, []string{"sql", "excel"}, res.Gap)
}

func TestGenerate_EmptyInputGapEqualsRequired(t *testing.T) {
	res := Generate(fixture(), "ML Engineer", "", 10)

	assert.Empty(t, res.UserSkills)
	assert.Equal(t, res.RequiredSkills, res.Gap)
}

func TestGenerate_NormalizesUserSkills(t *testing.T) {
	res := Generate(fixture(), "Data Analyst", " PYTHON ,Sql, rust", 10)

	assert.Equal(t, []string{"python", "rust", "sql"}, res.UserSkills)
	assert.Equal(t, []string{"excel"}, res.Gap)
}

func TestGenerate_GapIsSubsetOfRequired(t *testing.T) {
	inputs := []string{"", "python", "docker, pytorch", "excel, sql, python, go"}
	for _, role := range Roles(fixture()) {
		for _, in := range inputs {
			res := Generate(fixture(), role, in, 10)
			assert.Subset(t, res.RequiredSkills, res.Gap)
		}
	}
}

func TestGenerate_UnknownRole(t *testing.T) {
	res := Generate(fixture(), "Astronaut", "python", 10)

	assert.Empty(t, res.RequiredSkills)
	assert.Empty(t, res.Gap)
}

func TestRoleSkills_TopN(t *testing.T) {
	assert.Equal(t, []string{"python", "sql"}, RoleSkills(fixture(), "Data Analyst", 2))
}

func TestGenerate_DefaultTopN(t *testing.T) {
	d := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	ps := []posting.Posting{posting.New("SRE", d, "a, b, c, d, e, f, g, h, i, j, k, l")}

	res := Generate(ps, "SRE", "", 0)

	assert.Len(t, res.RequiredSkills, DefaultTopSkills)
}

func TestRoles(t *testing.T) {
	assert.Equal(t, []string{"Data Analyst", "ML Engineer"}, Roles(fixture()))
}
