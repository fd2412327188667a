// Package report renders dashboard views as terminal text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"skill-insight/internal/dataset"
	"skill-insight/internal/domain/frequency"
	"skill-insight/internal/domain/trend"
	"skill-insight/internal/usecase"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
)

const barWidth = 40

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

func Render(w io.Writer, res usecase.ViewResult) error {
	var body string
	switch d := res.Data.(type) {
	case usecase.MarketInsights:
		body = marketInsights(d)
	case usecase.Ecosystems:
		body = ecosystems(d)
	case usecase.Trends:
		body = trends(d)
	case usecase.Roadmap:
		body = roadmapView(d)
	default:
		return errors.Errorf("report: unsupported view data %T", res.Data)
	}

	_, err := fmt.Fprintln(w, titleStyle.Render(res.Title)+"\n"+body)
	return err
}

func Views(w io.Writer, views []usecase.ViewInfo) error {
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{string(v.ID), v.Title})
	}
	_, err := fmt.Fprintln(w, newTable("view", "title").Rows(rows...).String())
	return err
}

func Summary(w io.Writer, s dataset.Summary) error {
	rows := [][]string{
		{"source", s.Source},
		{"postings", strconv.Itoa(s.Postings)},
		{"skill tokens", strconv.Itoa(s.SkillTokens)},
		{"distinct skills", strconv.Itoa(s.DistinctSkills)},
		{"distinct roles", strconv.Itoa(s.DistinctRoles)},
	}
	if s.FirstPosted != nil && s.LastPosted != nil {
		rows = append(rows, []string{"posted", s.FirstPosted.Format("2006-01-02") + " .. " + s.LastPosted.Format("2006-01-02")})
	}
	_, err := fmt.Fprintln(w, newTable("field", "value").Rows(rows...).String())
	return err
}

func newTable(headers ...string) *table.Table {
	return table.New().Border(lipgloss.NormalBorder()).Headers(headers...)
}

func marketInsights(d usecase.MarketInsights) string {
	rows := make([][]string, 0, len(d.Table))
	for _, r := range d.Table {
		rows = append(rows, []string{r.Skill, strconv.Itoa(r.Frequency)})
	}

	var b strings.Builder
	b.WriteString(newTable("skill", "frequency").Rows(rows...).String())
	b.WriteString("\n\n")
	b.WriteString(bars(d.Chart))
	return b.String()
}

func bars(rows []frequency.Row) string {
	if len(rows) == 0 {
		return mutedStyle.Render("no skills")
	}
	maxFreq, width := 0, 0
	for _, r := range rows {
		maxFreq = max(maxFreq, r.Frequency)
		width = max(width, len(r.Skill))
	}

	var b strings.Builder
	for _, r := range rows {
		n := r.Frequency * barWidth / max(maxFreq, 1)
		fmt.Fprintf(&b, "%-*s %s %d\n", width, r.Skill, strings.Repeat("█", n), r.Frequency)
	}
	return strings.TrimRight(b.String(), "\n")
}

func ecosystems(d usecase.Ecosystems) string {
	rows := make([][]string, 0, len(d.Assignments))
	for _, a := range d.Assignments {
		rows = append(rows, []string{a.Skill, strconv.Itoa(a.Community)})
	}

	header := fmt.Sprintf("Total Communities: %d\n%s\n",
		d.CommunityCount,
		mutedStyle.Render(fmt.Sprintf("%d skills, %d edges, modularity %.3f", d.Nodes, d.Edges, d.Modularity)),
	)
	return header + newTable("skill", "community").Rows(rows...).String()
}

func trends(d usecase.Trends) string {
	if d.Selected == "" {
		return mutedStyle.Render("no skills in dataset")
	}
	return "Skill: " + d.Selected + "\n" + series(d.Series)
}

func series(pts []trend.Point) string {
	if len(pts) == 0 {
		return mutedStyle.Render("no postings for this skill")
	}
	maxCount := 0
	for _, p := range pts {
		maxCount = max(maxCount, p.Count)
	}

	var b strings.Builder
	for _, p := range pts {
		n := p.Count * barWidth / max(maxCount, 1)
		fmt.Fprintf(&b, "%s %s %d\n", p.YearMonth, strings.Repeat("▪", n), p.Count)
	}
	return strings.TrimRight(b.String(), "\n")
}

func roadmapView(d usecase.Roadmap) string {
	if !d.Submitted || d.Result == nil {
		return "Roles:\n  " + strings.Join(d.Roles, "\n  ")
	}

	r := d.Result
	var b strings.Builder
	fmt.Fprintf(&b, "Target role: %s\n\n", r.TargetRole)
	fmt.Fprintf(&b, "Target Role Skills: %s\n", strings.Join(r.RequiredSkills, ", "))
	fmt.Fprintf(&b, "Skill Gap: %s\n\n", strings.Join(r.Gap, ", "))
	b.WriteString("Recommended Learning Order:\n")
	for _, s := range r.Gap {
		fmt.Fprintf(&b, "  • %s\n", s)
	}
	return strings.TrimRight(b.String(), "\n")
}
