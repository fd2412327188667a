package usecase

import (
	"context"
	"time"

	"skill-insight/internal/dataset"
	"skill-insight/internal/domain/ecosystem"
	"skill-insight/internal/domain/frequency"
	"skill-insight/internal/domain/posting"
	"skill-insight/internal/domain/roadmap"
	"skill-insight/internal/domain/trend"

	"go.uber.org/zap"
)

type View string

const (
	ViewMarketInsights View = "skill-market-insights"
	ViewEcosystems     View = "skill-ecosystems"
	ViewTrends         View = "trend-detection"
	ViewRoadmap        View = "career-roadmap"
)

type ViewInfo struct {
	ID    View   `json:"id"`
	Title string `json:"title"`
}

var viewInfos = []ViewInfo{
	{ID: ViewMarketInsights, Title: "Skill Market Insights"},
	{ID: ViewEcosystems, Title: "Skill Ecosystems"},
	{ID: ViewTrends, Title: "Trend Detection"},
	{ID: ViewRoadmap, Title: "Career Roadmap Generator"},
}

// Selection carries the user's current control values. Only the fields a
// view understands are read.
type Selection struct {
	Skill     string
	Role      string
	Skills    string
	Submitted bool
}

type ViewResult struct {
	View  View   `json:"view"`
	Title string `json:"title"`
	Data  any    `json:"data"`
}

type MarketInsights struct {
	Postings    int             `json:"postings"`
	SkillTokens int             `json:"skill_tokens"`
	Table       []frequency.Row `json:"table"`
	Chart       []frequency.Row `json:"chart"`
}

type Ecosystems struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`

	ecosystem.Partition
}

type Trends struct {
	Skills   []string      `json:"skills"`
	Selected string        `json:"selected"`
	Series   []trend.Point `json:"series"`
}

type Roadmap struct {
	Roles        []string        `json:"roles"`
	SelectedRole string          `json:"selected_role"`
	Submitted    bool            `json:"submitted"`
	Result       *roadmap.Result `json:"result,omitempty"`
}

type DashboardOptions struct {
	TopSkills     int
	ChartSkills   int
	RoadmapSkills int
	Resolution    float64
}

type DashboardUsecase interface {
	Views() []ViewInfo
	Render(ctx context.Context, view View, sel Selection) (ViewResult, error)
	Summary() dataset.Summary
}

type viewHandler func(ctx context.Context, t *dataset.Table, sel Selection) (any, error)

// Dashboard dispatches view requests to per-view handlers over one shared,
// read-only table.
type Dashboard struct {
	table    *dataset.Table
	detector ecosystem.CommunityDetector
	cache    ViewCache
	metrics  Recorder
	logger   *zap.Logger
	opts     DashboardOptions

	handlers map[View]viewHandler
}

type DashboardDeps struct {
	Detector ecosystem.CommunityDetector
	Cache    ViewCache
	Metrics  Recorder
	Logger   *zap.Logger
}

func NewDashboard(table *dataset.Table, opts DashboardOptions, deps DashboardDeps) *Dashboard {
	if table == nil {
		table = dataset.NewTable("", "", nil)
	}
	if opts.TopSkills <= 0 {
		opts.TopSkills = 20
	}
	if opts.ChartSkills <= 0 {
		opts.ChartSkills = 10
	}
	if opts.RoadmapSkills <= 0 {
		opts.RoadmapSkills = roadmap.DefaultTopSkills
	}
	if opts.Resolution <= 0 {
		opts.Resolution = 1
	}
	if deps.Detector == nil {
		deps.Detector = ecosystem.NewLouvain(opts.Resolution)
	}
	if deps.Metrics == nil {
		deps.Metrics = nopRecorder{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	u := &Dashboard{
		table:    table,
		detector: deps.Detector,
		cache:    deps.Cache,
		metrics:  deps.Metrics,
		logger:   deps.Logger,
		opts:     opts,
	}
	u.handlers = map[View]viewHandler{
		ViewMarketInsights: u.renderMarketInsights,
		ViewEcosystems:     u.renderEcosystems,
		ViewTrends:         u.renderTrends,
		ViewRoadmap:        u.renderRoadmap,
	}
	return u
}

func (u *Dashboard) Views() []ViewInfo {
	out := make([]ViewInfo, len(viewInfos))
	copy(out, viewInfos)
	return out
}

func (u *Dashboard) Summary() dataset.Summary {
	return u.table.Summary()
}

func (u *Dashboard) Render(ctx context.Context, view View, sel Selection) (ViewResult, error) {
	h, ok := u.handlers[view]
	if !ok {
		return ViewResult{}, ErrUnknownView
	}

	start := time.Now()
	data, err := h(ctx, u.table, sel)
	u.metrics.ObserveView(string(view), time.Since(start), err)
	if err != nil {
		u.logger.Error("view render failed", zap.String("view", string(view)), zap.Error(err))
		return ViewResult{}, err
	}

	return ViewResult{View: view, Title: titleOf(view), Data: data}, nil
}

func titleOf(view View) string {
	for _, v := range viewInfos {
		if v.ID == view {
			return v.Title
		}
	}
	return string(view)
}

func (u *Dashboard) renderMarketInsights(ctx context.Context, t *dataset.Table, sel Selection) (any, error) {
	key := ViewCacheKey(t.Fingerprint, ViewMarketInsights, Selection{}, u.opts.TopSkills, u.opts.ChartSkills)
	return cachedView(ctx, u, ViewMarketInsights, key, func() MarketInsights {
		rows := frequency.Count(t.Postings)
		return MarketInsights{
			Postings:    len(t.Postings),
			SkillTokens: frequency.Total(rows),
			Table:       frequency.Top(rows, u.opts.TopSkills),
			Chart:       frequency.Top(rows, u.opts.ChartSkills),
		}
	}), nil
}

// renderEcosystems is never cached: community assignment is recomputed on
// every render.
func (u *Dashboard) renderEcosystems(_ context.Context, t *dataset.Table, _ Selection) (any, error) {
	g := ecosystem.Build(t.Postings)
	raw := u.detector.Detect(g)
	return Ecosystems{
		Nodes:     g.NodeCount(),
		Edges:     g.EdgeCount(),
		Partition: ecosystem.Partitions(g, raw, u.opts.Resolution),
	}, nil
}

func (u *Dashboard) renderTrends(ctx context.Context, t *dataset.Table, sel Selection) (any, error) {
	skills := trend.Skills(t.Postings)
	selected := posting.NormalizeSkill(sel.Skill)
	if selected == "" && len(skills) > 0 {
		selected = skills[0]
	}

	key := ViewCacheKey(t.Fingerprint, ViewTrends, Selection{Skill: selected})
	return cachedView(ctx, u, ViewTrends, key, func() Trends {
		series := trend.Series(trend.MonthlyCounts(t.Postings), selected)
		return Trends{Skills: skills, Selected: selected, Series: series}
	}), nil
}

func (u *Dashboard) renderRoadmap(ctx context.Context, t *dataset.Table, sel Selection) (any, error) {
	roles := roadmap.Roles(t.Postings)
	role := normalizeRole(sel.Role)
	if role == "" && len(roles) > 0 {
		role = roles[0]
	}

	if !sel.Submitted {
		return Roadmap{Roles: roles, SelectedRole: role}, nil
	}

	key := ViewCacheKey(t.Fingerprint, ViewRoadmap, Selection{Role: role, Skills: sel.Skills}, u.opts.RoadmapSkills)
	return cachedView(ctx, u, ViewRoadmap, key, func() Roadmap {
		res := roadmap.Generate(t.Postings, role, sel.Skills, u.opts.RoadmapSkills)
		return Roadmap{Roles: roles, SelectedRole: role, Submitted: true, Result: &res}
	}), nil
}
