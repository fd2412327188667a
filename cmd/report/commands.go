package main

import (
	"context"

	"skill-insight/internal/app"
	"skill-insight/internal/config"
	"skill-insight/internal/pkg/logger"
	"skill-insight/internal/report"
	"skill-insight/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	datasetPath string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "skill-insight-report",
		Short:         "Render skill-insight dashboard views in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&opts.datasetPath, "dataset", "", "path to the job postings CSV (overrides DATASET_PATH)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")

	cmd.AddCommand(
		newViewsCmd(opts),
		newDatasetCmd(opts),
		newViewCmd(opts, "market", usecase.ViewMarketInsights, "Top skill demand table and chart"),
		newViewCmd(opts, "ecosystems", usecase.ViewEcosystems, "Skill communities of the co-occurrence graph"),
		newTrendCmd(opts),
		newRoadmapCmd(opts),
	)
	return cmd
}

// load builds a container the same way the server does, so views rendered
// here match the HTTP API.
func (o *rootOptions) load() (*app.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.datasetPath != "" {
		cfg.Dataset.Path = o.datasetPath
	}
	cfg.Redis.Enabled = false

	log, err := logger.New(cfg.App.IsProduction(), o.logLevel)
	if err != nil {
		return nil, err
	}
	return app.NewContainer(cfg, log.With(zap.String("app", "report")))
}

func newViewsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the dashboard views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.load()
			if err != nil {
				return err
			}
			defer c.Close()
			return report.Views(cmd.OutOrStdout(), c.Dashboard.Views())
		},
	}
}

func newDatasetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dataset",
		Short: "Summarize the loaded dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.load()
			if err != nil {
				return err
			}
			defer c.Close()
			return report.Summary(cmd.OutOrStdout(), c.Dashboard.Summary())
		},
	}
}

func newViewCmd(opts *rootOptions, use string, view usecase.View, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderView(cmd, opts, view, usecase.Selection{})
		},
	}
}

func newTrendCmd(opts *rootOptions) *cobra.Command {
	var skill string
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Monthly posting counts for one skill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderView(cmd, opts, usecase.ViewTrends, usecase.Selection{Skill: skill})
		},
	}
	cmd.Flags().StringVar(&skill, "skill", "", "skill to chart (defaults to the first skill in the dataset)")
	return cmd
}

func newRoadmapCmd(opts *rootOptions) *cobra.Command {
	var role, skills string
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Skill gap between your skills and a target role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderView(cmd, opts, usecase.ViewRoadmap, usecase.Selection{
				Role:      role,
				Skills:    skills,
				Submitted: true,
			})
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "target job title (defaults to the first role in the dataset)")
	cmd.Flags().StringVar(&skills, "skills", "", "your current skills, comma separated")
	return cmd
}

func renderView(cmd *cobra.Command, opts *rootOptions, view usecase.View, sel usecase.Selection) error {
	c, err := opts.load()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := c.Dashboard.Render(ctx, view, sel)
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), res)
}
