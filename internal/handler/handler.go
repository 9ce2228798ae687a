// Package handler routes a parsed Config to the flow that serves it.
//
// Handle makes exactly one collaborator call. A failing call comes back with a
// single context layer naming what the user was trying to do; Preview and the
// default interactive flow pass their errors through untouched.
package handler

import (
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/failure"
)

// Flows are the collaborators Handle dispatches to.
type Flows interface {
	Core(variant domain.Variant, cfg domain.Config, interactive bool) error
	Preview(line string) error
	Query(query string, cfg domain.Config) error
	Best(query string, args []string, cfg domain.Config) error
	Search(query string, cfg domain.Config) error
	Widget(shell string) error
	Func(name string, args []string) error
	RepoAdd(uri string, finder domain.FinderChoice) error
	RepoBrowse(finder domain.FinderChoice) error
	AlfredMain(cfg domain.Config) error
	AlfredSuggestions(cfg domain.Config, checkMode bool) error
	AlfredTransform() error
}

// Handle runs the flow selected by cfg.Cmd, or the interactive core flow when
// no command was given.
func Handle(cfg domain.Config, flows Flows) error {
	if cfg.Cmd == nil {
		return flows.Core(domain.VariantCore(), cfg, true)
	}
	return cfg.Cmd.Accept(&dispatch{cfg: cfg, flows: flows})
}

type dispatch struct {
	cfg   domain.Config
	flows Flows
}

var _ domain.CommandVisitor = (*dispatch)(nil)

func (d *dispatch) VisitPreview(c domain.Preview) error {
	return d.flows.Preview(c.Line)
}

func (d *dispatch) VisitQuery(c domain.Query) error {
	return failure.Wrapf(d.flows.Query(c.Query, d.cfg),
		"Failed to filter cheatsheets for %s", c.Query)
}

func (d *dispatch) VisitBest(c domain.Best) error {
	return failure.Wrapf(d.flows.Best(c.Query, c.Args, d.cfg),
		"Failed to execute snippet similar to %s", c.Query)
}

func (d *dispatch) VisitSearch(c domain.Search) error {
	return failure.Wrap(d.flows.Search(c.Query, d.cfg),
		"Failed to search for online cheatsheets")
}

func (d *dispatch) VisitWidget(c domain.Widget) error {
	return failure.Wrap(d.flows.Widget(c.Shell),
		"Failed to print shell widget code")
}

func (d *dispatch) VisitFn(c domain.Fn) error {
	return failure.Wrapf(d.flows.Func(c.Func, c.Args),
		"Failed to execute function `%s`", c.Func)
}

func (d *dispatch) VisitRepoAdd(c domain.RepoAdd) error {
	return failure.Wrapf(d.flows.RepoAdd(c.URI, d.cfg.Finder),
		"Failed to import cheatsheets from `%s`", c.URI)
}

func (d *dispatch) VisitRepoBrowse(domain.RepoBrowse) error {
	return failure.Wrap(d.flows.RepoBrowse(d.cfg.Finder),
		"Failed to browse featured cheatsheets")
}

func (d *dispatch) VisitAlfredStart(domain.AlfredStart) error {
	return failure.Wrap(d.flows.AlfredMain(d.cfg),
		"Failed to call Alfred starting function")
}

func (d *dispatch) VisitAlfredSuggestions(domain.AlfredSuggestions) error {
	return failure.Wrap(d.flows.AlfredSuggestions(d.cfg, false),
		"Failed to call Alfred suggestion function")
}

func (d *dispatch) VisitAlfredCheck(domain.AlfredCheck) error {
	return failure.Wrap(d.flows.AlfredSuggestions(d.cfg, true),
		"Failed to call Alfred check function")
}

func (d *dispatch) VisitAlfredTransform(domain.AlfredTransform) error {
	return failure.Wrap(d.flows.AlfredTransform(),
		"Failed to call Alfred transform function")
}
