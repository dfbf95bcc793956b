package isotodo

import (
	"context"
	"fmt"
	"net/http"

	adapterhttp "github.com/3-lines-studio/isotodo/internal/adapters/http"
	"github.com/3-lines-studio/isotodo/internal/component/todo"
	"github.com/3-lines-studio/isotodo/internal/core"
	"github.com/3-lines-studio/isotodo/internal/metrics"
	"github.com/3-lines-studio/isotodo/internal/reload"
	"github.com/3-lines-studio/isotodo/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Node = core.Node

type Component = usecase.Component

type TodoProps = todo.Props

// DefaultTodoProps is the state rendered on both the server and the browser.
var DefaultTodoProps = todo.DefaultProps

type Route struct {
	Pattern   string
	Title     string
	Component Component
}

type PageOption func(*Route)

func Page(pattern string, component Component, opts ...PageOption) Route {
	route := Route{
		Pattern:   pattern,
		Component: component,
	}
	for _, opt := range opts {
		opt(&route)
	}
	return route
}

func WithTitle(title string) PageOption {
	return func(r *Route) {
		r.Title = title
	}
}

func TodoItem(p TodoProps) Component {
	return func() (*Node, error) {
		return todo.Item(p), nil
	}
}

func DefaultRoutes() []Route {
	return []Route{Page("/", TodoItem(DefaultTodoProps))}
}

type App struct {
	opts    options
	service *usecase.PageService
	hub     *reload.Hub
	watcher *reload.Watcher
	log     zerolog.Logger
}

// New loads the layout and renders every route once. A missing layout or a
// failing component is returned as an error; nothing is served half-built.
func New(ctx context.Context, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	routes, err := normalizeRoutes(o.routes)
	if err != nil {
		return nil, err
	}
	o.routes = routes
	if o.watch && !o.osFS {
		return nil, fmt.Errorf("template watching needs the OS file system")
	}

	app := &App{
		opts: o,
		log:  o.logger,
	}

	cfg := usecase.PageServiceConfig{
		FS:           o.fs,
		TemplatePath: o.templatePath,
		Observer:     o.metrics,
	}
	if o.dev && o.watch {
		app.hub = reload.NewHub()
		cfg.Decorate = reload.InjectScript
	}
	app.service = usecase.NewPageService(cfg)

	pages := make([]usecase.Page, len(o.routes))
	for i, route := range o.routes {
		title := route.Title
		if title == "" {
			title = o.title
		}
		pages[i] = usecase.Page{
			Pattern:   route.Pattern,
			Title:     title,
			Component: route.Component,
		}
	}

	if err := app.service.Init(ctx, pages); err != nil {
		return nil, err
	}
	app.log.Debug().Int("pages", len(pages)).Str("template", o.templatePath).Msg("pages rendered")

	if o.watch {
		w, err := reload.Watch(o.templatePath, app.onTemplateChange, app.log)
		if err != nil {
			return nil, err
		}
		app.watcher = w
	}

	return app, nil
}

// normalizeRoutes validates routes and drops trailing slashes from their
// patterns, so "/done/" and "/done" name the same page.
func normalizeRoutes(routes []Route) ([]Route, error) {
	if len(routes) == 0 {
		return nil, fmt.Errorf("no routes")
	}

	out := make([]Route, 0, len(routes))
	seen := make(map[string]bool, len(routes))
	for _, route := range routes {
		if err := core.ValidateRoutePath(route.Pattern); err != nil {
			return nil, fmt.Errorf("route %q: %w", route.Pattern, err)
		}
		if route.Component == nil {
			return nil, fmt.Errorf("route %q: nil component", route.Pattern)
		}
		route.Pattern = core.NormalizePath(route.Pattern)
		if seen[route.Pattern] {
			return nil, fmt.Errorf("route %q registered twice", route.Pattern)
		}
		seen[route.Pattern] = true
		out = append(out, route)
	}
	return out, nil
}

func (a *App) onTemplateChange() {
	if err := a.service.Reload(context.Background()); err != nil {
		a.log.Error().Err(err).Msg("reload failed")
		return
	}
	a.log.Info().Str("template", a.opts.templatePath).Msg("pages re-rendered")
	if a.hub != nil {
		a.hub.Notify()
	}
}

// Handler serves the rendered pages and falls back to the public directory
// for every other path.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(adapterhttp.AccessLog(a.log, a.opts.metrics))
	r.Use(middleware.Recoverer)

	for _, route := range a.opts.routes {
		page := adapterhttp.Label("page", adapterhttp.NewPageHandler(a.service, route.Pattern, a.opts.dev))
		r.Method(http.MethodGet, route.Pattern, page)
		r.Method(http.MethodHead, route.Pattern, page)
	}

	if a.hub != nil {
		r.Method(http.MethodGet, reload.EventsPath, adapterhttp.Label("reload", a.hub))
	}

	public := adapterhttp.Label("public", adapterhttp.NewPublicHandler(a.opts.fs, a.opts.publicDir, nil))
	r.NotFound(public.ServeHTTP)

	return r
}

// MetricsHandler exposes the Prometheus registry given to WithMetrics.
func (a *App) MetricsHandler() http.Handler {
	return a.opts.metrics.Handler()
}

// Render returns the prerendered page for pattern.
func (a *App) Render(ctx context.Context, pattern string) ([]byte, error) {
	out := a.service.ServePage(ctx, usecase.ServePageInput{Pattern: core.NormalizePath(pattern)})
	if out.Error != nil {
		return nil, out.Error
	}
	if out.NotFound {
		return nil, fmt.Errorf("no page for %q", pattern)
	}
	return out.HTML, nil
}

func (a *App) Stop() error {
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

var (
	_ adapterhttp.RequestObserver = (*metrics.Metrics)(nil)
	_ usecase.RenderObserver      = (*metrics.Metrics)(nil)
)
