package usecase

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	iofs "io/fs"
	"sync"
	"time"

	"github.com/3-lines-studio/isotodo/internal/core"
)

type PageServiceConfig struct {
	FS           FileSystem
	TemplatePath string
	Observer     RenderObserver
	// Decorate, when set, post-processes every rendered page.
	Decorate func([]byte) []byte
}

type ServePageInput struct {
	Pattern string
}

type ServePageOutput struct {
	HTML     []byte
	ETag     string
	NotFound bool
	Error    error
}

type renderedPage struct {
	html []byte
	etag string
	err  error
}

// PageService renders pages into the layout once and serves them from
// memory. Reload swaps layout and pages together, so readers never see a
// page rendered with a layout that failed to load.
type PageService struct {
	cfg PageServiceConfig

	mu     sync.RWMutex
	layout *template.Template
	pages  map[string]renderedPage
	routes []Page
}

func NewPageService(cfg PageServiceConfig) *PageService {
	return &PageService{
		cfg:   cfg,
		pages: make(map[string]renderedPage),
	}
}

// Init loads the layout and prerenders every page. Any failure is returned
// and leaves the service empty.
func (s *PageService) Init(ctx context.Context, pages []Page) error {
	layout, err := s.loadLayout()
	if err != nil {
		return err
	}

	rendered, err := s.renderAll(ctx, layout, pages)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.layout = layout
	s.pages = rendered
	s.routes = append([]Page(nil), pages...)
	s.mu.Unlock()
	return nil
}

// Reload re-reads the layout and re-renders the pages given to Init. If the
// layout cannot be loaded the previous pages keep being served. A page whose
// component fails serves its error until the next successful reload.
func (s *PageService) Reload(ctx context.Context) error {
	s.mu.RLock()
	routes := s.routes
	s.mu.RUnlock()

	layout, err := s.loadLayout()
	if err != nil {
		return err
	}

	rendered := make(map[string]renderedPage, len(routes))
	var errs []error
	for _, page := range routes {
		html, err := s.render(ctx, layout, page)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			errs = append(errs, err)
			rendered[page.Pattern] = renderedPage{err: err}
			continue
		}
		rendered[page.Pattern] = renderedPage{html: html, etag: core.ETag(html)}
	}

	s.mu.Lock()
	s.layout = layout
	s.pages = rendered
	s.mu.Unlock()
	return errors.Join(errs...)
}

// ServePage answers from the cache. The request context is not consulted:
// the bytes are already rendered.
func (s *PageService) ServePage(_ context.Context, input ServePageInput) ServePageOutput {
	s.mu.RLock()
	page, ok := s.pages[input.Pattern]
	s.mu.RUnlock()

	if !ok {
		return ServePageOutput{NotFound: true}
	}
	if page.err != nil {
		return ServePageOutput{Error: page.err}
	}

	return ServePageOutput{
		HTML: page.html,
		ETag: page.etag,
	}
}

// RenderPage renders one page with the current layout, bypassing the cache.
func (s *PageService) RenderPage(ctx context.Context, page Page) ([]byte, error) {
	s.mu.RLock()
	layout := s.layout
	s.mu.RUnlock()

	if layout == nil {
		var err error
		layout, err = s.loadLayout()
		if err != nil {
			return nil, err
		}
	}

	return s.render(ctx, layout, page)
}

func (s *PageService) loadLayout() (*template.Template, error) {
	data, err := s.cfg.FS.ReadFile(s.cfg.TemplatePath)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrTemplateMissing, s.cfg.TemplatePath)
		}
		return nil, fmt.Errorf("failed to read layout %s: %w", s.cfg.TemplatePath, err)
	}

	return core.ParseLayout(s.cfg.TemplatePath, data)
}

func (s *PageService) renderAll(ctx context.Context, layout *template.Template, pages []Page) (map[string]renderedPage, error) {
	rendered := make(map[string]renderedPage, len(pages))
	for _, page := range pages {
		html, err := s.render(ctx, layout, page)
		if err != nil {
			return nil, err
		}
		rendered[page.Pattern] = renderedPage{
			html: html,
			etag: core.ETag(html),
		}
	}
	return rendered, nil
}

func (s *PageService) render(ctx context.Context, layout *template.Template, page Page) (html []byte, err error) {
	start := time.Now()
	defer func() {
		if s.cfg.Observer != nil {
			s.cfg.Observer.ObserveRender(page.Pattern, time.Since(start), err)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page.Component == nil {
		return nil, fmt.Errorf("page %s has no component", page.Pattern)
	}

	node, err := page.Component()
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", page.Pattern, err)
	}

	markup, err := core.RenderToString(node)
	if err != nil {
		return nil, fmt.Errorf("page %s: failed to render component: %w", page.Pattern, err)
	}

	html, err = core.InjectContent(layout, page.Title, markup)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", page.Pattern, err)
	}

	if s.cfg.Decorate != nil {
		html = s.cfg.Decorate(html)
	}
	return html, nil
}
