package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/3-lines-studio/isotodo/internal/adapters/fs"
	"github.com/3-lines-studio/isotodo/internal/component/todo"
	"github.com/3-lines-studio/isotodo/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLayout = `<html><head><title>{{.Title}}</title></head><body><div id="content">{{.Content}}</div></body></html>`

func todoPage() Page {
	return Page{
		Pattern: "/",
		Component: func() (*core.Node, error) {
			return todo.Item(todo.DefaultProps), nil
		},
	}
}

func newService(files fstest.MapFS, observer RenderObserver) *PageService {
	return NewPageService(PageServiceConfig{
		FS:           fs.NewIOFileSystem(files),
		TemplatePath: "templates/layout.html",
		Observer:     observer,
	})
}

type recordingObserver struct {
	mu     sync.Mutex
	pages  []string
	errors int
}

func (r *recordingObserver) ObserveRender(page string, d time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages = append(r.pages, page)
	if err != nil {
		r.errors++
	}
}

func TestInitAndServe(t *testing.T) {
	obs := &recordingObserver{}
	svc := newService(fstest.MapFS{
		"templates/layout.html": {Data: []byte(testLayout)},
	}, obs)

	require.NoError(t, svc.Init(context.Background(), []Page{todoPage()}))

	out := svc.ServePage(context.Background(), ServePageInput{Pattern: "/"})
	require.NoError(t, out.Error)
	assert.False(t, out.NotFound)
	assert.Contains(t, string(out.HTML), `<div id="content"><div class="todo-item">`)
	assert.Contains(t, string(out.HTML), "Write Tutorial")
	assert.Contains(t, string(out.HTML), "<title>"+core.DefaultTitle+"</title>")
	assert.Equal(t, core.ETag(out.HTML), out.ETag)
	assert.Equal(t, []string{"/"}, obs.pages)
}

func TestServeUnknownPage(t *testing.T) {
	svc := newService(fstest.MapFS{
		"templates/layout.html": {Data: []byte(testLayout)},
	}, nil)
	require.NoError(t, svc.Init(context.Background(), []Page{todoPage()}))

	out := svc.ServePage(context.Background(), ServePageInput{Pattern: "/nope"})
	assert.True(t, out.NotFound)
}

func TestServeIsIdempotent(t *testing.T) {
	svc := newService(fstest.MapFS{
		"templates/layout.html": {Data: []byte(testLayout)},
	}, nil)
	require.NoError(t, svc.Init(context.Background(), []Page{todoPage()}))

	first, err := svc.RenderPage(context.Background(), todoPage())
	require.NoError(t, err)
	second, err := svc.RenderPage(context.Background(), todoPage())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first, svc.ServePage(context.Background(), ServePageInput{Pattern: "/"}).HTML)
}

func TestInitMissingTemplate(t *testing.T) {
	svc := newService(fstest.MapFS{}, nil)

	err := svc.Init(context.Background(), []Page{todoPage()})
	assert.ErrorIs(t, err, core.ErrTemplateMissing)
}

func TestInitComponentError(t *testing.T) {
	obs := &recordingObserver{}
	svc := newService(fstest.MapFS{
		"templates/layout.html": {Data: []byte(testLayout)},
	}, obs)

	broken := Page{Pattern: "/", Component: func() (*core.Node, error) {
		return nil, errors.New("component exploded")
	}}

	err := svc.Init(context.Background(), []Page{broken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component exploded")
	assert.Equal(t, 1, obs.errors)

	out := svc.ServePage(context.Background(), ServePageInput{Pattern: "/"})
	assert.True(t, out.NotFound)
}

func TestInitNilComponent(t *testing.T) {
	svc := newService(fstest.MapFS{
		"templates/layout.html": {Data: []byte(testLayout)},
	}, nil)

	err := svc.Init(context.Background(), []Page{{Pattern: "/"}})
	assert.Error(t, err)
}

func TestReloadSwapsLayout(t *testing.T) {
	files := fstest.MapFS{
		"templates/layout.html": {Data: []byte(testLayout)},
	}
	svc := newService(files, nil)
	require.NoError(t, svc.Init(context.Background(), []Page{todoPage()}))

	files["templates/layout.html"] = &fstest.MapFile{Data: []byte(`<main id="content">{{.Content}}</main>`)}
	require.NoError(t, svc.Reload(context.Background()))

	out := svc.ServePage(context.Background(), ServePageInput{Pattern: "/"})
	assert.True(t, strings.HasPrefix(string(out.HTML), `<main id="content">`))
}

func TestReloadFailureKeepsPreviousPages(t *testing.T) {
	files := fstest.MapFS{
		"templates/layout.html": {Data: []byte(testLayout)},
	}
	svc := newService(files, nil)
	require.NoError(t, svc.Init(context.Background(), []Page{todoPage()}))
	before := svc.ServePage(context.Background(), ServePageInput{Pattern: "/"}).HTML

	files["templates/layout.html"] = &fstest.MapFile{Data: []byte(`{{.Content`)}
	assert.Error(t, svc.Reload(context.Background()))

	after := svc.ServePage(context.Background(), ServePageInput{Pattern: "/"}).HTML
	assert.Equal(t, before, after)
}

func TestDecorate(t *testing.T) {
	svc := NewPageService(PageServiceConfig{
		FS: fs.NewIOFileSystem(fstest.MapFS{
			"templates/layout.html": {Data: []byte(testLayout)},
		}),
		TemplatePath: "templates/layout.html",
		Decorate: func(b []byte) []byte {
			return append(b, []byte("<!-- dev -->")...)
		},
	})
	require.NoError(t, svc.Init(context.Background(), []Page{todoPage()}))

	out := svc.ServePage(context.Background(), ServePageInput{Pattern: "/"})
	assert.True(t, strings.HasSuffix(string(out.HTML), "<!-- dev -->"))
}

func TestCanceledContext(t *testing.T) {
	svc := newService(fstest.MapFS{
		"templates/layout.html": {Data: []byte(testLayout)},
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, svc.Init(ctx, []Page{todoPage()}), context.Canceled)
}

func TestServeIgnoresCanceledRequest(t *testing.T) {
	svc := newService(fstest.MapFS{
		"templates/layout.html": {Data: []byte(testLayout)},
	}, nil)
	require.NoError(t, svc.Init(context.Background(), []Page{todoPage()}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := svc.ServePage(ctx, ServePageInput{Pattern: "/"})
	require.NoError(t, out.Error)
	assert.Contains(t, string(out.HTML), "Write Tutorial")
}

func TestReloadComponentErrorIsServed(t *testing.T) {
	files := fstest.MapFS{
		"templates/layout.html": {Data: []byte(testLayout)},
	}
	svc := newService(files, nil)

	calls := 0
	flaky := Page{Pattern: "/", Component: func() (*core.Node, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("component exploded")
		}
		return todo.Item(todo.DefaultProps), nil
	}}
	require.NoError(t, svc.Init(context.Background(), []Page{flaky}))

	err := svc.Reload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component exploded")

	out := svc.ServePage(context.Background(), ServePageInput{Pattern: "/"})
	require.Error(t, out.Error)
	assert.Contains(t, out.Error.Error(), "component exploded")
	assert.Empty(t, out.HTML)
}

func TestReloadCanceledKeepsPreviousPages(t *testing.T) {
	svc := newService(fstest.MapFS{
		"templates/layout.html": {Data: []byte(testLayout)},
	}, nil)
	require.NoError(t, svc.Init(context.Background(), []Page{todoPage()}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, svc.Reload(ctx), context.Canceled)
	out := svc.ServePage(context.Background(), ServePageInput{Pattern: "/"})
	require.NoError(t, out.Error)
	assert.Contains(t, string(out.HTML), "Write Tutorial")
}
