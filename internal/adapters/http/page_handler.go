package http

import (
	"net/http"

	"github.com/3-lines-studio/isotodo/internal/core"
	"github.com/3-lines-studio/isotodo/internal/usecase"
	"github.com/rs/zerolog/hlog"
)

type PageHandler struct {
	service *usecase.PageService
	pattern string
	isDev   bool
}

func NewPageHandler(service *usecase.PageService, pattern string, isDev bool) http.Handler {
	return &PageHandler{
		service: service,
		pattern: pattern,
		isDev:   isDev,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	output := h.service.ServePage(req.Context(), usecase.ServePageInput{
		Pattern: h.pattern,
	})

	if output.Error != nil {
		hlog.FromRequest(req).Error().Err(output.Error).Str("page", h.pattern).Msg("page unavailable")
		serveError(w, output.Error, h.isDev)
		return
	}

	if output.NotFound {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", output.ETag)
	if match := req.Header.Get("If-None-Match"); match != "" && match == output.ETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(output.HTML)
}

func serveError(w http.ResponseWriter, err error, isDev bool) {
	body := core.RenderErrorPage(core.ErrorData{
		Message: err.Error(),
		IsDev:   isDev,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(body)
}
