package reload

import (
	"net/http"
	"strings"
	"sync"
)

// EventsPath is where browsers subscribe for reload events in dev mode.
const EventsPath = "/__isotodo/reload"

const scriptSource = `(function(){var s=new EventSource("` + EventsPath + `");s.addEventListener("reload",function(){location.reload()});})();`

const scriptMarker = "__isotodo_reload"

type Hub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: map[chan struct{}]struct{}{},
	}
}

func (h *Hub) subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) unsubscribe(ch chan struct{}) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Hub) Notify() {
	h.mu.Lock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	h.mu.Unlock()
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	_, _ = w.Write([]byte("event: ready\ndata: 1\n\n"))
	flusher.Flush()

	ch := h.subscribe()
	defer h.unsubscribe(ch)

	for {
		select {
		case <-req.Context().Done():
			return
		case <-ch:
			_, _ = w.Write([]byte("event: reload\ndata: 1\n\n"))
			flusher.Flush()
		}
	}
}

// InjectScript adds the reload listener before </body>, once.
func InjectScript(page []byte) []byte {
	html := string(page)
	if strings.Contains(html, scriptMarker) {
		return page
	}

	script := `<script id="` + scriptMarker + `">` + scriptSource + `</script>`

	if strings.Contains(html, "</body>") {
		return []byte(strings.Replace(html, "</body>", script+"</body>", 1))
	}

	return []byte(html + script)
}
