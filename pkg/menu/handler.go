package menu

import (
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mchmarny/navmenu/pkg/markup"
	"github.com/mchmarny/navmenu/pkg/metric"
	"github.com/prometheus/client_golang/prometheus"
)

// Builder returns a new menu tree for a request. Trees are mutated while
// resolving the active state, so a Builder must not return a shared tree.
// Returning nil answers 404.
type Builder func(r *http.Request) *Menu

type handler struct {
	build    Builder
	root     string
	title    string
	renders  metric.IncrementalCounter
	duration metric.DurationObserver
}

// HandlerOption configures Handler.
type HandlerOption func(*handler)

// WithRoot sets the site root passed to SetActiveFromURL, "/" by default.
func WithRoot(root string) HandlerOption {
	return func(h *handler) { h.root = root }
}

// WithTitle sets the page title.
func WithTitle(title string) HandlerOption {
	return func(h *handler) { h.title = title }
}

// WithRegisterer records render metrics in reg. Without it the metrics go
// to a private registry.
func WithRegisterer(reg prometheus.Registerer) HandlerOption {
	return func(h *handler) {
		h.renders = metric.NewCounter(reg, "navmenu_renders_total",
			"Number of rendered menus, by whether any item was active.", "active")
		h.duration = metric.NewHistogram(reg, "navmenu_render_duration_seconds",
			"Time spent building and rendering a menu.")
	}
}

// Handler serves an HTML page holding the menu built for each request, with
// its active state resolved from the request URL.
func Handler(build Builder, opts ...HandlerOption) http.Handler {
	h := &handler{
		build: build,
		root:  DefaultRoot,
		title: "Menu",
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.renders == nil {
		WithRegisterer(prometheus.NewRegistry())(h)
	}

	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling menu request",
		"method", r.Method,
		"url", r.URL.Path,
	)

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	m := h.build(r)
	if m == nil {
		http.NotFound(w, r)
		return
	}

	m.SetActiveFromURL(RequestURL(r), h.root)
	page := h.page(m, r.URL.Path)

	h.duration.Observe(time.Since(start).Seconds())
	h.renders.Increment(strconv.FormatBool(m.IsActive()))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	if _, err := w.Write([]byte(page)); err != nil {
		slog.Error("failed to write menu response", "error", err)
		return
	}

	slog.Info("menu response sent",
		"method", r.Method,
		"url", r.URL.Path,
		"active", m.IsActive(),
		"status", http.StatusOK,
	)
}

func (h *handler) page(m *Menu, path string) string {
	head := markup.El("head", nil,
		`<meta charset="utf-8">`,
		markup.El("title", nil, html.EscapeString(h.title)),
	)

	body := markup.El("body", nil,
		markup.El("nav", nil, m.Render()),
		markup.El("main", nil, markup.El("h1", nil, html.EscapeString(path))),
	)

	return "<!DOCTYPE html>" + markup.El("html", nil, head, body)
}

// RequestURL returns the absolute URL of r, without query or fragment,
// so links pointing at another host can be told apart.
func RequestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path}
	return u.String()
}
