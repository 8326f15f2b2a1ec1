package core

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/segmentio/encoding/json"
)

type RuntimeContext struct {
	Env string
}

type Router struct {
	config     Config
	env        string
	dispatcher *Dispatcher
	cache      *ResponseCache
}

var NewRouter = func(config Config, ctx RuntimeContext) http.Handler {
	r, err := newRouter(config, ctx, DefaultRoutes())
	if err != nil {
		// DefaultRoutes is static; this only fires if the table itself is broken.
		panic(err)
	}
	return r
}

func newRouter(config Config, ctx RuntimeContext, routes []Route) (*Router, error) {
	dispatcher, err := NewDispatcher(routes)
	if err != nil {
		return nil, err
	}

	r := &Router{
		config:     config,
		env:        ctx.Env,
		dispatcher: dispatcher,
	}

	if config.CacheEnabled {
		cache, err := NewResponseCache(dispatcher.Routes())
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Response cache disabled: %v\n", err)
		} else {
			r.cache = cache
		}
	}

	return r, nil
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	res := r.dispatcher.Handle(path)

	if r.config.DebugHeaders {
		w.Header().Set("X-Cicd-Version", ParsedVersion().String())
		if res.Status == http.StatusOK {
			w.Header().Set("X-Cicd-Route", path)
		} else {
			w.Header().Set("X-Cicd-Route", "none")
		}
	}

	if res.Status != http.StatusOK {
		writeJSON(w, res.Status, res.Body)
		return
	}

	if err := checkMethod(req.Method); err != nil {
		w.Header().Set("Allow", "GET, HEAD")
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "Method Not Allowed"})
		return
	}

	entry, err := r.responseFor(path, res.Body)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal Server Error"})
		return
	}

	body, etag := entry.Body, entry.ETag
	gzipped := acceptsGzip(req)
	if gzipped {
		body, etag = entry.Gzip, entry.GzipETag
	}

	h := w.Header()
	h.Set("Content-Type", jsonMediaType)
	h.Set("ETag", etag)
	h.Set("Vary", "Accept-Encoding")
	if r.env == "dev" {
		h.Set("Cache-Control", "no-store")
	}

	if etagMatches(req.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if gzipped {
		h.Set("Content-Encoding", "gzip")
	}
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(res.Status)

	if req.Method != http.MethodHead {
		w.Write(body)
	}
}

func (r *Router) responseFor(path string, payload map[string]string) (CachedResponse, error) {
	if r.cache != nil {
		if entry, ok := r.cache.Get(path); ok {
			return entry, nil
		}
	}
	return BuildCachedResponse(payload)
}

func checkMethod(method string) error {
	if method != http.MethodGet && method != http.MethodHead {
		return fmt.Errorf("%w: %s", ErrMethodNotAllowed, method)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body map[string]string) {
	data, err := json.Marshal(body)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", jsonMediaType)
	w.WriteHeader(status)
	w.Write(data)
}

// acceptsGzip reports whether Accept-Encoding allows gzip. An explicit gzip
// entry takes precedence over *; q=0 rules a coding out.
func acceptsGzip(r *http.Request) bool {
	explicit, wildcard := -1.0, -1.0
	for _, part := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		coding, params, _ := strings.Cut(part, ";")
		switch strings.ToLower(strings.TrimSpace(coding)) {
		case "gzip", "x-gzip":
			explicit = qValue(params)
		case "*":
			wildcard = qValue(params)
		}
	}
	if explicit >= 0 {
		return explicit > 0
	}
	return wildcard > 0
}

func qValue(params string) float64 {
	for _, param := range strings.Split(params, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		return q
	}
	return 1
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
