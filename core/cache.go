package core

import (
	"bytes"
	"compress/gzip"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/segmentio/encoding/json"
	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
)

const jsonMediaType = "application/json"

var jsonMinifier = newJSONMinifier()

func newJSONMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(jsonMediaType, minjson.Minify)
	return m
}

// CachedResponse is the wire form of a route payload.
type CachedResponse struct {
	Body     []byte
	Gzip     []byte
	ETag     string
	GzipETag string
}

// Files written per route by SaveCachedJSON.
const (
	snapshotFile = "index.json"
	wireFile     = "index.min.json"
	wireGzipFile = "index.min.json.gz"
)

var exportFiles = []string{snapshotFile, wireFile, wireGzipFile}

// ResponseCache holds the encoded response of every route. It is built once
// and only read afterwards.
type ResponseCache struct {
	entries map[string]CachedResponse
}

func NewResponseCache(routes []Route) (*ResponseCache, error) {
	c := &ResponseCache{entries: make(map[string]CachedResponse, len(routes))}
	for _, route := range routes {
		entry, err := BuildCachedResponse(route.Payload)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", route.Path, err)
		}
		c.entries[route.Path] = entry
	}
	return c, nil
}

func (c *ResponseCache) Get(path string) (CachedResponse, bool) {
	entry, ok := c.entries[path]
	return entry, ok
}

func BuildCachedResponse(payload map[string]string) (CachedResponse, error) {
	body, err := EncodePayload(payload)
	if err != nil {
		return CachedResponse{}, err
	}

	gz, err := gzipBytes(body)
	if err != nil {
		return CachedResponse{}, fmt.Errorf("gzip payload: %w", err)
	}

	etag := hashBytes(body)
	return CachedResponse{
		Body:     body,
		Gzip:     gz,
		ETag:     `"` + etag + `"`,
		GzipETag: `"` + etag + `-gzip"`,
	}, nil
}

// IndentPayload renders payload as human-readable JSON, the form kept in
// exported snapshots.
func IndentPayload(payload map[string]string) ([]byte, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return data, nil
}

// EncodePayload renders payload in its wire form: the indented snapshot
// with insignificant whitespace stripped.
func EncodePayload(payload map[string]string) ([]byte, error) {
	pretty, err := IndentPayload(payload)
	if err != nil {
		return nil, err
	}
	return minifyJSON(pretty)
}

func minifyJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := jsonMinifier.Minify(jsonMediaType, &buf, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("minify payload: %w", err)
	}
	return buf.Bytes(), nil
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func hashBytes(data []byte) string {
	h := md5.Sum(data)
	return hex.EncodeToString(h[:])
}

// RouteKey maps a route path to its directory under the output dir.
// The root route maps to the output dir itself.
func RouteKey(path string) string {
	return strings.Trim(path, "/")
}

// GetCachedJSON returns the exported wire form for routeKey.
func GetCachedJSON(config Config, routeKey string) ([]byte, bool) {
	content, err := os.ReadFile(filepath.Join(config.OutputDir, routeKey, wireFile))
	if err != nil {
		return nil, false
	}
	return content, true
}

// SaveCachedJSON exports payload under <outputDir>/<routeKey>: index.json
// is the indented snapshot, index.min.json(.gz) the bytes served on the wire.
func SaveCachedJSON(config Config, routeKey string, payload map[string]string) error {
	pretty, err := IndentPayload(payload)
	if err != nil {
		return err
	}
	wire, err := minifyJSON(pretty)
	if err != nil {
		return err
	}
	gz, err := gzipBytes(wire)
	if err != nil {
		return err
	}

	outDir := filepath.Join(config.OutputDir, routeKey)
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return err
	}

	files := map[string][]byte{
		snapshotFile: append(pretty, '\n'),
		wireFile:     wire,
		wireGzipFile: gz,
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(outDir, name), data, 0644); err != nil {
			return err
		}
	}
	return nil
}

// RemoveCachedJSON deletes the export files of routeKey and reports whether
// any existed. Other files in the directory are left alone; a non-root route
// directory is removed once empty.
func RemoveCachedJSON(config Config, routeKey string) (bool, error) {
	outDir := filepath.Join(config.OutputDir, routeKey)

	removed := false
	for _, name := range exportFiles {
		err := os.Remove(filepath.Join(outDir, name))
		switch {
		case err == nil:
			removed = true
		case !os.IsNotExist(err):
			return removed, err
		}
	}

	if routeKey != "" {
		if entries, err := os.ReadDir(outDir); err == nil && len(entries) == 0 {
			if err := os.Remove(outDir); err != nil {
				return removed, err
			}
		}
	}
	return removed, nil
}
