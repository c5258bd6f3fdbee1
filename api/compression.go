package api

import (
	"compress/gzip"
	"context"
	"mime"
	"net/http"
	"strings"

	"github.com/fulldump/box"
)

var compressibleTypes = map[string]bool{
	"application/json":     true,
	"application/x-ndjson": true,
	"text/plain":           true,
}

// Compression gzips json responses when the client accepts it. The decision
// is taken on the first write, once the handler has set the Content-Type.
func Compression(next box.H) box.H {
	return func(ctx context.Context) {
		r := box.GetRequest(ctx)

		if !acceptsGzip(r) {
			next(ctx)
			return
		}

		c := box.GetBoxContext(ctx)
		w := &gzipResponseWriter{ResponseWriter: c.Response}
		c.Response = w
		defer w.Close()

		next(ctx)
	}
}

func acceptsGzip(r *http.Request) bool {
	for _, encoding := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		encoding, _, _ = strings.Cut(encoding, ";")
		if strings.TrimSpace(encoding) == "gzip" {
			return true
		}
	}
	return false
}

func isCompressible(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return compressibleTypes[mediaType]
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gz      *gzip.Writer
	started bool
}

func (w *gzipResponseWriter) start() {
	if w.started {
		return
	}
	w.started = true

	h := w.Header()
	h.Add("Vary", "Accept-Encoding")
	if h.Get("Content-Encoding") != "" || !isCompressible(h.Get("Content-Type")) {
		return
	}
	h.Set("Content-Encoding", "gzip")
	h.Del("Content-Length")
	w.gz = gzip.NewWriter(w.ResponseWriter)
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.start()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	w.start()
	if w.gz == nil {
		return w.ResponseWriter.Write(b)
	}
	return w.gz.Write(b)
}

func (w *gzipResponseWriter) Close() error {
	if w.gz == nil {
		return nil
	}
	return w.gz.Close()
}
