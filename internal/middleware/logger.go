package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Logger writes one access log line per request. 5xx responses log at
// error level and 4xx at warn.
func Logger(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)

			var ev *zerolog.Event
			switch {
			case rw.status >= http.StatusInternalServerError:
				ev = l.Error()
			case rw.status >= http.StatusBadRequest:
				ev = l.Warn()
			default:
				ev = l.Info()
			}
			ev = ev.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.status).
				Int("bytes", rw.bytes).
				Dur("duration", time.Since(start)).
				Str("ip", ClientIP(r))
			if rid := RequestIDFromContext(r.Context()); rid != "" {
				ev = ev.Str("request_id", rid)
			}
			if country := CountryFromContext(r.Context()); country != "" {
				ev = ev.Str("country", country)
			}
			ev.Msg("http request")
		})
	}
}
