package middlewares

import (
	"net/http"
	"runtime/debug"

	"gest35bi/logger"
	"gest35bi/utils"
)

// Recovery turns a panic into a 500 and logs it with the stack trace. When
// the handler already started its response, only the log is written.
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tw := &headerTracker{ResponseWriter: w}

			defer func() {
				if recovered := recover(); recovered != nil {
					if recovered == http.ErrAbortHandler {
						panic(recovered)
					}

					logger.ForContext(r.Context()).WithFields(logger.Fields{
						"panic":          recovered,
						"method":         r.Method,
						"path":           r.URL.Path,
						"stack_trace":    string(debug.Stack()),
						"response_began": tw.wroteHeader,
					}).Error("unhandled panic")

					if !tw.wroteHeader {
						utils.HandleErrorResponse(tw, "Erro interno no servidor", http.StatusInternalServerError)
					}
				}
			}()

			next.ServeHTTP(tw, r)
		})
	}
}

type headerTracker struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *headerTracker) WriteHeader(code int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *headerTracker) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
