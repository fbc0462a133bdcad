package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler runs on its own goroutine
// against a buffered writer and a context carrying the deadline. If the
// deadline passes first, a 504 problem response is sent immediately and the
// buffered output is discarded. Timeout still waits for the handler to
// return, so nothing outlives the request, and a handler panic is re-raised
// on the serving goroutine for Recovery to see.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			tw := &timeoutWriter{w: w}
			done := make(chan any, 1)

			go func() {
				defer func() { done <- recover() }()
				next.ServeHTTP(tw, r.WithContext(ctx))
			}()

			var panicked any
			select {
			case panicked = <-done:
				if panicked == nil {
					tw.mu.Lock()
					tw.flush()
					tw.mu.Unlock()
				}
			case <-ctx.Done():
				tw.mu.Lock()
				tw.timedOut = true
				dto.WriteErrorResponse(w, r, fmt.Errorf("request took longer than %s: %w", d, ctx.Err()))
				tw.mu.Unlock()
				_ = http.NewResponseController(w).Flush()
				panicked = <-done
			}

			if panicked != nil {
				panic(panicked)
			}
		})
	}
}

// timeoutWriter buffers the handler's response until Timeout decides
// whether to send it. Writes after a timeout are dropped.
type timeoutWriter struct {
	w           http.ResponseWriter
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	statusCode  int
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.header == nil {
		tw.header = make(http.Header)
	}
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.statusCode = http.StatusOK
		tw.wroteHeader = true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.wroteHeader || tw.timedOut {
		return
	}
	tw.statusCode = code
	tw.wroteHeader = true
}

// flush copies the buffered response to the underlying writer. The caller
// holds tw.mu.
func (tw *timeoutWriter) flush() {
	if tw.header != nil {
		maps.Copy(tw.w.Header(), tw.header)
	}
	if tw.wroteHeader {
		tw.w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = tw.w.Write(tw.buf)
	}
}
