package middleware

import "net/http"

// statusRecorder remembers the final status and the body size a handler
// produced, for the logging, tracing and recovery middleware.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	bytes   int64
	started bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

// WriteHeader forwards every call so net/http can report superfluous ones,
// but records only the first final status. Informational 1xx headers do not
// start the response.
func (s *statusRecorder) WriteHeader(code int) {
	if !s.started && code >= http.StatusOK {
		s.status = code
		s.started = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if !s.started {
		s.status = http.StatusOK
		s.started = true
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += int64(n)
	return n, err
}

// Status is the status the client saw, 200 when the handler wrote nothing.
func (s *statusRecorder) Status() int {
	if !s.started {
		return http.StatusOK
	}
	return s.status
}

// Started reports whether a final status has gone out.
func (s *statusRecorder) Started() bool { return s.started }

// Unwrap lets http.ResponseController reach Flush and deadlines.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
