// Package responsewriter records the status and size of an HTTP response for
// the access log, metrics and tracing middlewares.
package responsewriter

import (
	"net/http"
)

// Recorder wraps an http.ResponseWriter and remembers what was sent.
// Only the first status written is kept, matching net/http.
type Recorder struct {
	http.ResponseWriter
	status  int
	bytes   int64
	written bool
}

// Wrap returns a Recorder for w. When w is already a Recorder it is reused,
// so stacked middlewares observe the same response.
func Wrap(w http.ResponseWriter) *Recorder {
	if rec, ok := w.(*Recorder); ok {
		return rec
	}
	return &Recorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *Recorder) WriteHeader(status int) {
	if r.written {
		return
	}
	r.status = status
	r.written = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *Recorder) Write(b []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += int64(n)
	return n, err
}

// Flush forwards to the underlying writer when it supports flushing.
func (r *Recorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		if !r.written {
			r.WriteHeader(http.StatusOK)
		}
		f.Flush()
	}
}

// Status is the response status; 200 until something else is written.
func (r *Recorder) Status() int { return r.status }

// BytesWritten counts body bytes passed to Write.
func (r *Recorder) BytesWritten() int64 { return r.bytes }

// Written reports whether the header has been sent.
func (r *Recorder) Written() bool { return r.written }

// Unwrap exposes the underlying writer to http.ResponseController.
func (r *Recorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }
