package service

import (
	"bytes"
	"io"
	"sync"
)

// NotifyFunc receives newly written output as it is produced. Session
// uses it to push incremental output to a subscriber (the API's
// broadcaster) without either depending on the other.
type NotifyFunc func(chunk string)

// OutputWriter wraps a buffer and calls a notify callback on every
// write, so callers choose how (or whether) to fan newly produced
// output out to subscribers.
type OutputWriter struct {
	buffer *bytes.Buffer
	notify NotifyFunc
	mu     sync.Mutex
}

// NewOutputWriter creates a new notifying writer. notify may be nil.
func NewOutputWriter(buffer *bytes.Buffer, notify NotifyFunc) *OutputWriter {
	return &OutputWriter{
		buffer: buffer,
		notify: notify,
	}
}

// Write implements io.Writer.
func (w *OutputWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err = w.buffer.Write(p)
	if err == nil && n > 0 && w.notify != nil {
		w.notify(string(p))
	}
	return n, err
}

// GetBufferAndClear returns the buffer contents and clears it.
func (w *OutputWriter) GetBufferAndClear() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	output := w.buffer.String()
	w.buffer.Reset()
	return output
}

var _ io.Writer = (*OutputWriter)(nil)
