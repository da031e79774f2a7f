package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
)

// stdoutHandler stdout log handler
type stdoutHandler struct {
	out *stdlog.Logger
}

// NewStdHandler create a stdout log handler
func NewStdHandler() Handler {
	return NewWriterHandler(os.Stdout)
}

// NewWriterHandler logs into w with the stdout format.
func NewWriterHandler(w io.Writer) Handler {
	return &stdoutHandler{out: stdlog.New(w, "", stdlog.LstdFlags|stdlog.Lshortfile)}
}

// Log stdout loging
func (h *stdoutHandler) Log(lv Level, msg string) {
	_ = h.out.Output(5, fmt.Sprintf("[%s] %s", lv, msg))
}

// Close stdout loging
func (h *stdoutHandler) Close() (err error) {
	return
}
