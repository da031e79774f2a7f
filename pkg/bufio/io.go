package bufio

import (
	"bufio"
	"io"
	"net"
)

var (
	// ErrBufferFull err buffer full
	ErrBufferFull = bufio.ErrBufferFull
)

// Reader implements buffering for an io.Reader object.
// Callers parse Buffer().Bytes() in place and call Advance for what they consumed.
type Reader struct {
	rd  io.Reader
	b   *Buffer
	err error
}

// NewReader returns a new Reader reading into b.
func NewReader(rd io.Reader, b *Buffer) *Reader {
	return &Reader{rd: rd, b: b}
}

func (r *Reader) fill() error {
	n, err := r.rd.Read(r.b.buf[r.b.w:])
	r.b.w += n
	if err != nil {
		r.err = err
		return err
	} else if n == 0 {
		return io.ErrNoProgress
	}
	return nil
}

// Advance proxy to buffer advance
func (r *Reader) Advance(n int) {
	r.b.Advance(n)
}

// Buffer will return the reference of local buffer
func (r *Reader) Buffer() *Buffer {
	return r.b
}

// Read performs one read from the underlying reader, growing the buffer
// when it is full. io.EOF with data is reported on the next call.
func (r *Reader) Read() error {
	if r.err != nil {
		return r.err
	}
	if r.b.buffered() == r.b.len() {
		if err := r.b.grow(); err != nil {
			r.err = err
			return err
		}
	}
	if r.b.w == r.b.len() {
		r.b.shrink()
	}
	if err := r.fill(); err != io.EOF {
		return err
	}
	if r.b.buffered() == 0 {
		return io.EOF
	}
	return nil
}

const (
	maxWritevSize = 1024
)

type buffersWriter interface {
	Writev(buf *net.Buffers) (int64, error)
}

// Writer implements buffering for an io.Writer object.
// If an error occurs writing to a Writer, no more data will be
// accepted and all subsequent writes, and Flush, will return the error.
// After all data has been written, the client should call the
// Flush method to guarantee all data has been forwarded to
// the underlying io.Writer.
type Writer struct {
	wr    io.Writer
	bufsp net.Buffers
	bufs  [][]byte
	cnt   int

	err error
}

// NewWriter returns a new Writer.
// Writers that implement Writev, like pkg/net.Conn, get vectored writes.
func NewWriter(wr io.Writer) *Writer {
	return &Writer{wr: wr, bufs: make([][]byte, 0, maxWritevSize)}
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if len(w.bufs) == 0 {
		return nil
	}
	w.bufsp = net.Buffers(w.bufs[:w.cnt])
	var err error
	if bw, ok := w.wr.(buffersWriter); ok {
		_, err = bw.Writev(&w.bufsp)
	} else {
		_, err = w.bufsp.WriteTo(w.wr)
	}
	if err != nil {
		w.err = err
	}
	w.bufs = w.bufs[:0]
	w.cnt = 0
	return w.err
}

// Write queues p to be written on the next Flush.
// p must not be modified until then.
func (w *Writer) Write(p []byte) (err error) {
	if w.err != nil {
		return w.err
	}
	if p == nil {
		return nil
	}
	w.bufs = append(w.bufs, p)
	w.cnt++
	if len(w.bufs) == maxWritevSize {
		err = w.Flush()
	}
	return
}
