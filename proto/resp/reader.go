package resp

import (
	"io"

	"respfuzz/pkg/bufio"
)

const defaultBufferSize = 4096

// Reader decodes frames from a stream.
type Reader struct {
	br *bufio.Reader
	// need is the buffered length below which decoding cannot succeed.
	need int
}

// NewReader returns a Reader on top of rd with a pooled buffer.
func NewReader(rd io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(rd, bufio.Get(defaultBufferSize))}
}

// ReadValue blocks until one complete frame is buffered and decodes it.
// A stream that ends inside a frame returns io.ErrUnexpectedEOF.
//
// A truncated frame is decoded again from its start once more data
// arrives. A pending bulk string is skipped until its declared length is
// buffered, an array of many small elements arriving in small chunks is
// still re-decoded per chunk.
func (r *Reader) ReadValue() (Value, error) {
	for {
		data := r.br.Buffer().Bytes()
		if len(data) > 0 && len(data) >= r.need {
			v, n, err := Decode(data)
			if err == nil {
				r.need = 0
				r.br.Advance(n)
				return v, nil
			}
			pe, ok := err.(*ProtocolError)
			if !ok || !pe.Truncated {
				r.need = 0
				return Value{}, err
			}
			r.need = pe.Need
		}
		if err := r.br.Read(); err != nil {
			if err == io.EOF && r.Buffered() > 0 {
				return Value{}, io.ErrUnexpectedEOF
			}
			return Value{}, err
		}
	}
}

// Buffered returns the number of bytes read but not decoded yet.
func (r *Reader) Buffered() int {
	return len(r.br.Buffer().Bytes())
}

// Release returns the buffer to the pool, the Reader must not be used after.
func (r *Reader) Release() {
	bufio.Put(r.br.Buffer())
}

// Writer encodes frames into a buffered, vectored writer.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter returns a Writer on top of wr.
func NewWriter(wr io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(wr)}
}

// WriteCommand queues argv as a multibulk request.
func (w *Writer) WriteCommand(argv ...string) error {
	return w.bw.Write(EncodeCommand(argv...))
}

// Flush sends everything queued.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
