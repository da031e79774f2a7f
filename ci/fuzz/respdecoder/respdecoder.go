package respdecoder

import (
	"bytes"

	"respfuzz/pkg/mockconn"
	"respfuzz/proto/resp"
)

// Fuzz decodes data in place and through a Reader, both must agree, and a
// decoded frame must survive an encode decode round trip.
func Fuzz(data []byte) int {
	v, n, err := resp.Decode(data)
	if err != nil {
		if !resp.IsProtocolError(err) {
			panic("decode returned a non protocol error: " + err.Error())
		}
		if resp.IsTruncated(err) {
			return 0
		}
		return -1
	}
	if n <= 0 || n > len(data) {
		panic("decode consumed an invalid number of bytes")
	}

	r := resp.NewReader(mockconn.CreateConn(data[:n], 1))
	rv, err := r.ReadValue()
	r.Release()
	if err != nil {
		panic("reader failed on a frame decode accepted: " + err.Error())
	}
	enc := resp.Encode(v)
	if !bytes.Equal(enc, resp.Encode(rv)) {
		panic("reader and decode disagree")
	}
	again, m, err := resp.Decode(enc)
	if err != nil || m != len(enc) {
		panic("re-encoded frame does not decode")
	}
	if !bytes.Equal(resp.Encode(again), enc) {
		panic("encoding is not stable")
	}
	return 1
}
