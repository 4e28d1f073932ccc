package handler

import (
	"bytes"
	"sync"
)

// encodeBufferSize seeds pooled buffers so a typical stats payload fits
// without growing the backing slice.
const encodeBufferSize = 1 << 10

// encodeBuffers recycles the scratch buffers respondJSON encodes into.
var encodeBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, encodeBufferSize))
	},
}

func acquireBuffer() *bytes.Buffer {
	return encodeBuffers.Get().(*bytes.Buffer)
}

// releaseBuffer resets the buffer before returning it to the pool.
func releaseBuffer(buf *bytes.Buffer) {
	buf.Reset()
	encodeBuffers.Put(buf)
}
