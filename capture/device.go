//go:generate go run go.uber.org/mock/mockgen -source=device.go -destination=../mocks/mock_capture.go -package=mocks
package capture

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
)

// Device is an audio source such as a microphone.
type Device interface {
	Open(ctx context.Context) (Handle, error)
}

// Handle is an open capture. Chunks are delivered to the OnChunk callback
// until Close returns; Close flushes pending audio and releases the source.
type Handle interface {
	OnChunk(fn func(chunk []byte))
	Close() error
}

const defaultChunkSize = 16 * 1024

// FileDevice replays an audio file as if it were being recorded.
type FileDevice struct {
	Path      string
	ChunkSize int
}

func (f FileDevice) Open(ctx context.Context) (Handle, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	size := f.ChunkSize
	if size <= 0 {
		size = defaultChunkSize
	}
	return &fileHandle{ctx: ctx, file: file, chunkSize: size}, nil
}

type fileHandle struct {
	ctx       context.Context
	file      *os.File
	chunkSize int
	once      sync.Once
	done      chan struct{}
	readErr   error
}

// OnChunk starts the replay; only the first callback is used.
func (h *fileHandle) OnChunk(fn func(chunk []byte)) {
	h.once.Do(func() {
		h.done = make(chan struct{})
		go h.replay(fn)
	})
}

func (h *fileHandle) replay(fn func(chunk []byte)) {
	defer close(h.done)
	buf := make([]byte, h.chunkSize)
	for h.ctx.Err() == nil {
		n, err := h.file.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			fn(chunk)
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			h.readErr = err
			return
		}
	}
	// Canceled before the end of the file: the take is partial
	h.readErr = h.ctx.Err()
}

// Close waits for the replay to reach the end of the file.
// A replay cut short by its context reports the context error.
func (h *fileHandle) Close() error {
	h.once.Do(func() {})
	if h.done != nil {
		<-h.done
	}
	return errors.Join(h.readErr, h.file.Close())
}
