// Package capture records voice notes: a Recorder drives a Device through
// the Idle and Recording states and sends the finished take as a data URL.
package capture

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	"timebank/domain"
	"timebank/domain/mimetypes"
	"timebank/errors"
)

type State int

const (
	Idle State = iota
	Recording
)

func (s State) String() string {
	if s == Recording {
		return "recording"
	}
	return "idle"
}

// SendFunc delivers a finished voice payload, e.g. ConversationStore.AppendVoice
// bound to a conversation, or the gRPC SendVoice call.
type SendFunc func(ctx context.Context, audioData string) (domain.Message, error)

// Recorder allows one recording at a time.
type Recorder struct {
	mu     sync.Mutex
	log    *slog.Logger
	device Device
	send   SendFunc
	state  State
	handle Handle
	take   *take
}

func NewRecorder(log *slog.Logger, device Device, send SendFunc) *Recorder {
	return &Recorder{log: log, device: device, send: send}
}

// take buffers the chunks of one recording; a late chunk from a previous
// handle can never reach the next take.
type take struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (t *take) write(chunk []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf.Write(chunk)
}

func (t *take) bytes() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return bytes.Clone(t.buf.Bytes())
}

func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start opens the device. On failure the recorder stays Idle and a *errors.CaptureError is returned.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == Recording {
		return errors.ErrAlreadyRecording
	}

	handle, err := r.device.Open(ctx)
	if err != nil {
		r.log.Warn("Capture device unavailable", "error", err)
		return &errors.CaptureError{Err: err}
	}
	t := &take{}
	handle.OnChunk(t.write)
	r.handle, r.take, r.state = handle, t, Recording
	r.log.Debug("Recording started")
	return nil
}

// Stop releases the device, goes back to Idle and sends the take.
// A Close failure returns a *errors.CaptureError and nothing is sent.
func (r *Recorder) Stop(ctx context.Context) (domain.Message, error) {
	r.mu.Lock()
	if r.state != Recording {
		r.mu.Unlock()
		return domain.Message{}, errors.ErrNotRecording
	}
	handle, t := r.handle, r.take
	r.handle, r.take, r.state = nil, nil, Idle
	r.mu.Unlock()

	if err := handle.Close(); err != nil {
		// A take that did not close cleanly may be truncated, it is never sent
		r.log.Warn("Capture device did not close cleanly", "error", err)
		return domain.Message{}, &errors.CaptureError{Err: err}
	}
	recording := t.bytes()
	if len(recording) == 0 {
		return domain.Message{}, errors.ErrEmptyRecording
	}

	payload := mimetypes.EncodeDataURL(recording)
	r.log.Debug("Recording stopped", "bytes", len(recording), "mime", string(mimetypes.Sniff(recording)))
	return r.send(ctx, payload)
}
