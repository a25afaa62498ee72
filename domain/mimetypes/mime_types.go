package mimetypes

import (
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"timebank/errors"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown MIME = "unknown"

	AudioWebM MIME = "audio/webm"
	AudioOgg  MIME = "audio/ogg"
	AudioMPEG MIME = "audio/mpeg"
	AudioWAV  MIME = "audio/wav"
	AudioMP4  MIME = "audio/mp4"
	AudioAAC  MIME = "audio/aac"

	// DefaultRecording is the container browsers record voice notes in.
	DefaultRecording = AudioWebM
)

const dataURLBase64 = ";base64,"

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

func IsAudio(m MIME) bool {
	return strings.HasPrefix(string(m), "audio/")
}

// Sniff returns the audio type of a recording, falling back to DefaultRecording
// when the content is not recognized as audio (webm voice notes sniff as video/webm).
func Sniff(recording []byte) MIME {
	mt, _, err := mime.ParseMediaType(mimetype.Detect(recording).String())
	if err != nil || !IsAudio(MIME(mt)) {
		return DefaultRecording
	}
	return MIME(mt)
}

// EncodeDataURL turns a raw recording into a self-contained "data:audio/...;base64," payload.
func EncodeDataURL(recording []byte) string {
	return fmt.Sprintf("data:%s%s%s", Sniff(recording), dataURLBase64,
		base64.StdEncoding.EncodeToString(recording))
}

// ParseDataURL validates an audio data URL and returns its type and decoded bytes.
func ParseDataURL(dataURL string) (MIME, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return Unknown, nil, fmt.Errorf("%w: missing data scheme", errors.ErrInvalidAudioPayload)
	}
	mediaType, encoded, ok := strings.Cut(rest, dataURLBase64)
	if !ok {
		return Unknown, nil, fmt.Errorf("%w: payload is not base64", errors.ErrInvalidAudioPayload)
	}
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil || !IsAudio(MIME(mt)) {
		return Unknown, nil, fmt.Errorf("%w: %q is not an audio type", errors.ErrInvalidAudioPayload, mediaType)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Unknown, nil, fmt.Errorf("%w: %v", errors.ErrInvalidAudioPayload, err)
	}
	if len(raw) == 0 {
		return Unknown, nil, fmt.Errorf("%w: empty recording", errors.ErrInvalidAudioPayload)
	}
	return MIME(mt), raw, nil
}
