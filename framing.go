package h1

import (
	"strings"

	"github.com/indigo-web/h1/http/status"
	"github.com/indigo-web/h1/internal/uintconv"
	"github.com/indigo-web/utils/strcomp"
)

// Framing is the body delimitation strategy of a request. Exactly one is
// ever selected per message.
type Framing uint8

const (
	// FramingNone stands for a zero-length body: neither Content-Length nor
	// Transfer-Encoding was present.
	FramingNone Framing = iota
	// FramingFixedLength delimits the body by the Content-Length value.
	FramingFixedLength
	// FramingChunked delimits the body by chunk markers, terminated by a
	// zero-length chunk and an optional trailer section.
	FramingChunked
)

func (f Framing) String() string {
	switch f {
	case FramingNone:
		return "none"
	case FramingFixedLength:
		return "fixed-length"
	case FramingChunked:
		return "chunked"
	default:
		return "unknown"
	}
}

// decideFraming runs exactly once per message, right after the header
// section is closed. The Content-Length/Transfer-Encoding conflict is the
// classic request smuggling vector, so any ambiguity between the two is
// rejected instead of silently preferring one.
func (m *machine) decideFraming() error {
	headers := m.request.Headers

	// Values reuses its result slice across calls, so the transfer-encoding
	// occurrences must be fully reduced before content-length is looked up.
	var (
		encodingSeen bool
		lastCoding   string
	)

	for _, value := range headers.Values("transfer-encoding") {
		encodingSeen = true

		for len(value) > 0 {
			var token string
			if comma := strings.IndexByte(value, ','); comma == -1 {
				token, value = value, ""
			} else {
				token, value = value[:comma], value[comma+1:]
			}

			if token = strings.Trim(token, " \t"); len(token) > 0 {
				lastCoding = token
			}
		}
	}

	contentLengths := headers.Values("content-length")

	if encodingSeen {
		if len(contentLengths) > 0 {
			return status.ErrConflictingBodyFraming
		}

		if !strcomp.EqualFold(lastCoding, "chunked") {
			return status.ErrUnsupportedTransferEncoding
		}

		m.framing = FramingChunked
		m.request.Chunked = true
		m.phase = phaseBodyChunked

		return nil
	}

	if len(contentLengths) == 0 {
		m.framing = FramingNone
		m.phase = phaseComplete

		return nil
	}

	for _, value := range contentLengths[1:] {
		if value != contentLengths[0] {
			return status.ErrConflictingBodyFraming
		}
	}

	// a Content-Length whose value cannot be parsed is a framing ambiguity,
	// not a recoverable default
	length, ok := uintconv.Parse(contentLengths[0])
	if !ok {
		return status.ErrConflictingBodyFraming
	}

	if length > m.cfg.Body.MaxSize {
		return status.ErrBodyTooLarge
	}

	m.framing = FramingFixedLength
	m.request.ContentLength = length
	m.bodyLeft = length
	m.phase = phaseBodyFixed

	return nil
}
