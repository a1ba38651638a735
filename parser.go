package h1

import (
	"bytes"

	"github.com/indigo-web/h1/config"
	"github.com/indigo-web/h1/http"
	"github.com/indigo-web/h1/http/proto"
	"github.com/indigo-web/h1/http/status"
	"github.com/indigo-web/h1/internal/cursor"
	"github.com/indigo-web/h1/kv"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"
)

type phase uint8

const (
	phaseRequestLine phase = iota + 1
	phaseHeaders
	phaseBodyFixed
	phaseBodyChunked
	phaseTrailers
	phaseComplete
	phaseFailed
)

// machine is the parser itself. It is driven strictly forward through the
// phases above; the public handles are nothing but phase-scoped views into
// it. All the intermediate state lives here, never on the call stack, so
// feeding may resume at an arbitrary byte boundary.
type machine struct {
	cfg     *config.Config
	cb      Callbacks
	request *http.Request

	phase phase
	err   error
	begun bool

	// lineBuff stashes an incomplete request line, fieldsBuff accumulates
	// field lines of both the header and the trailer sections. Stored
	// header strings alias fieldsBuff memory, which stays alive as long as
	// the request does.
	lineBuff    *buffer.Buffer
	fieldsBuff  *buffer.Buffer
	headersSeen int

	framing  Framing
	bodyLeft int64
	body     []byte
	chunked  chunkedParser

	delivered bool
}

func newMachine(cfg *config.Config) *machine {
	return &machine{
		cfg:        cfg,
		request:    http.NewRequest(kv.NewPrealloc(cfg.Headers.NumberPrealloc)),
		phase:      phaseRequestLine,
		lineBuff:   buffer.New(cfg.RequestLine.BufferPrealloc, cfg.RequestLine.MaxLength),
		fieldsBuff: buffer.New(cfg.Headers.BufferPrealloc, cfg.Headers.MaxSectionLength),
		chunked:    newChunkedParser(),
	}
}

// feedHead consumes the request line and the header section. done reports
// that the header section is closed and the body framing is decided; rest
// holds whatever bytes were left unconsumed past the head.
func (m *machine) feedHead(data []byte) (done bool, rest []byte, err error) {
	if m.err != nil {
		return false, nil, m.err
	}

	if len(data) > 0 {
		m.begun = true
	}

	cur := cursor.New(data)

	for {
		switch m.phase {
		case phaseRequestLine:
			done, err := m.parseRequestLine(&cur)
			if err != nil {
				return false, nil, m.fail(err)
			}
			if !done {
				return false, nil, nil
			}

			m.phase = phaseHeaders
		case phaseHeaders:
			done, err := m.parseFields(&cur)
			if err != nil {
				return false, nil, m.fail(err)
			}
			if !done {
				return false, nil, nil
			}

			if err = m.decideFraming(); err != nil {
				return false, nil, m.fail(err)
			}

			return true, cur.Flush(), nil
		default:
			return false, nil, status.ErrParserMisuse
		}
	}
}

// feedBody consumes body bytes according to the framing decided by the
// head. done reports the message boundary; rest holds the bytes belonging
// to the next pipelined message.
func (m *machine) feedBody(data []byte) (done bool, rest []byte, err error) {
	if m.err != nil {
		return false, nil, m.err
	}

	cur := cursor.New(data)

	for {
		switch m.phase {
		case phaseBodyFixed:
			done, err := m.parseFixedBody(&cur)
			if err != nil {
				return false, nil, m.fail(err)
			}
			if !done {
				return false, nil, nil
			}

			m.complete()
		case phaseBodyChunked:
			trailers, err := m.parseChunkedBody(&cur)
			if err != nil {
				return false, nil, m.fail(err)
			}
			if !trailers {
				return false, nil, nil
			}

			m.phase = phaseTrailers
		case phaseTrailers:
			done, err := m.parseFields(&cur)
			if err != nil {
				return false, nil, m.fail(err)
			}
			if !done {
				return false, nil, nil
			}

			m.complete()
		case phaseComplete:
			return true, cur.Flush(), nil
		default:
			return false, nil, status.ErrParserMisuse
		}
	}
}

func (m *machine) parseRequestLine(cur *cursor.Cursor) (done bool, err error) {
	seg, found := cur.Scan('\n')
	if !found {
		if !m.lineBuff.Append(cur.Flush()) {
			return false, status.ErrRequestLineTooLong
		}

		return false, nil
	}

	if !m.lineBuff.Append(seg) {
		return false, status.ErrRequestLineTooLong
	}

	line := m.lineBuff.Finish()
	if len(line) == 0 || line[len(line)-1] != '\r' {
		return false, status.ErrMalformedRequestLine
	}

	line = line[:len(line)-1]

	// the line is split on single spaces into exactly three fields. Double
	// spaces produce an empty field and are thereby rejected, too.
	methodEnd := bytes.IndexByte(line, ' ')
	if methodEnd == -1 {
		return false, status.ErrMalformedRequestLine
	}

	rawMethod, rest := line[:methodEnd], line[methodEnd+1:]
	targetEnd := bytes.IndexByte(rest, ' ')
	if targetEnd == -1 {
		return false, status.ErrMalformedRequestLine
	}

	rawTarget, rawProto := rest[:targetEnd], rest[targetEnd+1:]

	if !isToken(rawMethod) || len(rawTarget) == 0 || bytes.IndexByte(rawProto, ' ') != -1 {
		return false, status.ErrMalformedRequestLine
	}

	protocol := proto.FromBytes(rawProto)
	if protocol == proto.Unknown {
		return false, status.ErrUnsupportedVersion
	}

	m.request.Method = uf.B2S(rawMethod)
	m.request.Target = uf.B2S(rawTarget)
	m.request.Proto = protocol

	if m.cb.OnRequestLine != nil {
		if err = m.cb.OnRequestLine(m.request.Method, m.request.Target, protocol); err != nil {
			return false, err
		}
	}

	return true, nil
}

// parseFields processes one field line per iteration until the empty
// CRLF-only line closing the section. It serves both the header section and
// the trailer one: limits and the destination sequence are shared.
func (m *machine) parseFields(cur *cursor.Cursor) (done bool, err error) {
	for {
		seg, found := cur.Scan('\n')
		if !found {
			rest := cur.Flush()
			if len(rest) == 0 {
				return false, nil
			}

			if !m.fieldsBuff.Append(rest) {
				return false, status.ErrHeaderSectionTooLarge
			}

			if m.fieldsBuff.SegmentLength() > m.cfg.Headers.MaxFieldLength {
				return false, status.ErrHeaderTooLarge
			}

			return false, nil
		}

		if !m.fieldsBuff.Append(seg) {
			return false, status.ErrHeaderSectionTooLarge
		}

		if m.fieldsBuff.SegmentLength() > m.cfg.Headers.MaxFieldLength {
			return false, status.ErrHeaderTooLarge
		}

		line := m.fieldsBuff.Finish()
		if len(line) == 1 && line[0] == '\r' {
			return true, nil
		}

		if len(line) == 0 || line[len(line)-1] != '\r' {
			// a field line terminated by a lone LF
			return false, status.ErrInvalidHeaderValue
		}

		line = line[:len(line)-1]

		if err = m.parseFieldLine(line); err != nil {
			return false, err
		}
	}
}

func (m *machine) parseFieldLine(line []byte) error {
	if line[0] == ' ' || line[0] == '\t' {
		// obsolete line folding: correctness over legacy leniency
		return status.ErrInvalidHeaderValue
	}

	if m.headersSeen++; m.headersSeen > m.cfg.Headers.MaxNumber {
		return status.ErrTooManyHeaders
	}

	colon := bytes.IndexByte(line, ':')
	if colon == -1 {
		return status.ErrInvalidHeaderName
	}

	name := line[:colon]
	if !isToken(name) {
		// covers empty names and whitespace before the colon as well
		return status.ErrInvalidHeaderName
	}

	value := trimOWS(line[colon+1:])
	if !isFieldValue(value) {
		return status.ErrInvalidHeaderValue
	}

	key, val := uf.B2S(name), uf.B2S(value)
	m.request.Headers.Add(key, val)

	if m.cb.OnHeader != nil {
		return m.cb.OnHeader(key, val)
	}

	return nil
}

// sink routes a piece of body payload either to the streaming callback or
// to the accumulating buffer. Streamed pieces alias the fed data and are
// only valid until the callback returns.
func (m *machine) sink(piece []byte) error {
	if m.cb.OnBody != nil {
		return m.cb.OnBody(piece)
	}

	m.body = append(m.body, piece...)

	return nil
}

func (m *machine) complete() {
	if m.cb.OnBody == nil {
		m.request.Body = m.body
	}

	m.phase = phaseComplete
}

func (m *machine) fail(err error) error {
	m.phase = phaseFailed
	m.err = err

	return err
}

// closed is the transport's end-of-stream notification. Mid-message it is
// an error; on a clean message boundary it is not.
func (m *machine) closed() error {
	if m.err != nil {
		return m.err
	}

	switch {
	case m.phase == phaseComplete:
		return nil
	case m.phase == phaseRequestLine && !m.begun:
		// the peer disconnected without starting a request
		return nil
	default:
		return m.fail(status.ErrUnexpectedEOF)
	}
}
