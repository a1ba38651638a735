// Package h1 is an incremental HTTP/1.1 request-message parser. It owns no
// socket and performs no I/O: bytes are fed in fragments of arbitrary size,
// and out comes a structured request, a typed parse error, or a demand for
// more input. Results are identical regardless of how the input was
// fragmented.
//
// The call order is enforced by the types themselves: parsing starts with a
// HeadParser, whose completion yields a BodyParser, whose completion yields
// a CompletedRequest — the only value the finished request can be obtained
// from. There is no way to read a body before the header section is closed,
// nor to take a request before its message boundary. What the handles can't
// seal statically (reviving a stale handle of an already advanced parser)
// fails fast with status.ErrParserMisuse; that contract is load-bearing
// even though unenforced at compile time.
//
// A parser instance is strictly single-message and single-goroutine: it
// holds no global state, so concurrent connections simply use independent
// instances. Pipelined messages on one connection are handled by feeding
// the leftover bytes of a completed message into a fresh parser.
package h1

import (
	"github.com/indigo-web/h1/config"
	"github.com/indigo-web/h1/http"
	"github.com/indigo-web/h1/http/proto"
	"github.com/indigo-web/h1/http/status"
)

// OnBodyCallback receives consecutive pieces of the decoded body payload.
// The piece aliases the fed data and is only valid until the callback
// returns. A non-nil error aborts the parsing and becomes its terminal
// error.
type OnBodyCallback func(piece []byte) error

// Callbacks are optional parsing milestones for streaming consumers.
// Setting OnBody switches the parser into streaming mode: body pieces are
// handed over as they arrive and Request.Body stays nil.
type Callbacks struct {
	OnRequestLine func(method, target string, protocol proto.Proto) error
	OnHeader      func(key, value string) error
	OnBody        OnBodyCallback
}

// HeadParser parses the request line and the header section.
type HeadParser struct {
	m *machine
}

// New returns a parser positioned at the very beginning of a request. A nil
// cfg falls back to config.Default().
func New(cfg *config.Config) *HeadParser {
	if cfg == nil {
		cfg = config.Default()
	}

	return &HeadParser{m: newMachine(cfg)}
}

// Use registers parsing milestone callbacks.
func (p *HeadParser) Use(cb Callbacks) *HeadParser {
	p.m.cb = cb
	return p
}

// Feed consumes the next input fragment. A nil BodyParser together with a
// nil error means the head isn't complete yet and more input is wanted.
// Once the header section is closed, the body framing is already decided
// and a BodyParser is returned along with the fragment's unconsumed rest,
// which must be fed to it.
func (p *HeadParser) Feed(data []byte) (*BodyParser, []byte, error) {
	done, rest, err := p.m.feedHead(data)
	if err != nil {
		return nil, nil, err
	}
	if !done {
		return nil, nil, nil
	}

	return &BodyParser{m: p.m}, rest, nil
}

// Close tells the parser the transport reached its end of stream. Anywhere
// mid-message this is status.ErrUnexpectedEOF; before the first fed byte it
// is a clean shutdown.
func (p *HeadParser) Close() error {
	return p.m.closed()
}

// BodyParser consumes the message body according to the framing decided by
// the head.
type BodyParser struct {
	m *machine
}

// Framing reports the selected body delimitation strategy.
func (p *BodyParser) Framing() Framing {
	return p.m.framing
}

// Feed consumes the next input fragment. A nil CompletedRequest together
// with a nil error means the body isn't complete yet. On completion the
// leftover is returned as well: those bytes belong to the next pipelined
// message and were left untouched.
func (p *BodyParser) Feed(data []byte) (*CompletedRequest, []byte, error) {
	if p.m.delivered {
		return nil, nil, status.ErrParserMisuse
	}

	done, rest, err := p.m.feedBody(data)
	if err != nil {
		return nil, nil, err
	}
	if !done {
		return nil, nil, nil
	}

	p.m.delivered = true

	return &CompletedRequest{m: p.m}, rest, nil
}

// Close tells the parser the transport reached its end of stream. Unless
// the message boundary was already reached, this is status.ErrUnexpectedEOF.
func (p *BodyParser) Close() error {
	return p.m.closed()
}

// CompletedRequest is the proof a whole message was parsed, and the only
// source of the finished request.
type CompletedRequest struct {
	m *machine
}

// Request hands the parsed request over. The parser itself is done at this
// point and holds no further claim on it.
func (c *CompletedRequest) Request() *http.Request {
	return c.m.request
}
