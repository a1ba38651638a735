package http

import (
	"github.com/indigo-web/h1/http/method"
	"github.com/indigo-web/h1/http/proto"
	"github.com/indigo-web/h1/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request is an HTTP request message as it appeared on the wire. It is
// populated incrementally by the parser and must not be used before the
// parser hands it over as completed.
type Request struct {
	// Method is the verbatim request method token. Extension methods are
	// stored as well, use KnownMethod for classification.
	Method string
	// Target is the verbatim request-target. It is deliberately opaque: no
	// percent-decoding and no path normalization happens here, both belong
	// to the layer routing the request.
	Target string
	// Proto is the protocol version. Only the closed set of proto constants
	// can ever appear here; unrecognized versions fail the parsing instead.
	Proto proto.Proto
	// Headers holds non-normalized header pairs in their arrival order,
	// duplicates preserved. Lookups are case-insensitive. Trailer fields of
	// a chunked body are appended to the same sequence.
	Headers Headers
	// ContentLength is the declared body length. Stays zero for chunked
	// bodies.
	ContentLength int64
	// Chunked reports whether the body was chunk-encoded.
	Chunked bool
	// Body is the complete body payload, decoded if it was chunked. Stays
	// nil when the parser operates in streaming mode.
	Body []byte
}

func NewRequest(headers *kv.Storage) *Request {
	return &Request{
		Headers: headers,
	}
}

// KnownMethod classifies the method token. Extension methods map to
// method.Unknown.
func (r *Request) KnownMethod() method.Method {
	return method.Parse(r.Method)
}
