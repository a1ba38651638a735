package status

// Kind identifies the exact grammar or policy violation. Every kind is
// terminal: once reported, the parser consumes no further bytes.
type Kind uint8

const (
	KindUnset Kind = iota
	KindRequestLineTooLong
	KindMalformedRequestLine
	KindUnsupportedVersion
	KindInvalidHeaderName
	KindInvalidHeaderValue
	KindHeaderTooLarge
	KindHeaderSectionTooLarge
	KindTooManyHeaders
	KindConflictingBodyFraming
	KindUnsupportedTransferEncoding
	KindInvalidChunkSize
	KindInvalidChunkFraming
	KindBodyTooLarge
	KindUnexpectedEOF
	// KindMisuse isn't a parse error. It is returned on call-order violations
	// which the handle types couldn't rule out statically, e.g. feeding a
	// stale handle after the parser has already advanced past its phase.
	KindMisuse
)

type Error struct {
	Message string
	Kind    Kind
	Code    Code
}

func NewError(kind Kind, code Code, message string) error {
	return Error{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

var (
	ErrRequestLineTooLong           = NewError(KindRequestLineTooLong, RequestURITooLong, "request line is too long")
	ErrMalformedRequestLine         = NewError(KindMalformedRequestLine, BadRequest, "malformed request line")
	ErrUnsupportedVersion           = NewError(KindUnsupportedVersion, HTTPVersionNotSupported, "HTTP version not supported")
	ErrInvalidHeaderName            = NewError(KindInvalidHeaderName, BadRequest, "invalid header name")
	ErrInvalidHeaderValue           = NewError(KindInvalidHeaderValue, BadRequest, "invalid header value")
	ErrHeaderTooLarge               = NewError(KindHeaderTooLarge, RequestHeaderFieldsTooLarge, "header field is too large")
	ErrHeaderSectionTooLarge        = NewError(KindHeaderSectionTooLarge, RequestHeaderFieldsTooLarge, "too large headers section")
	ErrTooManyHeaders               = NewError(KindTooManyHeaders, RequestHeaderFieldsTooLarge, "too many headers")
	ErrConflictingBodyFraming       = NewError(KindConflictingBodyFraming, BadRequest, "conflicting body framing")
	ErrUnsupportedTransferEncoding  = NewError(KindUnsupportedTransferEncoding, NotImplemented, "transfer encoding is not supported")
	ErrInvalidChunkSize             = NewError(KindInvalidChunkSize, BadRequest, "malformed chunk size")
	ErrInvalidChunkFraming          = NewError(KindInvalidChunkFraming, BadRequest, "malformed chunk-encoded data")
	ErrBodyTooLarge                 = NewError(KindBodyTooLarge, RequestEntityTooLarge, "request body is too large")
	ErrUnexpectedEOF                = NewError(KindUnexpectedEOF, NoResponse, "connection closed in the middle of a request")
	ErrParserMisuse                 = NewError(KindMisuse, NoResponse, "operation called out of its phase")
)
