package status

type Code uint16

// The subset of IANA-registered status codes a request parser can ever be
// the reason for. The parser never builds a response itself; the code is a
// hint for the transport layer deciding what to answer before closing.
const (
	// NoResponse marks conditions which can't be answered at all, e.g. the
	// peer disconnecting mid-request or API misuse.
	NoResponse Code = 0

	BadRequest                  Code = 400
	RequestEntityTooLarge       Code = 413
	RequestURITooLong           Code = 414
	RequestHeaderFieldsTooLarge Code = 431
	NotImplemented              Code = 501
	HTTPVersionNotSupported     Code = 505
)
