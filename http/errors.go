package http

import "errors"

var ErrNonJSONContentType = errors.New("the request carries a non-JSON Content-Type")
