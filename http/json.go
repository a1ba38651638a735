package http

import (
	"strings"

	"github.com/indigo-web/utils/strcomp"
	json "github.com/json-iterator/go"
)

const mimeJSON = "application/json"

// JSON decodes the buffered request body into the model. The
// request must carry an application/json Content-Type, otherwise
// ErrNonJSONContentType is returned without touching the model.
func (r *Request) JSON(model any) error {
	contentType := r.Headers.Value("content-type")
	if semicolon := strings.IndexByte(contentType, ';'); semicolon != -1 {
		contentType = contentType[:semicolon]
	}

	if !strcomp.EqualFold(strings.TrimSpace(contentType), mimeJSON) {
		return ErrNonJSONContentType
	}

	iterator := json.ConfigDefault.BorrowIterator(r.Body)
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}
