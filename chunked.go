package h1

import (
	"github.com/indigo-web/h1/http/status"
	"github.com/indigo-web/h1/internal/cursor"
	"github.com/indigo-web/h1/internal/hexconv"
)

type chunkedState uint8

const (
	eChunkSize chunkedState = iota + 1
	eChunkExt
	eChunkSizeLF
	eChunkData
	eChunkDataCR
	eChunkDataLF
)

// maxChunkSizeDigits sets the implicit limit of a single chunk length to
// 4GiB, which also keeps the accumulated value far from overflowing int64.
const maxChunkSizeDigits = 8

type chunkedParser struct {
	state      chunkedState
	sizeDigits uint8
	chunkSize  int64
	received   int64
}

func newChunkedParser() chunkedParser {
	return chunkedParser{state: eChunkSize}
}

type chunkEvent uint8

const (
	// chunkPending means the input ran out mid-element.
	chunkPending chunkEvent = iota
	// chunkPiece carries a piece of decoded chunk data.
	chunkPiece
	// chunkTrailers signals the zero-length chunk: the data is over and the
	// trailer section follows.
	chunkTrailers
)

// next advances the chunk machine until it produces a piece of data, runs
// out of input, or reaches the trailer section. The total decoded length is
// checked against maxBodySize the moment a chunk size is known, before any
// of its data gets buffered.
func (c *chunkedParser) next(cur *cursor.Cursor, maxBodySize int64) (chunkEvent, []byte, error) {
	for {
		switch c.state {
		case eChunkSize:
			for {
				if cur.Empty() {
					return chunkPending, nil, nil
				}

				char := cur.Next()
				if val := hexconv.Halfbyte[char]; val != hexconv.Invalid {
					if c.sizeDigits++; c.sizeDigits > maxChunkSizeDigits {
						return chunkPending, nil, status.ErrInvalidChunkSize
					}

					c.chunkSize = c.chunkSize<<4 | int64(val)
					continue
				}

				if c.sizeDigits == 0 {
					return chunkPending, nil, status.ErrInvalidChunkSize
				}

				switch char {
				case '\r':
					c.state = eChunkSizeLF
				case ';':
					c.state = eChunkExt
				default:
					return chunkPending, nil, status.ErrInvalidChunkSize
				}

				break
			}
		case eChunkExt:
			// chunk extensions aren't supported: scanned for the
			// terminating CRLF, otherwise ignored verbatim
			for {
				if cur.Empty() {
					return chunkPending, nil, nil
				}

				switch cur.Next() {
				case '\r':
					c.state = eChunkSizeLF
				case '\n':
					return chunkPending, nil, status.ErrInvalidChunkSize
				default:
					continue
				}

				break
			}
		case eChunkSizeLF:
			if cur.Empty() {
				return chunkPending, nil, nil
			}

			if cur.Next() != '\n' {
				return chunkPending, nil, status.ErrInvalidChunkSize
			}

			if c.received+c.chunkSize > maxBodySize {
				return chunkPending, nil, status.ErrBodyTooLarge
			}

			if c.chunkSize == 0 {
				c.state = eChunkSize
				c.sizeDigits = 0

				return chunkTrailers, nil, nil
			}

			c.received += c.chunkSize
			c.state = eChunkData
		case eChunkData:
			if cur.Empty() {
				return chunkPending, nil, nil
			}

			take := c.chunkSize
			if take > int64(cur.Len()) {
				take = int64(cur.Len())
			}

			piece := cur.Take(int(take))
			c.chunkSize -= int64(len(piece))

			if c.chunkSize == 0 {
				c.state = eChunkDataCR
				c.sizeDigits = 0
			}

			return chunkPiece, piece, nil
		case eChunkDataCR:
			if cur.Empty() {
				return chunkPending, nil, nil
			}

			if cur.Next() != '\r' {
				return chunkPending, nil, status.ErrInvalidChunkFraming
			}

			c.state = eChunkDataLF
		case eChunkDataLF:
			if cur.Empty() {
				return chunkPending, nil, nil
			}

			if cur.Next() != '\n' {
				return chunkPending, nil, status.ErrInvalidChunkFraming
			}

			c.state = eChunkSize
		default:
			panic("BUG: chunked parser: unexpected state")
		}
	}
}

// parseChunkedBody drains the chunk sequence. trailers reports that the
// zero-length chunk was consumed and the trailer section begins.
func (m *machine) parseChunkedBody(cur *cursor.Cursor) (trailers bool, err error) {
	for {
		event, piece, err := m.chunked.next(cur, m.cfg.Body.MaxSize)
		if err != nil {
			return false, err
		}

		switch event {
		case chunkPending:
			return false, nil
		case chunkPiece:
			if err = m.sink(piece); err != nil {
				return false, err
			}
		case chunkTrailers:
			return true, nil
		}
	}
}
