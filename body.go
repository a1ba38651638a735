package h1

import "github.com/indigo-web/h1/internal/cursor"

// bodyPrealloc caps the upfront allocation for a buffered fixed-length
// body. The declared Content-Length is attacker-controlled and may never be
// followed by actual bytes, so anything above the cap grows on demand.
const bodyPrealloc = 64 * 1024

// parseFixedBody consumes exactly ContentLength bytes across feedings. The
// byte past the boundary belongs to the next pipelined message and is never
// touched.
func (m *machine) parseFixedBody(cur *cursor.Cursor) (done bool, err error) {
	if m.bodyLeft > 0 {
		if cur.Empty() {
			return false, nil
		}

		if m.body == nil && m.cb.OnBody == nil {
			prealloc := m.bodyLeft
			if prealloc > bodyPrealloc {
				prealloc = bodyPrealloc
			}

			m.body = make([]byte, 0, prealloc)
		}

		take := m.bodyLeft
		if take > int64(cur.Len()) {
			take = int64(cur.Len())
		}

		piece := cur.Take(int(take))
		m.bodyLeft -= int64(len(piece))

		if err = m.sink(piece); err != nil {
			return false, err
		}
	}

	return m.bodyLeft == 0, nil
}
