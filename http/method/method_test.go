package method

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, known := range List {
		require.Equal(t, known, Parse(known.String()))
	}

	for _, sample := range []string{"", "get", "PURGE", "GETS"} {
		require.Equal(t, Unknown, Parse(sample), sample)
	}
}
