package idx_test

import (
	"testing"

	"github.com/gtrskylin3/CourseWebsite/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEqual(t, idx.Zero, id)

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsJunk(t *testing.T) {
	for _, s := range []string{"", "   ", "not-a-ulid", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3Z", "x\nlevel=ERROR"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, s)
	}
}

func TestMonotonic(t *testing.T) {
	ids := make([]idx.ID, 64)
	for i := range ids {
		ids[i] = idx.New()
	}

	// IDs minted within one millisecond still sort by creation.
	for i := 1; i < len(ids); i++ {
		require.Less(t, ids[i-1].String(), ids[i].String())
	}
}
