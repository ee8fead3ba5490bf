package clone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shredcol/parquetcol/internal/clone"
)

type statsLike struct {
	Min   []byte
	Max   []byte
	Count *int64
}

func TestOfIndependence(t *testing.T) {
	n := int64(3)
	original := &statsLike{Min: []byte("a"), Max: []byte("z"), Count: &n}

	copied, err := clone.Of(original)
	assert.NoError(t, err)
	assert.Equal(t, original, copied)

	copied.Min[0] = 'b'
	*copied.Count = 9

	assert.Equal(t, byte('a'), original.Min[0])
	assert.Equal(t, int64(3), *original.Count)
}
