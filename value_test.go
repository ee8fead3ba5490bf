package parquetcol

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDValueRoundTrip(t *testing.T) {
	id := uuid.New()

	v := UUIDValue(id)
	assert.Equal(t, FixedLenByteArray, v.Kind)
	assert.Equal(t, id, v.UUID())
}
