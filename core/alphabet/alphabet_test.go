package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index('A'))
	assert.Equal(t, 1, Index('C'))
	assert.Equal(t, 2, Index('G'))
	assert.Equal(t, 3, Index('T'))
	assert.Equal(t, -1, Index('N'))
	assert.Equal(t, -1, Index('a'))
	assert.Equal(t, -1, Index(0))
}

func TestValidatePattern(t *testing.T) {
	assert.ErrorIs(t, ValidatePattern(nil), ErrEmptyPattern)
	assert.ErrorIs(t, ValidatePattern([]byte{}), ErrEmptyPattern)
	assert.NoError(t, ValidatePattern([]byte("ACGTACGT")))
	assert.Error(t, ValidatePattern([]byte("ACGU")))
}
