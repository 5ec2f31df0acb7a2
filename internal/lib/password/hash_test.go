package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashAndCompare(t *testing.T) {
	hash, err := GetHash("Phoebe123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Phoebe123", hash)

	assert.NoError(t, CompareHash(hash, "Phoebe123"))
	assert.Error(t, CompareHash(hash, "wrongpassword"))
}

func TestGetHashUniqueSalt(t *testing.T) {
	first, err := GetHash("Henry123")
	require.NoError(t, err)
	second, err := GetHash("Henry123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
