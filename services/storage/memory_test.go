package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageRoundTrip(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	url, err := s.UploadImage(ctx, "signatures", "ORD1-sess1", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "mem://signatures/ORD1-sess1", url)

	data, ok := s.Blob("signatures/ORD1-sess1")
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, data)

	require.NoError(t, s.DeleteImage(ctx, "signatures/ORD1-sess1"))
	_, ok = s.Blob("signatures/ORD1-sess1")
	assert.False(t, ok)
}
