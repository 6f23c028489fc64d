package minio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidates(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorContains(t, err, "bucket is required")

	_, err = New(Config{Bucket: "b"})
	assert.ErrorContains(t, err, "Endpoint is required")
}

func TestObjectNames(t *testing.T) {
	p, err := New(Config{Bucket: "b", Endpoint: "localhost:9000"})
	require.NoError(t, err)
	assert.Len(t, p.object("k"), 2+1+64)

	p.prefix = "tier"
	assert.Equal(t, "tier/", p.object("k")[:5])
}
