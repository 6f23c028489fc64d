package nats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidates(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.ErrorContains(t, err, "Conn is required")

	_, err = New(context.Background(), Config{Bucket: ""})
	assert.Error(t, err)
}
