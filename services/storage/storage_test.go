package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadWithoutCloudinary(t *testing.T) {
	svc, err := NewStorageService("")
	require.NoError(t, err)

	_, err = svc.Upload(context.Background(), strings.NewReader("img"), "tests")
	assert.True(t, errors.Is(err, ErrStorageUnavailable))

	_, err = svc.Upload(context.Background(), strings.NewReader("img"), "../etc")
	assert.True(t, errors.Is(err, ErrUnknownFolder))
}
