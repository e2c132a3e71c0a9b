package storage_test

import (
	"testing"
	"time"

	"media-gallery/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 5*time.Second, storage.Config{TimeoutSeconds: 5}.Timeout())
	assert.Equal(t, storage.DefaultTimeout, storage.Config{}.Timeout())
	assert.Equal(t, storage.DefaultTimeout, storage.Config{TimeoutSeconds: -1}.Timeout())
}
