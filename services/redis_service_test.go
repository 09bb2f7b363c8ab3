package services

import (
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestDecodeCachedMissingKey(t *testing.T) {
	var target map[string]int

	found, err := decodeCached("", redis.Nil, &target)

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, target)
}

func TestDecodeCachedHit(t *testing.T) {
	var target struct {
		Workers int `json:"workers"`
	}

	found, err := decodeCached(`{"workers":0}`, nil, &target)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 0, target.Workers)
}

func TestDecodeCachedConnectionError(t *testing.T) {
	var target map[string]int

	found, err := decodeCached("", errors.New("connection refused"), &target)

	assert.Error(t, err)
	assert.False(t, found)
}

func TestDecodeCachedInvalidJSON(t *testing.T) {
	var target map[string]int

	found, err := decodeCached("{not-json", nil, &target)

	assert.Error(t, err)
	assert.False(t, found)
}
