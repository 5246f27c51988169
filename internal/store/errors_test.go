package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The API error mapping relies on entity-specific errors matching their
// generic parents through errors.Is.
func TestSentinelHierarchy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"user not found is a not-found", ErrUserNotFound, ErrNotFound, true},
		{"task not found is a not-found", ErrTaskNotFound, ErrNotFound, true},
		{"username exists is a duplicate", ErrUsernameExists, ErrDuplicate, true},
		{"username exists is not a not-found", ErrUsernameExists, ErrNotFound, false},
		{"task not found is not a duplicate", ErrTaskNotFound, ErrDuplicate, false},
		{
			"wrapping preserves the chain",
			fmt.Errorf("loading profile: %w", ErrUserNotFound),
			ErrNotFound,
			true,
		},
		{
			"user and task sentinels stay distinct",
			ErrUserNotFound,
			ErrTaskNotFound,
			false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	underlying := errors.New("socket closed")
	err := NewStoreError("task", "update", "write failed", underlying)

	assert.Equal(t,
		"update operation on task failed: write failed: socket closed",
		err.Error())
	require.ErrorIs(t, err, underlying)

	bare := NewStoreError("user", "create", "no connection", nil)
	assert.Equal(t, "create operation on user failed: no connection", bare.Error())
}

func TestStoreErrorCarriesSentinels(t *testing.T) {
	t.Parallel()

	err := NewStoreError("user", "get", "lookup failed", ErrUserNotFound)
	assert.True(t, errors.Is(err, ErrUserNotFound))
	assert.True(t, errors.Is(err, ErrNotFound))
}
