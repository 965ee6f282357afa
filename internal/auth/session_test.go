package auth

import (
	"testing"

	"github.com/dmitrijs2005/healthgate/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_StartsUnauthenticated(t *testing.T) {
	for _, s := range []*Session{NewSession(), {}} {
		id, ok := s.CurrentIdentity()
		assert.False(t, ok)
		assert.Empty(t, id)
		require.ErrorIs(t, s.RequireAuthenticated(), common.ErrUnauthorized)
	}
}

func TestSession_AuthenticateOnce(t *testing.T) {
	s := NewSession()

	require.NoError(t, s.authenticate("alice"))
	id, ok := s.CurrentIdentity()
	assert.True(t, ok)
	assert.Equal(t, "alice", id)
	require.NoError(t, s.RequireAuthenticated())

	require.ErrorIs(t, s.authenticate("bob"), common.ErrAlreadyAuthenticated)
	id, _ = s.CurrentIdentity()
	assert.Equal(t, "alice", id)

	s.clear()
	_, ok = s.CurrentIdentity()
	assert.False(t, ok)
}
