package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUsers_Upserts(t *testing.T) {
	s := New()
	s.AddUsers([]User{{ID: "u1", Username: "ada"}, {ID: "u2", Username: "bob"}})
	s.AddUsers([]User{{ID: "u1", Username: "ada-renamed"}})

	u, ok := s.User("u1")
	require.True(t, ok)
	assert.Equal(t, "ada-renamed", u.Username)

	_, ok = s.User("u3")
	assert.False(t, ok)
}
