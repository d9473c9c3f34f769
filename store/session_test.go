package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndRemoveSession(t *testing.T) {
	s := New()
	_, ok := s.SessionUser()
	assert.False(t, ok)

	s.SetSession(SessionUser{ID: "u1", Username: "ada", Email: "ada@example.com"})
	u, ok := s.SessionUser()
	require.True(t, ok)
	assert.Equal(t, "ada", u.Username)

	s.AddFollow("u2")
	s.RemoveSession()

	_, ok = s.SessionUser()
	assert.False(t, ok)
	assert.Equal(t, 0, s.FollowCount(), "logout clears the follow set")
}

func TestFollow_AddThenRemoveRestoresPriorState(t *testing.T) {
	s := New()
	s.AddFollows([]string{"u1", "u3"})
	before := s.FollowCount()

	s.AddFollow("u2")
	assert.True(t, s.IsFollowing("u2"))
	s.RemoveFollow("u2")

	assert.False(t, s.IsFollowing("u2"))
	assert.Equal(t, before, s.FollowCount())
	assert.True(t, s.IsFollowing("u1"))
	assert.True(t, s.IsFollowing("u3"))
}

func TestAddFollows_Bulk(t *testing.T) {
	s := New()
	s.AddFollows([]string{"u1", "u2", "u2"})
	assert.Equal(t, 2, s.FollowCount())
	assert.ElementsMatch(t, []string{"u1", "u2"}, s.Following())
}

func TestFollowing_IndependentOfLoadedPosts(t *testing.T) {
	s := New()
	s.AddFollow("u9")
	assert.True(t, s.IsFollowing("u9"), "membership does not require the author's posts")
}
