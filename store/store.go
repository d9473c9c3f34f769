// Package store holds the normalized client-side cache for BlogDrown
// entities: id-keyed maps for posts, users and comments plus the singleton
// session state. All mutation is funneled through reducer methods on a Tx so
// that each SDK operation's dispatch batch applies atomically; reads go
// through accessors and memoized view selectors.
package store

import "sync"

// State is the aggregate the reducers operate on. Maps are never nil.
type State struct {
	posts    map[string]Post
	users    map[string]User
	comments map[string]Comment

	sessionUser *SessionUser
	following   map[string]struct{}

	// Revision counters drive memo invalidation in views.go. Each bump means
	// the owning slice may have changed; selectors recompute on a new key.
	postsRev    uint64
	usersRev    uint64
	commentsRev uint64
	sessionRev  uint64
}

// Store owns the State behind a single lock. Entities live for the process
// lifetime; there is no eviction.
type Store struct {
	mu    sync.RWMutex
	state State

	newestPosts   memo[uint64, []string]
	authorPosts   memo[authorKey, []string]
	followedPosts memo[followedKey, []string]
	postComments  memo[postCommentsKey, []string]
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		state: State{
			posts:     make(map[string]Post),
			users:     make(map[string]User),
			comments:  make(map[string]Comment),
			following: make(map[string]struct{}),
		},
	}
}

// Tx exposes the reducer methods while the store lock is held. A Tx is only
// valid inside the Update callback that produced it.
type Tx struct {
	st *State
}

// Update runs fn with exclusive access to the state. All reducer calls made
// through the Tx are visible to readers as one atomic step.
func (s *Store) Update(fn func(*Tx)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&Tx{st: &s.state})
}
