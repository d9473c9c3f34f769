package store

import "sort"

// View selectors. Ordering is always recomputed from the id maps; ids sort
// lexicographically and newer ids sort greater, so "newest first" is a
// descending sort. Returned slices are memoized and shared: callers must
// treat them as read-only.

type authorKey struct {
	rev    uint64
	author string
}

type followedKey struct {
	postsRev   uint64
	sessionRev uint64
}

type postCommentsKey struct {
	rev  uint64
	post string
}

func sortDescending(ids []string) []string {
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	return ids
}

// NewestPostIDs returns all post ids, newest first.
func (s *Store) NewestPostIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.newestPosts.get(s.state.postsRev, func() []string {
		ids := make([]string, 0, len(s.state.posts))
		for id := range s.state.posts {
			ids = append(ids, id)
		}
		return sortDescending(ids)
	})
}

// PostIDsByAuthor returns the ids of posts owned by authorID, newest first.
func (s *Store) PostIDsByAuthor(authorID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key := authorKey{rev: s.state.postsRev, author: authorID}
	return s.authorPosts.get(key, func() []string {
		var ids []string
		for id, p := range s.state.posts {
			if p.OwnerID == authorID {
				ids = append(ids, id)
			}
		}
		return sortDescending(ids)
	})
}

// FollowedPostIDs returns the ids of posts whose authors the session user
// follows, newest first.
func (s *Store) FollowedPostIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key := followedKey{postsRev: s.state.postsRev, sessionRev: s.state.sessionRev}
	return s.followedPosts.get(key, func() []string {
		var ids []string
		for id, p := range s.state.posts {
			if _, ok := s.state.following[p.OwnerID]; ok {
				ids = append(ids, id)
			}
		}
		return sortDescending(ids)
	})
}

// CommentIDsForPost returns the ids of comments on postID, newest first.
func (s *Store) CommentIDsForPost(postID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key := postCommentsKey{rev: s.state.commentsRev, post: postID}
	return s.postComments.get(key, func() []string {
		var ids []string
		for id, c := range s.state.comments {
			if c.PostID == postID {
				ids = append(ids, id)
			}
		}
		return sortDescending(ids)
	})
}
