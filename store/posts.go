package store

import "strings"

// Post is a cached blog post. Partial marks a post whose Text holds only the
// truncated preview from a list fetch; a single-post fetch loads the full
// body and clears it.
type Post struct {
	ID              string
	Title           string
	NormalizedTitle string
	OwnerID         string
	CreatedAt       string
	UpdatedAt       string
	Text            string
	Partial         bool
}

// LoadPost upserts a single post unconditionally. Used after single-post
// fetches and post creation, which always carry the full body.
func (tx *Tx) LoadPost(p Post) {
	tx.st.posts[p.ID] = p
	tx.st.postsRev++
}

// LoadPosts bulk-upserts posts from a list fetch. A partial refresh must not
// regress a post that is already fully loaded: when the cached text starts
// with the incoming preview, the cached text and partial flag are kept and
// only the metadata fields are taken from the refresh.
func (tx *Tx) LoadPosts(posts []Post) {
	for _, p := range posts {
		if p.Partial {
			if old, ok := tx.st.posts[p.ID]; ok && strings.HasPrefix(old.Text, p.Text) {
				p.Text = old.Text
				p.Partial = old.Partial
			}
		}
		tx.st.posts[p.ID] = p
	}
	tx.st.postsRev++
}

// EditPost rewrites the body and update timestamp of an existing post. A
// missing id is silently ignored; the post may never have been loaded.
func (tx *Tx) EditPost(id, updatedAt, body string) {
	p, ok := tx.st.posts[id]
	if !ok {
		return
	}
	p.Text = body
	p.UpdatedAt = updatedAt
	tx.st.posts[id] = p
	tx.st.postsRev++
}

// Post returns the cached post for id.
func (s *Store) Post(id string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.state.posts[id]
	return p, ok
}

// PostCount reports the number of cached posts.
func (s *Store) PostCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.posts)
}

// Convenience single-dispatch wrappers.

func (s *Store) LoadPost(p Post)      { s.Update(func(tx *Tx) { tx.LoadPost(p) }) }
func (s *Store) LoadPosts(ps []Post)  { s.Update(func(tx *Tx) { tx.LoadPosts(ps) }) }
func (s *Store) EditPost(id, at, body string) {
	s.Update(func(tx *Tx) { tx.EditPost(id, at, body) })
}
