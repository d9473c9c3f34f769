package store

// Comment is a cached comment on a post.
type Comment struct {
	ID        string
	PostID    string
	AuthorID  string
	Text      string
	CreatedAt string
	UpdatedAt string
}

// AddComments bulk-upserts comments by id.
func (tx *Tx) AddComments(comments []Comment) {
	for _, c := range comments {
		tx.st.comments[c.ID] = c
	}
	tx.st.commentsRev++
}

// EditComment rewrites the body and update timestamp of an existing comment.
// A missing id is a no-op.
func (tx *Tx) EditComment(id, updatedAt, body string) {
	c, ok := tx.st.comments[id]
	if !ok {
		return
	}
	c.Text = body
	c.UpdatedAt = updatedAt
	tx.st.comments[id] = c
	tx.st.commentsRev++
}

// DeleteComment removes the comment outright. A missing id is a no-op.
func (tx *Tx) DeleteComment(id string) {
	if _, ok := tx.st.comments[id]; !ok {
		return
	}
	delete(tx.st.comments, id)
	tx.st.commentsRev++
}

// Comment returns the cached comment for id.
func (s *Store) Comment(id string) (Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.state.comments[id]
	return c, ok
}

func (s *Store) AddComments(cs []Comment) { s.Update(func(tx *Tx) { tx.AddComments(cs) }) }
func (s *Store) EditComment(id, at, body string) {
	s.Update(func(tx *Tx) { tx.EditComment(id, at, body) })
}
func (s *Store) DeleteComment(id string) { s.Update(func(tx *Tx) { tx.DeleteComment(id) }) }
