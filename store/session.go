package store

// SessionUser is the authenticated user owning the current session.
type SessionUser struct {
	ID        string
	Username  string
	Email     string
	CreatedAt string
}

// SetSession installs the authenticated user.
func (tx *Tx) SetSession(u SessionUser) {
	tx.st.sessionUser = &u
	tx.st.sessionRev++
}

// RemoveSession clears the authenticated user and the follow set.
func (tx *Tx) RemoveSession() {
	tx.st.sessionUser = nil
	tx.st.following = make(map[string]struct{})
	tx.st.sessionRev++
}

// AddFollow inserts a user id into the follow set.
func (tx *Tx) AddFollow(userID string) {
	tx.st.following[userID] = struct{}{}
	tx.st.sessionRev++
}

// RemoveFollow removes a user id from the follow set.
func (tx *Tx) RemoveFollow(userID string) {
	delete(tx.st.following, userID)
	tx.st.sessionRev++
}

// AddFollows bulk-inserts user ids into the follow set.
func (tx *Tx) AddFollows(userIDs []string) {
	for _, id := range userIDs {
		tx.st.following[id] = struct{}{}
	}
	tx.st.sessionRev++
}

// SessionUser returns the authenticated user, if any.
func (s *Store) SessionUser() (SessionUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.sessionUser == nil {
		return SessionUser{}, false
	}
	return *s.state.sessionUser, true
}

// IsFollowing reports whether the session user follows the given author.
// Membership is independent of whether the author's posts are loaded.
func (s *Store) IsFollowing(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.state.following[userID]
	return ok
}

// Following returns the followed user ids in unspecified order.
func (s *Store) Following() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.state.following))
	for id := range s.state.following {
		ids = append(ids, id)
	}
	return ids
}

// FollowCount reports the size of the follow set.
func (s *Store) FollowCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.following)
}

func (s *Store) SetSession(u SessionUser)   { s.Update(func(tx *Tx) { tx.SetSession(u) }) }
func (s *Store) RemoveSession()             { s.Update(func(tx *Tx) { tx.RemoveSession() }) }
func (s *Store) AddFollow(userID string)    { s.Update(func(tx *Tx) { tx.AddFollow(userID) }) }
func (s *Store) RemoveFollow(userID string) { s.Update(func(tx *Tx) { tx.RemoveFollow(userID) }) }
func (s *Store) AddFollows(ids []string)    { s.Update(func(tx *Tx) { tx.AddFollows(ids) }) }
