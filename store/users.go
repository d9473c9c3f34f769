package store

// User is a cached author. Users are upserted whenever any API response
// embeds one and are never removed during a session.
type User struct {
	ID       string
	Username string
}

// AddUsers bulk-upserts users by id.
func (tx *Tx) AddUsers(users []User) {
	for _, u := range users {
		tx.st.users[u.ID] = u
	}
	tx.st.usersRev++
}

// User returns the cached user for id.
func (s *Store) User(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.state.users[id]
	return u, ok
}

func (s *Store) AddUsers(users []User) { s.Update(func(tx *Tx) { tx.AddUsers(users) }) }
