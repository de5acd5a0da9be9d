package memory

func LockCount(s *SessionStore) int {
	return s.lockCount()
}
