package memory

import (
	"context"
	"sync"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/dialog"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
)

// SessionStore keeps dialog sessions in process memory. Sessions are lost on restart.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[types.UserID]*dialog.Session
	locks    map[types.UserID]*userLock
}

// userLock is dropped from the lock map when the last holder or waiter releases it.
type userLock struct {
	mu   sync.Mutex
	refs int
}

var _ interfaces.SessionStore = &SessionStore{}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[types.UserID]*dialog.Session),
		locks:    make(map[types.UserID]*userLock),
	}
}

func (r *SessionStore) GetOrCreate(ctx context.Context, userID types.UserID) *dialog.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions[userID]; ok {
		return sess
	}
	sess := dialog.NewSession(userID)
	r.sessions[userID] = sess
	return sess
}

func (r *SessionStore) Get(ctx context.Context, userID types.UserID) (*dialog.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[userID]
	return sess, ok
}

func (r *SessionStore) Clear(ctx context.Context, userID types.UserID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, userID)
}

func (r *SessionStore) Lock(ctx context.Context, userID types.UserID) func() {
	r.mu.Lock()
	l, ok := r.locks[userID]
	if !ok {
		l = &userLock{}
		r.locks[userID] = l
	}
	l.refs++
	r.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			r.mu.Lock()
			defer r.mu.Unlock()
			l.refs--
			if l.refs == 0 {
				delete(r.locks, userID)
			}
		})
	}
}

func (r *SessionStore) Len(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// lockCount is the number of users holding or waiting on a turn lock.
func (r *SessionStore) lockCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.locks)
}
