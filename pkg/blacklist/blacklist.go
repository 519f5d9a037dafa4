// Package blacklist keeps revoked bearer tokens in process memory until
// their natural expiry. Entries are not persisted; a restart empties the
// registry, which is the accepted tradeoff for this deployment.
package blacklist

import (
	"sync"
	"time"
)

// Registry is a concurrent set of revoked tokens. Removal at token expiry
// runs on its own timer so revocation never blocks the caller.
type Registry struct {
	mu     sync.Mutex
	tokens map[string]*time.Timer
}

func New() *Registry {
	return &Registry{tokens: make(map[string]*time.Timer)}
}

// Add revokes a token with no scheduled cleanup. The entry stays until
// Remove is called or the process restarts; used for tokens that carry
// no expiry claim.
func (r *Registry) Add(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopTimerLocked(token)
	r.tokens[token] = nil
}

// AddUntil revokes a token and schedules its removal at expiry. An expiry
// in the past still records the token; the timer then fires immediately.
func (r *Registry) AddUntil(token string, expiry time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopTimerLocked(token)
	r.tokens[token] = time.AfterFunc(time.Until(expiry), func() {
		r.Remove(token)
	})
}

// Has reports whether the token has been revoked.
func (r *Registry) Has(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tokens[token]
	return ok
}

// Remove drops the token and cancels any pending cleanup timer.
func (r *Registry) Remove(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopTimerLocked(token)
	delete(r.tokens, token)
}

// Len returns the number of revoked tokens currently held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

func (r *Registry) stopTimerLocked(token string) {
	if t, ok := r.tokens[token]; ok && t != nil {
		t.Stop()
	}
}
