package core

// ReentrancyGuard rejects a state-mutating entry point while another one is in
// flight on the same gauge. Collaborators that call back during a transfer hit
// ErrReentrantCall.
type ReentrancyGuard struct {
	entered bool
}

// Enter acquires the guard. The returned release must be deferred by the
// caller so that every exit path, including failures, frees it.
func (g *ReentrancyGuard) Enter() (release func(), err error) {
	if g.entered {
		return nil, ErrReentrantCall
	}
	g.entered = true
	return func() { g.entered = false }, nil
}

// Held reports whether an entry point is in progress.
func (g *ReentrancyGuard) Held() bool {
	return g.entered
}
