package bitgen

import "sync"

var _ Generator = (*Locked)(nil)

// Locked wraps a Generator with a mutex, making one shared stream safe for
// concurrent draws. For hot loops prefer one generator per goroutine over
// independently spawned seeds instead.
type Locked struct {
	lock sync.Mutex
	g    Generator
}

// Lock returns g behind a mutex.
func Lock(g Generator) *Locked {
	return &Locked{g: g}
}

func (l *Locked) Uint64() uint64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.Uint64()
}

func (l *Locked) Uint32() uint32 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.Uint32()
}

func (l *Locked) Float64() float64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.Float64()
}

func (l *Locked) Raw() uint64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.Raw()
}
