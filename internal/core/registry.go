package core

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"weak"
)

// register associates source with session, replacing and returning any prior session for the
// same source. The registry holds source and session only weakly: the session is kept alive by
// the handlers subscribed on source, so an unreachable source takes its recorders with it, and a
// cleanup then drops the entry.
func register[T any](source *T, session *session) *session {
	key := weak.Make(source)

	registryMu.Lock()
	defer registryMu.Unlock()

	prior, existed := registry[key]
	registry[key] = weak.Make(session)

	if !existed {
		runtime.AddCleanup(source, forget, any(key))
	}

	return prior.Value()
}

// lookup returns the live session for source, or ErrNotMonitored.
func lookup[T any](source *T) (*session, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: source is nil", ErrNotMonitored)
	}

	registryMu.Lock()
	ref, ok := registry[weak.Make(source)]
	registryMu.Unlock()

	if ok {
		if live := ref.Value(); live != nil {
			return live, nil
		}
	}

	return nil, fmt.Errorf(
		"%w: %T; you must call Monitor(...) on it before asserting on its events",
		ErrNotMonitored, source,
	)
}

// forget removes the registry entry for a collected source.
func forget(key any) {
	registryMu.Lock()
	delete(registry, key)
	registryMu.Unlock()
}

// session is the state of one Monitor call.
type session struct {
	sourceType string
	recorders  RecorderSet
	active     atomic.Bool
}

// unexported variables.
var (
	// keys are weak.Pointer[T] for the monitored source's type, boxed so sources of any type
	// share one map.
	//nolint:gochecknoglobals // Package-level registry is intentional: assertions find recorders by source
	registry = make(map[any]weak.Pointer[session])
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)
