package store

import "context"

// Mode selects which backend the router executes against.
type Mode string

const (
	// ModeDirect runs statements on the in-process database client.
	ModeDirect Mode = "direct"
	// ModeProxy ships statements to the remote endpoint, with the local
	// emulation store as transport fallback.
	ModeProxy Mode = "proxy"
)

// Router is the single entry point the domain services talk to. The
// backend is chosen once at construction from configuration and injected;
// callers never learn whether execution is local or remote.
type Router struct {
	backend Executor
}

func NewRouter(mode Mode, direct, proxy Executor) (*Router, error) {
	switch mode {
	case ModeDirect:
		if direct == nil {
			return nil, ErrStorageUnavailable
		}
		return &Router{backend: direct}, nil
	case ModeProxy:
		if proxy == nil {
			return nil, ErrStorageUnavailable
		}
		return &Router{backend: proxy}, nil
	default:
		return nil, ErrStorageUnavailable
	}
}

func (r *Router) Exec(ctx context.Context, cmd Command) ([]Row, error) {
	return r.backend.Exec(ctx, cmd)
}
