package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterRequiresConfiguredBackend(t *testing.T) {
	local := newTestLocal(t)

	_, err := NewRouter(ModeDirect, nil, local)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = NewRouter(Mode("something"), local, local)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	r, err := NewRouter(ModeProxy, nil, local)
	require.NoError(t, err)

	rows, err := r.Exec(context.Background(), Select{Table: TableProducts})
	require.NoError(t, err)
	assert.Len(t, rows, len(SeedProducts()))
}
