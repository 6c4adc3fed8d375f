package runreport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGetList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "run-b", []byte(`{"ok":true}`)))
	require.NoError(t, store.Put(ctx, "run-a", []byte(`{}`)))

	got, err := store.Get(ctx, "run-b")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(got))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"run-a", "run-b"}, ids)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
