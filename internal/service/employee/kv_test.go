package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck_backend/pkg/kvstore"
)

func TestAddTrimsAndAssignsIdentity(t *testing.T) {
	svc := NewKV(kvstore.NewMemory(), nil)
	ctx := context.Background()

	e, err := svc.Add(ctx, "  Dana Cole  ")
	require.NoError(t, err)
	assert.Equal(t, "Dana Cole", e.Name)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestAddRejectsEmptyName(t *testing.T) {
	svc := NewKV(kvstore.NewMemory(), nil)

	_, err := svc.Add(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestAddDuplicateIsCaseInsensitive(t *testing.T) {
	svc := NewKV(kvstore.NewMemory(), nil)
	ctx := context.Background()

	_, err := svc.Add(ctx, "Dana Cole")
	require.NoError(t, err)

	for _, dup := range []string{"Dana Cole", "dana cole", "DANA COLE", "  dana Cole "} {
		_, err := svc.Add(ctx, dup)
		assert.ErrorIs(t, err, ErrDuplicateName, dup)
	}

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestListSortedByName(t *testing.T) {
	svc := NewKV(kvstore.NewMemory(), nil)
	ctx := context.Background()

	for _, name := range []string{"Zoe", "adam", "Mira"} {
		_, err := svc.Add(ctx, name)
		require.NoError(t, err)
	}

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "adam", got[0].Name)
	assert.Equal(t, "Mira", got[1].Name)
	assert.Equal(t, "Zoe", got[2].Name)
}

func TestSeedStarterOnlyWhenEmpty(t *testing.T) {
	svc := NewKV(kvstore.NewMemory(), nil)
	ctx := context.Background()

	require.NoError(t, svc.SeedStarter(ctx))
	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, len(StarterNames))

	// idempotent on a populated directory
	require.NoError(t, svc.SeedStarter(ctx))
	got, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, len(StarterNames))

	other := NewKV(kvstore.NewMemory(), nil)
	_, err = other.Add(ctx, "Solo Hire")
	require.NoError(t, err)
	require.NoError(t, other.SeedStarter(ctx))
	got, err = other.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
