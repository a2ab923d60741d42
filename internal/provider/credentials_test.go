package provider

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*CredentialStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewCredentialStoreWithClient(client, ttl)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

func TestCredentialStoreSaveAndLoad(t *testing.T) {
	store, _ := newTestStore(t, 0)
	ctx := context.Background()

	err := store.Save(ctx, "acct-1", Credentials{
		AccessToken: "tok-123",
		BusinessID:  "biz-9",
		FormIDs:     []string{"form-a", "form-b"},
	})
	require.NoError(t, err)

	creds, err := store.Load(ctx, "acct-1")
	require.NoError(t, err)
	require.Equal(t, "tok-123", creds.AccessToken)
	require.Equal(t, "biz-9", creds.BusinessID)
	require.Equal(t, []string{"form-a", "form-b"}, creds.FormIDs)
	require.False(t, creds.UpdatedAt.IsZero())
}

func TestCredentialStoreSaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "acct-1", Credentials{AccessToken: "old"}))
	require.NoError(t, store.Save(ctx, "acct-1", Credentials{AccessToken: "new"}))

	creds, err := store.Load(ctx, "acct-1")
	require.NoError(t, err)
	require.Equal(t, "new", creds.AccessToken)
}

func TestCredentialStoreLoadMissing(t *testing.T) {
	store, _ := newTestStore(t, 0)

	_, err := store.Load(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrCredentialsNotFound)
}

func TestCredentialStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "acct-1", Credentials{AccessToken: "tok"}))

	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "acct-1")
	require.ErrorIs(t, err, ErrCredentialsNotFound)
}

func TestCredentialStoreDelete(t *testing.T) {
	store, _ := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "acct-1", Credentials{AccessToken: "tok"}))
	require.NoError(t, store.Delete(ctx, "acct-1"))

	_, err := store.Load(ctx, "acct-1")
	require.ErrorIs(t, err, ErrCredentialsNotFound)

	require.NoError(t, store.Delete(ctx, "acct-1"))
}

func TestCredentialStoreRequiresAccount(t *testing.T) {
	store, _ := newTestStore(t, 0)

	err := store.Save(context.Background(), "", Credentials{AccessToken: "tok"})
	require.Error(t, err)
}
