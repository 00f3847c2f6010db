package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mailbridge/mailbridge/auth"
)

func TestNewStaticProvider(t *testing.T) {
	t.Parallel()

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()
		p, err := auth.NewStaticProvider("fixed-token")
		require.NoError(t, err)
		require.NotNil(t, p)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()
		p, err := auth.NewStaticProvider("")
		require.ErrorIs(t, err, auth.ErrMissingToken)
		require.Nil(t, p)
	})
}

func TestStaticProvider_Resolver(t *testing.T) {
	t.Parallel()

	p, err := auth.NewStaticProvider("fixed-token")
	require.NoError(t, err)

	t.Run("resolves token", func(t *testing.T) {
		t.Parallel()

		r, err := p.Resolver(context.Background(), "res-1")
		require.NoError(t, err)

		token, err := r.Token(context.Background())
		require.NoError(t, err)
		require.Equal(t, "fixed-token", token)
	})

	t.Run("missing resource id", func(t *testing.T) {
		t.Parallel()

		r, err := p.Resolver(context.Background(), "")
		require.ErrorIs(t, err, auth.ErrMissingResourceID)
		require.Nil(t, r)
	})

	t.Run("same resolver for every resource", func(t *testing.T) {
		t.Parallel()

		first, err := p.Resolver(context.Background(), "res-1")
		require.NoError(t, err)
		second, err := p.Resolver(context.Background(), "res-2")
		require.NoError(t, err)
		require.Same(t, first, second)
	})
}
