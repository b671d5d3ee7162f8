package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgalab/sga-server/models"
)

func TestGetPrincipalFromContext(t *testing.T) {
	t.Run("principal present", func(t *testing.T) {
		want := models.Principal{UserID: 7, Username: "john", RoleName: models.RoleAdmin}
		ctx := context.WithValue(context.Background(), PrincipalCtxKey, want)

		got, ok := GetPrincipalFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("principal missing", func(t *testing.T) {
		_, ok := GetPrincipalFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("wrong value type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), PrincipalCtxKey, "not a principal")
		_, ok := GetPrincipalFromContext(ctx)
		assert.False(t, ok)
	})
}
