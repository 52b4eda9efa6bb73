package envkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/envkit"
)

func TestWithContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  envkit.Tag
	}{
		{"dev tag", envkit.Dev},
		{"prod tag", envkit.Prod},
		{"zero tag", envkit.Tag("")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := envkit.WithContext(context.Background(), tt.tag)
			assert.Equal(t, tt.tag, envkit.FromContext(ctx))
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("context without a tag", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, envkit.Tag(""), envkit.FromContext(context.Background()))
	})

	t.Run("nested contexts keep the innermost tag", func(t *testing.T) {
		t.Parallel()

		ctx := envkit.WithContext(context.Background(), envkit.Dev)
		ctx = envkit.WithContext(ctx, envkit.Prod)
		assert.Equal(t, envkit.Prod, envkit.FromContext(ctx))
	})
}
