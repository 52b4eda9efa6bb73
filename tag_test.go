package envkit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envkit"
)

func TestParseTag_Aliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  envkit.Tag
	}{
		{"develop", envkit.Dev},
		{"Develop", envkit.Dev},
		{"dev", envkit.Dev},
		{"Dev", envkit.Dev},
		{"DEV", envkit.Dev},
		{"d", envkit.Dev},
		{"D", envkit.Dev},
		{"test", envkit.Test},
		{"Test", envkit.Test},
		{"TEST", envkit.Test},
		{"t", envkit.Test},
		{"T", envkit.Test},
		{"staging", envkit.Stg},
		{"Staging", envkit.Stg},
		{"stg", envkit.Stg},
		{"Stg", envkit.Stg},
		{"STG", envkit.Stg},
		{"s", envkit.Stg},
		{"S", envkit.Stg},
		{"production", envkit.Prod},
		{"Production", envkit.Prod},
		{"prod", envkit.Prod},
		{"Prod", envkit.Prod},
		{"PROD", envkit.Prod},
		{"p", envkit.Prod},
		{"P", envkit.Prod},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			tag, err := envkit.ParseTag(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tag)
		})
	}
}

func TestParseTag_Unknown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"unknown environment", "qa"},
		{"mixed case outside the table", "DeV"},
		{"full word upper case outside the table", "PRODUCTION"},
		{"leading whitespace", " dev"},
		{"trailing whitespace", "dev "},
		{"canonical with suffix", "devel"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tag, err := envkit.ParseTag(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, envkit.ErrUnknownTag)
			assert.Equal(t, envkit.Tag(""), tag)
		})
	}
}

func TestTag_Predicates(t *testing.T) {
	t.Parallel()

	assert.True(t, envkit.Dev.IsDev())
	assert.False(t, envkit.Dev.IsTest())
	assert.False(t, envkit.Dev.IsStg())
	assert.False(t, envkit.Dev.IsProd())

	assert.True(t, envkit.Test.IsTest())
	assert.True(t, envkit.Stg.IsStg())
	assert.True(t, envkit.Prod.IsProd())

	assert.False(t, envkit.Prod.IsDev())
	assert.False(t, envkit.Stg.IsTest())
}

func TestDefaultTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, envkit.Dev, envkit.DefaultTag)
}

func TestTag_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dev", envkit.Dev.String())
	assert.Equal(t, "test", envkit.Test.String())
	assert.Equal(t, "stg", envkit.Stg.String())
	assert.Equal(t, "prod", envkit.Prod.String())
}

func TestParseTag_ErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := envkit.ParseTag("qa")
	require.Error(t, err)
	assert.True(t, errors.Is(err, envkit.ErrUnknownTag))
	assert.Contains(t, err.Error(), `"qa"`)
}
