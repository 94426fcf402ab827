package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteHonorsPortEnv(t *testing.T) {
	t.Setenv("PORT", "8080")

	opts := NewServerOptions()
	require.NoError(t, opts.Complete())
	assert.Equal(t, ":8080", opts.HTTP.Addr)
}

func TestCompleteDefaultAddr(t *testing.T) {
	t.Setenv("PORT", "")

	opts := NewServerOptions()
	require.NoError(t, opts.Complete())
	assert.Equal(t, ":3000", opts.HTTP.Addr)
}

func TestValidateDefaults(t *testing.T) {
	opts := NewServerOptions()
	require.NoError(t, opts.Complete())
	assert.NoError(t, opts.Validate())
}

func TestValidateSurfacesSectionErrors(t *testing.T) {
	opts := NewServerOptions()
	opts.DB.Driver = "oracle"

	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db options")
}

func TestFlagsGrouped(t *testing.T) {
	opts := NewServerOptions()
	fss := opts.Flags()

	for _, section := range []string{"http", "log", "db"} {
		fs := fss.FlagSets[section]
		require.NotNil(t, fs, "missing flag section %q", section)
		assert.True(t, fs.HasFlags())
	}
}
