package version

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	assert.Equal(t, uint64(0), Semver().Major())
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	// как при сборке с -ldflags
	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	assert.Equal(t, "wright 1.2.3 (abc123def456) built 2024-01-15T10:30:00Z", Describe())
	assert.Equal(t, "1.2.3", Semver().String())
}

func TestVersion_Unparsable(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "dev"
	assert.Equal(t, "dev", Colored())
	assert.Equal(t, "0.0.0", Semver().String())
}

func TestSatisfies(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "0.3.0-dev"

	ok, err := Satisfies(">= 0.2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Satisfies("^1.0")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Satisfies("not a constraint")
	assert.Error(t, err)
}
