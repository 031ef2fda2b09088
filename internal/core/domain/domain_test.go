package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stow/internal/core/domain"
)

func TestManifest_Merged_Production(t *testing.T) {
	m := &domain.Manifest{
		Required:    domain.DeclaredSet{"left-pad": "^1.3.0"},
		Development: domain.DeclaredSet{"linter": "2.x"},
		Optional:    domain.DeclaredSet{"fsevents": "*"},
	}

	merged := m.Merged(domain.ModeProduction)

	assert.Equal(t, domain.DeclaredSet{"left-pad": "^1.3.0"}, merged)
	assert.NotContains(t, merged, "linter")
	assert.NotContains(t, merged, "fsevents")
}

func TestManifest_Merged_All(t *testing.T) {
	m := &domain.Manifest{
		Required:    domain.DeclaredSet{"left-pad": "^1.3.0", "shared": "1.0.0"},
		Development: domain.DeclaredSet{"linter": "2.x", "shared": "9.9.9"},
		Optional:    domain.DeclaredSet{"fsevents": "*"},
	}

	merged := m.Merged(domain.ModeAll)

	assert.Len(t, merged, 4)
	// Required entries win on key collision.
	assert.Equal(t, "1.0.0", merged["shared"])
	assert.Equal(t, "2.x", merged["linter"])
	assert.Equal(t, "*", merged["fsevents"])
}

func TestManifest_Merged_EmptySubsets(t *testing.T) {
	m := &domain.Manifest{}

	assert.Empty(t, m.Merged(domain.ModeAll))
	assert.Empty(t, m.Merged(domain.ModeProduction))
}

func TestParseMode(t *testing.T) {
	mode, err := domain.ParseMode("production")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeProduction, mode)

	mode, err = domain.ParseMode("all")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeAll, mode)

	_, err = domain.ParseMode("staging")
	require.ErrorIs(t, err, domain.ErrUnknownMode)
}

func TestIsScoped(t *testing.T) {
	assert.True(t, domain.IsScoped("@acme/utils"))
	assert.False(t, domain.IsScoped("utils"))
	assert.False(t, domain.IsScoped("@lonely-scope"))
}

func TestSortedKeys_Deterministic(t *testing.T) {
	set := domain.InstalledSet{"zeta": "1", "@acme/utils": "2", "alpha": "3"}

	keys := domain.SortedKeys(set)

	assert.Equal(t, []string{"@acme/utils", "alpha", "zeta"}, keys)
}
