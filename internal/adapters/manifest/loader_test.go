package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stow/internal/adapters/manifest"
	"go.trai.ch/stow/internal/core/domain"
)

func TestLoad_Success(t *testing.T) {
	content := `
dependencies:
  left-pad: "^1.3.0"
  "@acme/utils": "2.x"
development:
  linter: "*"
optional:
  fsevents: "~3.0.0"
`
	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, domain.ManifestFileName), []byte(content), 0o600))

	m, err := manifest.NewLoader().Load(project)
	require.NoError(t, err)

	assert.Equal(t, domain.DeclaredSet{"left-pad": "^1.3.0", "@acme/utils": "2.x"}, m.Required)
	assert.Equal(t, domain.DeclaredSet{"linter": "*"}, m.Development)
	assert.Equal(t, domain.DeclaredSet{"fsevents": "~3.0.0"}, m.Optional)
}

func TestLoad_OmittedSubsetsAreEmpty(t *testing.T) {
	project := t.TempDir()
	content := "dependencies:\n  left-pad: \"1.3.0\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(project, domain.ManifestFileName), []byte(content), 0o600))

	m, err := manifest.NewLoader().Load(project)
	require.NoError(t, err)

	assert.Len(t, m.Required, 1)
	assert.Empty(t, m.Development)
	assert.Empty(t, m.Optional)
}

func TestLoad_Missing(t *testing.T) {
	_, err := manifest.NewLoader().Load(t.TempDir())
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestLoad_Malformed(t *testing.T) {
	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, domain.ManifestFileName), []byte("dependencies: [not, a, mapping]"), 0o600))

	_, err := manifest.NewLoader().Load(project)
	require.ErrorIs(t, err, domain.ErrManifestInvalid)
}
