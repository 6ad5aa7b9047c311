package renamer

import (
	"errors"
	"testing"

	"github.com/erraggy/recase/recaseerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionPattern(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"png", "*.png"},
		{".png", "*.png"},
		{" PNG ", "*.png"},
		{"tar.gz", "*.tar.gz"},
		{"*.min.js", "*.min.js"},
		{"img-?.JPG", "img-?.jpg"},
		{"", ""},
		{".", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, extensionPattern(tt.in))
		})
	}
}

func TestExclusions_Dir(t *testing.T) {
	excl, err := newExclusions([]string{".git", "node_modules/", "build*", "web/dist", " "}, nil)
	require.NoError(t, err)

	tests := []struct {
		name, rel string
		want      bool
	}{
		{".git", ".git", true},
		{"node_modules", "pkg/node_modules", true},
		{"build", "build", true},
		{"build-out", "a/build-out", true},
		{"dist", "web/dist", true},
		{"dist", "api/dist", false},
		{"src", "web/src", false},
		{"gitx", "gitx", false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, excl.excludeDir(tt.name, tt.rel))
		})
	}
}

func TestExclusions_File(t *testing.T) {
	excl, err := newExclusions(nil, []string{"png", ".LOCK", "*.min.js"})
	require.NoError(t, err)

	assert.True(t, excl.excludeFile("logo.png"))
	assert.True(t, excl.excludeFile("Logo.PNG"))
	assert.True(t, excl.excludeFile("go.lock"))
	assert.True(t, excl.excludeFile("app.min.js"))
	assert.False(t, excl.excludeFile("app.js"))
	assert.False(t, excl.excludeFile("png"))
}

func TestNewExclusions_InvalidPattern(t *testing.T) {
	_, err := newExclusions([]string{"["}, nil)
	require.Error(t, err)
	var cfgErr *recaseerrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "exclude-dirs", cfgErr.Option)

	_, err = newExclusions(nil, []string{"*.[ch"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, recaseerrors.ErrConfig))
}

func TestRelSlash(t *testing.T) {
	assert.Equal(t, "a/b", relSlash("/root", "/root/a/b"))
	assert.Equal(t, ".", relSlash("/root", "/root"))
}
