package joiner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmharte/winpathtools/parser"
	"github.com/jmharte/winpathtools/patherrors"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      string
		wantType  parser.FilePathType
	}{
		{
			name:      "two bare tokens",
			fragments: []string{"a", "b"},
			want:      `a\b`,
			wantType:  parser.TypeUnknown,
		},
		{
			name:      "UNC base with mixed fragment slashes",
			fragments: []string{`\\domain.name`, `path\`, "segment/"},
			want:      `\\domain.name\path\segment\`,
			wantType:  parser.TypeUNC,
		},
		{
			name:      "windows base",
			fragments: []string{`c:\logs`, "app", `2026\`},
			want:      `c:\logs\app\2026\`,
			wantType:  parser.TypeWindows,
		},
		{
			name:      "drive only base",
			fragments: []string{"c:", "temp"},
			want:      `c:\temp`,
			wantType:  parser.TypeWindows,
		},
		{
			name:      "multi-segment fragment",
			fragments: []string{`c:\a`, `b\c\d`},
			want:      `c:\a\b\c\d`,
			wantType:  parser.TypeWindows,
		},
		{
			name:      "file URI base keeps forward slashes",
			fragments: []string{"file:///c:/local", `deep\nest`},
			want:      "file:///c:/local/deep/nest",
			wantType:  parser.TypeWindows,
		},
		{
			name:      "prefixed base keeps prefix",
			fragments: []string{`FileSystem::c:\local`, "path"},
			want:      `FileSystem::c:\local\path`,
			wantType:  parser.TypeWindows,
		},
		{
			name:      "admin share base",
			fragments: []string{`\\fs01\c$`, "local", "path"},
			want:      `\\fs01\c$\local\path`,
			wantType:  parser.TypeUNC,
		},
		{
			name:      "single fragment keeps trailing slash",
			fragments: []string{`c:\local\`},
			want:      `c:\local\`,
			wantType:  parser.TypeWindows,
		},
		{
			name:      "last fragment clears trailing slash",
			fragments: []string{`c:\local\`, "file.txt"},
			want:      `c:\local\file.txt`,
			wantType:  parser.TypeWindows,
		},
		{
			name:      "empty subsequent fragments skipped",
			fragments: []string{`c:\a`, "", "b", ""},
			want:      `c:\a\b`,
			wantType:  parser.TypeWindows,
		},
		{
			name:      "empty last fragment clears trailing slash",
			fragments: []string{`a\`, ""},
			want:      "a",
			wantType:  parser.TypeUnknown,
		},
		{
			name:      "empty last fragment clears windows trailing slash",
			fragments: []string{`c:\local\`, ""},
			want:      `c:\local`,
			wantType:  parser.TypeWindows,
		},
		{
			name:      "forward slash unknown base",
			fragments: []string{"a/b", "c"},
			want:      "a/b/c",
			wantType:  parser.TypeUnknown,
		},
		{
			name:      "unknown base stays opaque",
			fragments: []string{`a/b\c`, "d"},
			want:      `a/b\c/d`,
			wantType:  parser.TypeUnknown,
		},
		{
			name:      "substitution token base",
			fragments: []string{"%TEMP%", "scratch"},
			want:      `%TEMP%\scratch`,
			wantType:  parser.TypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Join(tt.fragments...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Formatted)
			assert.Equal(t, tt.wantType, result.Type)
		})
	}
}

func TestJoinNoNameValidation(t *testing.T) {
	// Joining is textual; reserved names and illegal characters pass through.
	result, err := Join(`c:\logs`, "PRN", "a|b")
	require.NoError(t, err)
	assert.Equal(t, `c:\logs\PRN\a|b`, result.Formatted)
}

func TestJoinArgumentErrors(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
	}{
		{name: "no fragments", fragments: nil},
		{name: "empty first fragment", fragments: []string{"", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Join(tt.fragments...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, patherrors.ErrArgument))
		})
	}
}

func TestJoinResultFields(t *testing.T) {
	result, err := Join(`\\domain.name\c$\base`, `x\y`, "z/")
	require.NoError(t, err)
	assert.Equal(t, parser.TypeUNC, result.Type)
	assert.Equal(t, parser.SchemePlain, result.Scheme)
	assert.Equal(t, []string{"base", "x", "y", "z"}, result.Segments)
	assert.True(t, result.TrailingSlash)
}

func TestJoinWithOptions(t *testing.T) {
	result, err := JoinWithOptions(
		WithFragments(`c:\a`),
		WithFragments("b", "c"),
	)
	require.NoError(t, err)
	assert.Equal(t, `c:\a\b\c`, result.Formatted)

	_, err = JoinWithOptions()
	require.Error(t, err)
	assert.True(t, errors.Is(err, patherrors.ErrConfig))
}

func TestJoinerNilLogger(t *testing.T) {
	j := &Joiner{}
	result, err := j.Join("a", "b")
	require.NoError(t, err)
	assert.Equal(t, `a\b`, result.Formatted)
}
