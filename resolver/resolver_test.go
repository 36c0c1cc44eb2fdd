package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmharte/winpathtools/patherrors"
)

func TestResolveSegments(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     []string
	}{
		{
			name:     "parent pops previous",
			segments: []string{"a", "..", "b"},
			want:     []string{"b"},
		},
		{
			name:     "dot dropped",
			segments: []string{"a", ".", "b"},
			want:     []string{"a", "b"},
		},
		{
			name:     "nothing to resolve",
			segments: []string{"a", "b", "c"},
			want:     []string{"a", "b", "c"},
		},
		{
			name:     "resolves to empty",
			segments: []string{"a", ".."},
			want:     []string{},
		},
		{
			name:     "consecutive parents",
			segments: []string{"a", "b", "..", ".."},
			want:     []string{},
		},
		{
			name:     "empty input",
			segments: nil,
			want:     []string{},
		},
		{
			name:     "dot-prefixed names are ordinary segments",
			segments: []string{".config", "...", "a"},
			want:     []string{".config", "...", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSegments(tt.segments)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSegmentsUnderflow(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
	}{
		{name: "leading parent", segments: []string{"..", "a"}},
		{name: "parent past the root", segments: []string{"a", "..", ".."}},
		{name: "dot does not absorb parent", segments: []string{".", ".."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveSegments(tt.segments)
			require.Error(t, err)
			assert.True(t, errors.Is(err, patherrors.ErrResolution))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "windows path",
			input: `c:\logs\..\data\.\sets`,
			want:  `c:\data\sets`,
		},
		{
			name:  "windows resolves to drive",
			input: `c:\a\..`,
			want:  "c:",
		},
		{
			name:  "trailing slash survives",
			input: `c:\a\..\b\`,
			want:  `c:\b\`,
		},
		{
			name:  "UNC path",
			input: `\\domain.name\c$\a\..\b`,
			want:  `\\domain.name\c$\b`,
		},
		{
			name:  "UNC domain untouched",
			input: `\\domain.name\a\..`,
			want:  `\\domain.name`,
		},
		{
			name:  "file URI keeps scheme",
			input: "file:///c:/a/../b",
			want:  "file:///c:/b",
		},
		{
			name:  "prefixed scheme kept",
			input: `FileSystem::c:\a\..\b`,
			want:  `FileSystem::c:\b`,
		},
		{
			name:  "unknown relative path",
			input: `a\..\b\c`,
			want:  `b\c`,
		},
		{
			name:  "unknown forward slashes",
			input: "a/./b",
			want:  "a/b",
		},
		{
			name:  "already resolved",
			input: `c:\local\path`,
			want:  `c:\local\path`,
		},
		{
			name:  "forward slash UNC renders plain",
			input: "//domain.name/a/../b",
			want:  `\\domain.name\b`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveUnderflow(t *testing.T) {
	for _, input := range []string{`c:\.\..`, `\\domain.name\.\..`, `..\a`} {
		t.Run(input, func(t *testing.T) {
			_, err := Resolve(input)
			require.Error(t, err)
			var resErr *patherrors.ResolutionError
			require.True(t, errors.As(err, &resErr))
			assert.Equal(t, input, resErr.Path)
		})
	}
}

func TestResolverNilLogger(t *testing.T) {
	r := &Resolver{}
	got, err := r.Resolve(`c:\a\.\b`)
	require.NoError(t, err)
	assert.Equal(t, `c:\a\b`, got)
}
