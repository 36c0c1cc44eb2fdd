package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmharte/winpathtools/patherrors"
)

func TestParseWindows(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		scheme        Scheme
		drive         string
		segments      []string
		trailingSlash bool
	}{
		{
			name:     "plain",
			input:    `c:\local\path`,
			scheme:   SchemePlain,
			drive:    "c",
			segments: []string{"local", "path"},
		},
		{
			name:          "plain trailing slash",
			input:         `c:\local\path\`,
			scheme:        SchemePlain,
			drive:         "c",
			segments:      []string{"local", "path"},
			trailingSlash: true,
		},
		{
			name:   "drive only",
			input:  "c:",
			scheme: SchemePlain,
			drive:  "c",
		},
		{
			name:          "drive root",
			input:         `c:\`,
			scheme:        SchemePlain,
			drive:         "c",
			trailingSlash: true,
		},
		{
			name:     "file URI",
			input:    "file:///c:/local/path",
			scheme:   SchemeFileURI,
			drive:    "c",
			segments: []string{"local", "path"},
		},
		{
			name:     "short prefixed",
			input:    `FileSystem::c:\local\path`,
			scheme:   SchemeShortPrefixed,
			drive:    "c",
			segments: []string{"local", "path"},
		},
		{
			name:     "long prefixed",
			input:    `Microsoft.PowerShell.Core\FileSystem::c:\local\path`,
			scheme:   SchemeLongPrefixed,
			drive:    "c",
			segments: []string{"local", "path"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.input)
			require.Equal(t, TypeWindows, result.Type)
			require.Equal(t, tt.scheme, result.Scheme)
			require.Equal(t, tt.input, result.OriginalString)

			win := result.Windows()
			require.NotNil(t, win)
			assert.Equal(t, tt.drive, win.DriveLetter)
			assert.Equal(t, tt.segments, win.Segments)
			assert.Equal(t, tt.trailingSlash, win.TrailingSlash)
			assert.Nil(t, result.UNC())
			assert.Nil(t, result.Unknown())
		})
	}
}

func TestParseUNC(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		scheme        Scheme
		domain        string
		drive         string
		segments      []string
		trailingSlash bool
	}{
		{
			name:     "plain with share marker",
			input:    `\\domain.name\c$\local\path`,
			scheme:   SchemePlain,
			domain:   "domain.name",
			drive:    "c",
			segments: []string{"local", "path"},
		},
		{
			name:     "plain without share marker",
			input:    `\\domain.name\local\path`,
			scheme:   SchemePlain,
			domain:   "domain.name",
			segments: []string{"local", "path"},
		},
		{
			name:   "domain only",
			input:  `\\domain.name`,
			scheme: SchemePlain,
			domain: "domain.name",
		},
		{
			name:     "file URI",
			input:    "file://domain.name/c$/local/path",
			scheme:   SchemeFileURI,
			domain:   "domain.name",
			drive:    "c",
			segments: []string{"local", "path"},
		},
		{
			name:          "long prefixed trailing slash",
			input:         `Microsoft.PowerShell.Core\FileSystem::\\domain.name\c$\local\`,
			scheme:        SchemeLongPrefixed,
			domain:        "domain.name",
			drive:         "c",
			segments:      []string{"local"},
			trailingSlash: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.input)
			require.Equal(t, TypeUNC, result.Type)
			require.Equal(t, tt.scheme, result.Scheme)

			unc := result.UNC()
			require.NotNil(t, unc)
			assert.Equal(t, tt.domain, unc.DomainName)
			assert.Equal(t, tt.drive, unc.DriveLetter)
			assert.Equal(t, tt.segments, unc.Segments)
			assert.Equal(t, tt.trailingSlash, unc.TrailingSlash)
		})
	}
}

func TestParseUnknown(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		segments      []string
		delimiter     byte
		trailingSlash bool
	}{
		{
			name:      "relative fragment",
			input:     `local\path`,
			segments:  []string{"local", "path"},
			delimiter: '\\',
		},
		{
			name:      "forward slash fragment",
			input:     "local/path/",
			segments:  []string{"local", "path"},
			delimiter: '/',

			trailingSlash: true,
		},
		{
			name:     "single token",
			input:    "localpath",
			segments: []string{"localpath"},
		},
		{
			name:     "free text",
			input:    "not a path",
			segments: []string{"not a path"},
		},
		{
			name:     "empty",
			input:    "",
			segments: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.input)
			require.Equal(t, TypeUnknown, result.Type)
			require.Equal(t, SchemeUnknown, result.Scheme)

			unknown := result.Unknown()
			require.NotNil(t, unknown)
			assert.Equal(t, tt.input, unknown.Raw)
			assert.Equal(t, tt.segments, unknown.Segments)
			assert.Equal(t, tt.delimiter, unknown.Delimiter)
			assert.Equal(t, tt.trailingSlash, unknown.TrailingSlash)
		})
	}
}

func TestParseForwardSlashUNCGetsRenderableScheme(t *testing.T) {
	result := Parse("//domain.name/local/x")
	require.Equal(t, TypeUNC, result.Type)
	// The text matches no scheme mask, but the object must still render.
	assert.Equal(t, SchemeUnknown, result.Scheme)
	unc := result.UNC()
	require.NotNil(t, unc)
	assert.Equal(t, SchemePlain, unc.Scheme)
	assert.Equal(t, "domain.name", unc.DomainName)
	assert.Equal(t, []string{"local", "x"}, unc.Segments)
}

func TestParseWithOptions(t *testing.T) {
	t.Run("parses provided path", func(t *testing.T) {
		result, err := ParseWithOptions(WithPath(`c:\logs`))
		require.NoError(t, err)
		require.Equal(t, TypeWindows, result.Type)
	})

	t.Run("accepts empty path text", func(t *testing.T) {
		result, err := ParseWithOptions(WithPath(""))
		require.NoError(t, err)
		require.Equal(t, TypeUnknown, result.Type)
	})

	t.Run("fails without input", func(t *testing.T) {
		_, err := ParseWithOptions()
		require.Error(t, err)
		assert.True(t, errors.Is(err, patherrors.ErrConfig))
	})

	t.Run("uses provided logger", func(t *testing.T) {
		logger := &recordingLogger{}
		_, err := ParseWithOptions(WithPath(`c:\logs`), WithLogger(logger))
		require.NoError(t, err)
		assert.NotEmpty(t, logger.messages)
	})
}

func TestParserNilLogger(t *testing.T) {
	p := &Parser{}
	result := p.Parse(`c:\logs`)
	require.Equal(t, TypeWindows, result.Type)
}

// recordingLogger captures messages for assertions.
type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Debug(msg string, _ ...any) { r.messages = append(r.messages, msg) }
func (r *recordingLogger) Info(msg string, _ ...any)  { r.messages = append(r.messages, msg) }
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.messages = append(r.messages, msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.messages = append(r.messages, msg) }
func (r *recordingLogger) With(_ ...any) Logger       { return r }
