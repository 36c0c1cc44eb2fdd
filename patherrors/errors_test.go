package patherrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ValidationError{
			Path:    `c:\bad|name`,
			Check:   "segment",
			Segment: "bad|name",
			Message: "illegal character",
			Cause:   cause,
		}

		msg := err.Error()
		want := `validation error (segment) for c:\bad|name at segment "bad|name": illegal character: underlying error`
		if msg != want {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ValidationError{}
		if err.Error() != "validation error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with check only", func(t *testing.T) {
		err := &ValidationError{Check: "mixed-slashes"}
		if err.Error() != "validation error (mixed-slashes)" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ValidationError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrValidation", func(t *testing.T) {
		err := &ValidationError{Message: "test"}
		if !errors.Is(err, ErrValidation) {
			t.Error("ValidationError should match ErrValidation")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &ValidationError{}
		if errors.Is(err, ErrArgument) {
			t.Error("ValidationError should not match ErrArgument")
		}
		if errors.Is(err, ErrResolution) {
			t.Error("ValidationError should not match ErrResolution")
		}
	})

	t.Run("As extracts ValidationError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ValidationError{Check: "drive-letter"})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatal("errors.As should succeed")
		}
		if verr.Check != "drive-letter" {
			t.Errorf("unexpected check: %s", verr.Check)
		}
	})
}

func TestArgumentError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ArgumentError{
			Field:   "DomainName",
			Value:   "",
			Message: "UNC paths require a domain name",
		}
		want := `argument error for DomainName (value: ): UNC paths require a domain name`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ArgumentError{}
		if err.Error() != "argument error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &ArgumentError{Field: "Delimiter"}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})

	t.Run("Is matches ErrArgument", func(t *testing.T) {
		err := &ArgumentError{Field: "DriveLetter"}
		if !errors.Is(err, ErrArgument) {
			t.Error("ArgumentError should match ErrArgument")
		}
		if errors.Is(err, ErrValidation) {
			t.Error("ArgumentError should not match ErrValidation")
		}
	})
}

func TestResolutionError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ResolutionError{
			Path:    `c:\..\logs`,
			Message: `too many ".." segments`,
		}
		want := `resolution error for c:\..\logs: too many ".." segments`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrResolution", func(t *testing.T) {
		err := &ResolutionError{Path: "a"}
		if !errors.Is(err, ErrResolution) {
			t.Error("ResolutionError should match ErrResolution")
		}
	})

	t.Run("As extracts ResolutionError", func(t *testing.T) {
		err := fmt.Errorf("resolve: %w", &ResolutionError{Path: `..\a`})
		var resErr *ResolutionError
		if !errors.As(err, &resErr) {
			t.Fatal("errors.As should succeed")
		}
		if resErr.Path != `..\a` {
			t.Errorf("unexpected path: %s", resErr.Path)
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("boom")
		err := &ConfigError{
			Option:  "TargetType",
			Value:   "Ambiguous",
			Message: "not a formattable type",
			Cause:   cause,
		}
		want := "configuration error for TargetType (value: Ambiguous): not a formattable type: boom"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Option: "input"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}
