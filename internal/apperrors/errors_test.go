// Package apperrors tests verify the custom error types, their Error()
// messages, Is() matching semantics and unwrapping through ErrRemoteFetch.
package apperrors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

// ---------------------------------------------------------------------------
// ErrNotFound
// ---------------------------------------------------------------------------

func TestErrNotFound_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *ErrNotFound
		expected string
	}{
		{
			name:     "with int ID",
			err:      NewShowNotFoundError(82),
			expected: "show with ID 82 not found",
		},
		{
			name:     "with string ID",
			err:      NewNotFoundError("session", "abc"),
			expected: "session with ID abc not found",
		},
		{
			name:     "with nil ID",
			err:      &ErrNotFound{Resource: "show", ID: nil},
			expected: "show not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrNotFound_Is(t *testing.T) {
	t.Parallel()
	err := NewShowNotFoundError(1)

	if !errors.Is(err, &ErrNotFound{Resource: "other", ID: 99}) {
		t.Error("expected errors.Is to match *ErrNotFound regardless of field values")
	}
	if errors.Is(err, &ErrUnexpectedStatus{}) {
		t.Error("expected errors.Is not to match *ErrUnexpectedStatus")
	}

	wrapped := fmt.Errorf("lookup: %w", err)
	if !errors.Is(wrapped, &ErrNotFound{}) {
		t.Error("expected errors.Is to match through fmt.Errorf wrapping")
	}
}

// ---------------------------------------------------------------------------
// ErrUnexpectedStatus
// ---------------------------------------------------------------------------

func TestErrUnexpectedStatus(t *testing.T) {
	t.Parallel()
	err := &ErrUnexpectedStatus{URL: "http://x/shows/1", StatusCode: 503}

	if got, want := err.Error(), "unexpected status 503 from http://x/shows/1"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, &ErrUnexpectedStatus{}) {
		t.Error("expected errors.Is to match *ErrUnexpectedStatus")
	}
}

// ---------------------------------------------------------------------------
// ErrRemoteFetch
// ---------------------------------------------------------------------------

func TestErrRemoteFetch_UnwrapsCause(t *testing.T) {
	t.Parallel()
	cause := &ErrUnexpectedStatus{URL: "http://x", StatusCode: 500}
	err := NewRemoteFetchError("search_shows", "http://x", cause)

	if !errors.Is(err, &ErrRemoteFetch{}) {
		t.Error("expected errors.Is to match *ErrRemoteFetch")
	}
	if !errors.Is(err, &ErrUnexpectedStatus{}) {
		t.Error("expected errors.Is to reach the wrapped *ErrUnexpectedStatus")
	}

	var status *ErrUnexpectedStatus
	if !errors.As(err, &status) || status.StatusCode != 500 {
		t.Errorf("expected errors.As to extract status 500, got %v", status)
	}

	if got, want := err.Error(), "search_shows: fetch http://x: unexpected status 500 from http://x"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrRemoteFetch_PlainCause(t *testing.T) {
	t.Parallel()
	err := NewRemoteFetchError("get_genres", "http://x/shows/1", io.ErrUnexpectedEOF)

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("expected errors.Is to match the wrapped io.ErrUnexpectedEOF")
	}
	if errors.Is(err, &ErrNotFound{}) {
		t.Error("expected errors.Is not to match *ErrNotFound")
	}
}

// ---------------------------------------------------------------------------
// ErrInvalidPanel
// ---------------------------------------------------------------------------

func TestErrInvalidPanel(t *testing.T) {
	t.Parallel()
	err := &ErrInvalidPanel{Name: "cast"}

	if got, want := err.Error(), `invalid panel "cast"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(fmt.Errorf("route: %w", err), &ErrInvalidPanel{}) {
		t.Error("expected errors.Is to match *ErrInvalidPanel through wrapping")
	}
}
