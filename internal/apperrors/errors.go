package apperrors

import "fmt"

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewShowNotFoundError creates a specific error for an unknown TVMaze show id.
func NewShowNotFoundError(showID int) *ErrNotFound {
	return &ErrNotFound{
		Resource: "show",
		ID:       showID,
	}
}

// ErrUnexpectedStatus is returned when TVMaze answers with a non-2xx status other than 404.
type ErrUnexpectedStatus struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *ErrUnexpectedStatus) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnexpectedStatus) Is(target error) bool {
	_, ok := target.(*ErrUnexpectedStatus)
	return ok
}

// ErrRemoteFetch covers every failure of a catalog lookup: transport errors,
// bad statuses and undecodable bodies alike.
type ErrRemoteFetch struct {
	Operation string
	URL       string
	Err       error
}

// Error implements the error interface.
func (e *ErrRemoteFetch) Error() string {
	return fmt.Sprintf("%s: fetch %s: %v", e.Operation, e.URL, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ErrRemoteFetch) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrRemoteFetch) Is(target error) bool {
	_, ok := target.(*ErrRemoteFetch)
	return ok
}

// NewRemoteFetchError wraps err as a failure of the named catalog operation.
func NewRemoteFetchError(operation, url string, err error) *ErrRemoteFetch {
	return &ErrRemoteFetch{
		Operation: operation,
		URL:       url,
		Err:       err,
	}
}

// ErrInvalidPanel is returned for a panel name that is neither episodes nor genres.
type ErrInvalidPanel struct {
	Name string
}

// Error implements the error interface.
func (e *ErrInvalidPanel) Error() string {
	return fmt.Sprintf("invalid panel %q", e.Name)
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidPanel) Is(target error) bool {
	_, ok := target.(*ErrInvalidPanel)
	return ok
}
