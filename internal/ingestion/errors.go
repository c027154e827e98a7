package ingestion

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when blocks are handled before a successful Initialize.
	ErrNotInitialized = errors.New("ingestion engine is not initialized")
	// ErrAlreadyInitialized is returned by a second Initialize call.
	ErrAlreadyInitialized = errors.New("ingestion engine is already initialized")
	// ErrClosed is returned by Initialize after Close.
	ErrClosed = errors.New("ingestion engine is closed")
)

// ConnectivityError means no configured upstream endpoint could be reached.
type ConnectivityError struct {
	Attempted int
	Err       error
}

func (e *ConnectivityError) Error() string {
	if e.Attempted == 0 {
		return "no upstream endpoint configured"
	}
	return fmt.Sprintf("all %d upstream endpoints unreachable: %v", e.Attempted, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// TransientFetchError is a single failed upstream fetch that is skipped.
type TransientFetchError struct {
	Op     string
	Height uint64
	Hash   string
	Err    error
}

func (e *TransientFetchError) Error() string {
	if e.Hash != "" {
		return fmt.Sprintf("%s %s at height %d: %v", e.Op, e.Hash, e.Height, e.Err)
	}
	return fmt.Sprintf("%s at height %d: %v", e.Op, e.Height, e.Err)
}

func (e *TransientFetchError) Unwrap() error {
	return e.Err
}
