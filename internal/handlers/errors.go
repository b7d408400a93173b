package handlers

import "fmt"

// RetrievalError marks an unexpected storage failure during a read.
type RetrievalError struct {
	Resource string
	Err      error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("error retrieving %s: %v", e.Resource, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}
