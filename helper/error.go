package helper

import "fmt"

// NewError wraps err with the operation that failed for consistent messages
func NewError(operation string, err error) error {
	return fmt.Errorf("failed to %s: %w", operation, err)
}
