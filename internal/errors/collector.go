package errors

import (
	"fmt"
	"strings"
	"sync"
)

// ErrorCollector accumulates errors across a multi-file or multi-platform
// operation so a single failure does not abort the rest of the work.
type ErrorCollector struct {
	mutex  sync.RWMutex
	errors []error
}

// NewErrorCollector creates a new error collector.
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		errors: make([]error, 0),
	}
}

// Add records an error. Nil errors are ignored.
func (ec *ErrorCollector) Add(err error) {
	if err == nil {
		return
	}
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.errors = append(ec.errors, err)
}

// Errors returns a copy of all collected errors.
func (ec *ErrorCollector) Errors() []error {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	result := make([]error, len(ec.errors))
	copy(result, ec.errors)

	return result
}

// HasErrors reports whether any error has been collected.
func (ec *ErrorCollector) HasErrors() bool {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()

	return len(ec.errors) > 0
}

// Count returns the number of collected errors.
func (ec *ErrorCollector) Count() int {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()

	return len(ec.errors)
}

// Summary returns a single error joining all collected messages, or nil
// when nothing was collected.
func (ec *ErrorCollector) Summary() error {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()

	if len(ec.errors) == 0 {
		return nil
	}

	messages := make([]string, len(ec.errors))
	for i, err := range ec.errors {
		messages[i] = err.Error()
	}

	return fmt.Errorf("%d error(s): %s", len(ec.errors), strings.Join(messages, "; "))
}
