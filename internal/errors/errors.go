package errors

import (
	"fmt"
	"time"
)

// Error types for the word model system
type ErrorType string

const (
	// Construction errors
	ErrorTypeConfig ErrorType = "config"

	// Lexical knowledge base errors
	ErrorTypeLexicon ErrorType = "lexicon"

	// Caller input errors
	ErrorTypeInput ErrorType = "input"

	// Corpus loading errors
	ErrorTypeCorpus ErrorType = "corpus"
)

// ConfigError represents a configuration error surfaced at construction time
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// LookupError represents a failed lexical knowledge base query
type LookupError struct {
	Type       ErrorType
	POS        string
	Word       string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewLookupError creates a new lookup error
func NewLookupError(op, pos, word string, err error) *LookupError {
	return &LookupError{
		Type:       ErrorTypeLexicon,
		POS:        pos,
		Word:       word,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.Word != "" {
		return fmt.Sprintf("%s %s failed for %s %q: %v", e.Type, e.Operation, e.POS, e.Word, e.Underlying)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Type, e.Operation, e.Underlying)
}

// Unwrap returns the underlying error
func (e *LookupError) Unwrap() error {
	return e.Underlying
}

// InputError represents malformed caller input, e.g. a bad tool argument
type InputError struct {
	Type       ErrorType
	Field      string
	Underlying error
	Timestamp  time.Time
}

// NewInputError creates a new input error
func NewInputError(field string, err error) *InputError {
	return &InputError{
		Type:       ErrorTypeInput,
		Field:      field,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *InputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %v", e.Underlying)
	}
	return fmt.Sprintf("invalid input for %s: %v", e.Field, e.Underlying)
}

// Unwrap returns the underlying error
func (e *InputError) Unwrap() error {
	return e.Underlying
}

// CorpusError represents a document that could not be loaded
type CorpusError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewCorpusError creates a new corpus error
func NewCorpusError(op, path string, err error) *CorpusError {
	return &CorpusError{
		Type:       ErrorTypeCorpus,
		Path:       path,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *CorpusError) Error() string {
	return fmt.Sprintf("corpus %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
}

// Unwrap returns the underlying error
func (e *CorpusError) Unwrap() error {
	return e.Underlying
}

// MultiError represents multiple errors
type MultiError struct {
	Errors []error
}

// NewMultiError creates a new multi-error
func NewMultiError(errs []error) *MultiError {
	// Filter out nil errors
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// Error implements the error interface
func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all errors
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// ErrorOrNil returns nil when no errors were collected
func (e *MultiError) ErrorOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}
