package utils

import "errors"

// Error taxonomy for the intake fan-out. Each external concern maps to
// one type so the orchestrator and handlers can branch on kind instead
// of matching message strings.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

func IsConfiguration(err error) bool {
	var c *ConfigurationError
	return errors.As(err, &c)
}

type PersistenceError struct {
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewPersistenceError(message string, err error) error {
	return &PersistenceError{Message: message, Err: err}
}

func IsPersistence(err error) bool {
	var p *PersistenceError
	return errors.As(err, &p)
}

// NotificationError carries the provider's HTTP status when the call got
// a response, zero when it failed at the transport level.
type NotificationError struct {
	Message    string
	StatusCode int
}

func (e *NotificationError) Error() string { return e.Message }

func NewNotificationError(message string, statusCode int) error {
	return &NotificationError{Message: message, StatusCode: statusCode}
}

func IsNotification(err error) bool {
	var n *NotificationError
	return errors.As(err, &n)
}
