package models

// ValidationError marks malformed or missing required input. Its message is
// user-facing and shown verbatim by the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigurationError marks missing operator configuration. Its message is
// operator-facing, not meant for end users.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// DeliveryError marks a failure reported by the notification sink
type DeliveryError struct {
	Message string
}

func (e *DeliveryError) Error() string {
	return e.Message
}
