package validators

// FieldErrors maps a field name to the list of human-readable violation
// messages recorded for it. All fields are validated before the map is
// returned, so a single response reports every problem at once.
type FieldErrors map[string][]string

// add appends a message to the field's message list.
func (f FieldErrors) add(field, message string) {
	f[field] = append(f[field], message)
}

// ValidationError is the result value carrying a field→messages map.
// Services branch on it without any throw/catch idiom and the HTTP layer
// converts it to a 400 response with the map as the details payload.
type ValidationError struct {
	Fields FieldErrors
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation error"
}
