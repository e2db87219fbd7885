package shared

// FieldErrors maps a form field name to the ordered list of validation
// messages reported for it. An empty map means the input parsed cleanly.
type FieldErrors map[string][]string

// Add appends a message to the errors for a field, preserving order
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// HasErrors returns true if any field carries at least one message
func (f FieldErrors) HasErrors() bool {
	return len(f) > 0
}

// ActionState is the request-scoped outcome of a mutation attempt. It carries
// either field errors plus a summary message (validation failure), a message
// alone (persistence failure), or a redirect target (success). It is never
// persisted; it exists only to round-trip back to the form that invoked the
// mutation.
type ActionState struct {
	Errors     FieldErrors `json:"errors,omitempty"`
	Message    string      `json:"message,omitempty"`
	RedirectTo string      `json:"redirect_to,omitempty"`
}

// Invalid builds the action state for a validation failure
func Invalid(errors FieldErrors, message string) ActionState {
	return ActionState{Errors: errors, Message: message}
}

// Failed builds the action state for a persistence failure
func Failed(message string) ActionState {
	return ActionState{Message: message}
}

// Redirect builds the action state for a successful mutation
func Redirect(path string) ActionState {
	return ActionState{RedirectTo: path}
}

// Succeeded reports whether the mutation completed and the caller should
// navigate away rather than re-render the form
func (s ActionState) Succeeded() bool {
	return s.RedirectTo != ""
}
