package domain

// FormState is the result of a mutation. A state with neither Errors nor
// Message means success.
type FormState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

func (s *FormState) HasFieldErrors() bool {
	return s != nil && len(s.Errors) > 0
}
