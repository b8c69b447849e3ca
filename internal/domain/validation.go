package domain

// ValidationState é o resultado de uma submissão de formulário que falhou
type ValidationState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// AddError acrescenta uma mensagem à lista do campo
func (v *ValidationState) AddError(field, message string) {
	if v.Errors == nil {
		v.Errors = make(map[string][]string)
	}
	v.Errors[field] = append(v.Errors[field], message)
}

func (v *ValidationState) HasErrors() bool {
	return len(v.Errors) > 0
}
