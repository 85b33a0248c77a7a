package core

// ValidationResponse is the 400 body: one entry per failed field.
type ValidationResponse struct {
	Errors []FieldError `json:"errors"`
}

// MessageResponse is the body for confirmations and simple failures.
type MessageResponse struct {
	Msg string `json:"msg"`
}
