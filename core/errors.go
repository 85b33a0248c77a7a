package core

import "strings"

type ErrorNotFound struct {
	Subject string
}

func (e ErrorNotFound) Error() string {
	if e.Subject == "" {
		return "Not Found"
	}
	return e.Subject + " not found"
}

func NewErrorNotFound(subject string) ErrorNotFound {
	return ErrorNotFound{Subject: subject}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

type ErrorAlreadyExists struct {
}

func (e ErrorAlreadyExists) Error() string {
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}

// FieldError attributes a validation failure to a single input field.
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

type ErrorValidation struct {
	Fields []FieldError
}

func (e ErrorValidation) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Msg
	}
	return "Validation Failed: " + strings.Join(msgs, ", ")
}

func NewErrorValidation(fields ...FieldError) ErrorValidation {
	return ErrorValidation{Fields: fields}
}
