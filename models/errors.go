package models

import "fmt"

// Domain error taxonomy. Every kind is raised where it is detected and
// translated exactly once at the HTTP boundary (helper.HTTPHelper).

type ErrorUnauthorized struct{}

func (e ErrorUnauthorized) Error() string {
	return "Not authorized"
}

type ErrorNotFound struct {
	Entity string
	Hint   string
}

func (e ErrorNotFound) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s not found, %s", e.Entity, e.Hint)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

type ErrorForbidden struct {
	Action string
}

func (e ErrorForbidden) Error() string {
	return fmt.Sprintf("You are not the author of this %s", e.Action)
}

type ErrorFieldRequired struct {
	Field string
}

func (e ErrorFieldRequired) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

type ErrorAlreadyTaken struct {
	Field string
	Hint  string
}

func (e ErrorAlreadyTaken) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s is already taken, %s", e.Field, e.Hint)
	}
	return fmt.Sprintf("%s is already taken", e.Field)
}

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Message
}
