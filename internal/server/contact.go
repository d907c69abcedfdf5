package server

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ContactRequest is the request body for /contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5"`
	Message string `json:"message" validate:"required,min=10"`
}

// Validate checks the contact form fields and returns a user-facing
// error describing the first failed rule.
func (c ContactRequest) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.New("All fields are required")
	}

	first := verrs[0]
	if first.Tag() == "required" {
		return errors.New("All fields are required")
	}
	switch first.Field() {
	case "Name":
		return errors.New("Name must be at least 2 characters long")
	case "Email":
		return errors.New("Please provide a valid email address")
	case "Subject":
		return errors.New("Subject must be at least 5 characters long")
	case "Message":
		return errors.New("Message must be at least 10 characters long")
	default:
		return errors.New("All fields are required")
	}
}
