package domain

import "errors"

var (
	// ErrInvalidUsername is returned when a username is shorter than 3 characters.
	ErrInvalidUsername = errors.New("username must be at least 3 characters")
	// ErrDuplicateUser is returned when the username is already registered.
	ErrDuplicateUser = errors.New("username already taken")
	// ErrUserNotFound is returned when an operation names an unregistered user.
	ErrUserNotFound = errors.New("username not found")
	// ErrQuestionNotFound indicates a question ID does not resolve in the catalog.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrQuestionsExhausted signals that the user has answered every catalog question.
	ErrQuestionsExhausted = errors.New("no unanswered questions left")
	// ErrUnknownLabel is returned when a submitted label is outside the category set.
	ErrUnknownLabel = errors.New("label not in category set")
	// ErrMalformedRecord marks a stored or imported record that cannot be decoded.
	ErrMalformedRecord = errors.New("malformed record")
)
