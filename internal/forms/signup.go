package forms

import (
	"context"
	"regexp"

	"gotasker/internal/service"
	"gotasker/internal/session"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SignupForm owns the signup draft fields.
type SignupForm struct {
	Username string
	Email    string
	Password string
}

// Validate checks the fields in order: username, then email, then
// password. The first failing rule wins and the rest are not checked.
func (f *SignupForm) Validate() error {
	if f.Username == "" {
		return &ValidationError{Field: "username", Message: "Username is required"}
	}
	if !emailPattern.MatchString(f.Email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email"}
	}
	if f.Password == "" {
		return &ValidationError{Field: "password", Message: "Password is required"}
	}
	return nil
}

// Submit validates, registers the account and stores the issued token
// in sess. On any failure the draft fields and the session token are
// left unchanged.
func (f *SignupForm) Submit(ctx context.Context, svc service.Service, sess session.Store) error {
	if err := f.Validate(); err != nil {
		return err
	}

	token, err := svc.Signup(ctx, service.Credentials{
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
	})
	if err != nil {
		return err
	}
	return sess.Set(token)
}

// LoginForm owns the login draft fields.
type LoginForm struct {
	Username string
	Password string
}

// Validate checks username then password; first failure wins.
func (f *LoginForm) Validate() error {
	if f.Username == "" {
		return &ValidationError{Field: "username", Message: "Username is required"}
	}
	if f.Password == "" {
		return &ValidationError{Field: "password", Message: "Password is required"}
	}
	return nil
}

// Submit validates, logs in and stores the issued token in sess.
// On failure the session token is unchanged.
func (f *LoginForm) Submit(ctx context.Context, svc service.Service, sess session.Store) error {
	if err := f.Validate(); err != nil {
		return err
	}

	token, err := svc.Login(ctx, service.Credentials{
		Username: f.Username,
		Password: f.Password,
	})
	if err != nil {
		return err
	}
	return sess.Set(token)
}
