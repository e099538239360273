package usecase

import (
	"context"
	"strings"

	"secondbrain/apperr"
	"secondbrain/model"
	"secondbrain/services"
	"secondbrain/utils"
)

// InvalidCredentials is the single login failure message. Unknown
// email and wrong password are indistinguishable on purpose.
const InvalidCredentials = "Invalid credentials"

type UserService struct {
	Users UsersRepository
}

// Signup hashes the password and creates the user. Duplicate emails
// surface as a conflict from the repository.
func (svc *UserService) Signup(ctx context.Context, email, password, fullName string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	fullName = strings.TrimSpace(fullName)

	if fullName == "" {
		return nil, apperr.Validation(apperr.FieldError{
			Field: "fullName", Message: "Full name is required",
		})
	}
	if len(password) < 6 {
		return nil, apperr.Validation(apperr.FieldError{
			Field: "password", Message: "Password must be at least 6 characters",
		})
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user := &model.User{
		ID:           utils.GenerateID(),
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
	}
	if err := svc.Users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the user. Every failure path
// yields the same auth error.
func (svc *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := svc.Users.FindByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Auth(InvalidCredentials)
		}
		return nil, err
	}

	ok, err := services.VerifyPassword(user.PasswordHash, password)
	if err != nil || !ok {
		return nil, apperr.Auth(InvalidCredentials)
	}
	return user, nil
}

// GetProfile resolves the user behind a validated session token. A
// vanished user invalidates the session.
func (svc *UserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.Users.FindByID(ctx, userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Auth("User not found")
		}
		return nil, err
	}
	return user, nil
}
