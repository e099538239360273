package dto

import "secondbrain/model"

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both signup and login.
type AuthResponse struct {
	Token    string `json:"token"`
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// SessionResponse is the public profile behind GET /auth/session.
type SessionResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

func ToAuthResponse(user *model.User, token string) AuthResponse {
	return AuthResponse{
		Token:    token,
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}
}

func ToSessionResponse(user *model.User) SessionResponse {
	return SessionResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}
}
