package handler

import (
	"errors"
	"net/http"

	"secondbrain/apperr"
	"secondbrain/dto"
	"secondbrain/middleware"
	"secondbrain/services"
	"secondbrain/usecase"
	"secondbrain/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// signupFieldErrors maps binding failures to the field-level messages
// the signup contract promises.
func signupFieldErrors(err error) []apperr.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apperr.FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	fields := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Email":
			fields = append(fields, apperr.FieldError{Field: "email", Message: "Invalid email"})
		case "Password":
			fields = append(fields, apperr.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
		case "FullName":
			fields = append(fields, apperr.FieldError{Field: "fullName", Message: "Full name is required"})
		}
	}
	return fields
}

func SignupHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrors(c, signupFieldErrors(err))
		return
	}

	user, err := userService.Signup(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		middleware.AuthAttempts.WithLabelValues("failure", "signup").Inc()
		utils.FromError(c, err)
		return
	}

	token, err := services.GenerateToken(user.ID)
	if err != nil {
		utils.InternalError(c, "failed to generate token")
		return
	}

	middleware.AuthAttempts.WithLabelValues("success", "signup").Inc()
	c.JSON(http.StatusCreated, dto.ToAuthResponse(user, token))
}

func LoginHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Unauthorized(c, usecase.InvalidCredentials)
		return
	}

	user, err := userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.AuthAttempts.WithLabelValues("failure", "login").Inc()
		utils.FromError(c, err)
		return
	}

	token, err := services.GenerateToken(user.ID)
	if err != nil {
		utils.InternalError(c, "failed to generate token")
		return
	}

	middleware.AuthAttempts.WithLabelValues("success", "login").Inc()
	c.JSON(http.StatusOK, dto.ToAuthResponse(user, token))
}

// LogoutHandler always succeeds. Tokens are bearer and non-revocable;
// logout is the client discarding its copy.
func LogoutHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func SessionHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")

	user, err := userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(user))
}
