//go:build unit || e2e

package builder

import (
	reqdto "tenancy-service/internal/handler/dto/request"
)

type AuthBuilder struct {
	Name     string
	Email    string
	Phone    string
	NID      string
	Password string
	Role     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:     "Rahim Uddin",
		Email:    "test@example.com",
		Phone:    "01712345678",
		NID:      "1234567890",
		Password: "password123",
		Role:     "tenant",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithRole(role string) *AuthBuilder {
	a.Role = role
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     a.Name,
		Email:    a.Email,
		Phone:    a.Phone,
		NID:      a.NID,
		Password: a.Password,
		Role:     a.Role,
	}
}
