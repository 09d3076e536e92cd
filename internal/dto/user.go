package dto

import (
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterRequest defines the payload for creating a new user.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"user_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest defines the payload for logging in.
type LoginRequest struct {
	Username string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the bearer token issued on login or registration.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// BalanceRequest confirms the caller's password before disclosing the balance.
type BalanceRequest struct {
	Password string `json:"password" binding:"required"`
}

// BalanceResponse returns the caller's current balance.
type BalanceResponse struct {
	Username string          `json:"user_name"`
	Balance  decimal.Decimal `json:"balance"`
}

// CheckUserResponse reports whether a username exists.
type CheckUserResponse struct {
	Exists bool   `json:"exists"`
	Name   string `json:"name,omitempty"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	Username string `json:"user_name"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// ToUserResponse converts a domain User to a UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
	}
}
