package models

import "time"

// LoginRequest учетные данные администратора
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse выданный токен
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Principal администратор, от имени которого выполняется запрос
type Principal struct {
	Email string
	Role  string
}
