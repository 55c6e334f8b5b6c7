package domain

import "time"

// AdminUser учетная запись администратора
type AdminUser struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// RoleAdmin роль, которая пишется в токен администратора
const RoleAdmin = "admin"
