package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// User is looked up by email for authentication. Password holds the bcrypt
// hash and is never serialized.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type Claims struct {
	UserID    string
	UserName  string
	UserEmail string
	jwt.RegisteredClaims
}
