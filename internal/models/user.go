// Package models holds the client-side data records: the authenticated user,
// UI preferences, transient notifications and the server-owned resources the
// backend returns. All of them are plain values; ownership and mutation rules
// live in the state container.
package models

import "encoding/json"

// Role distinguishes standard accounts from administrators. The backend
// encodes the elevated role as 1.
type Role int

const (
	RoleStandard Role = 0
	RoleAdmin    Role = 1
)

// User is the account record created on successful login. It is destroyed on
// logout or on a 401 response from any call.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user holds the elevated role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Encode serializes the user for the session store.
func (u User) Encode() (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeUser parses a user record previously written by Encode.
func DecodeUser(s string) (User, error) {
	var u User
	err := json.Unmarshal([]byte(s), &u)
	return u, err
}
