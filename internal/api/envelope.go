package api

// Envelope is the wrapper every backend response shares. The pipeline returns
// it verbatim to the caller: Success=false on a 2xx response is NOT an error,
// callers must inspect the flag themselves.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// LoginData is the payload of a successful POST /auth/login.
type LoginData struct {
	AccountID int64  `json:"accountId"`
	Email     string `json:"email"`
	Role      int    `json:"role"`
	Token     string `json:"token"`
}
