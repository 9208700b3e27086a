package common

// AuthHeaderName is the HTTP header used to carry the session token on
// outbound requests.
const AuthHeaderName = "Authorization"

// BearerPrefix precedes the token value in the auth header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries a per-request correlation id.
const RequestIDHeaderName = "X-Request-Id"
