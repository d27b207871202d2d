// Package common contains shared constants and sentinel errors used across
// SoulSpace components.
package common

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "soulspace_session"

// NoActiveSessionMessage is the exact body marker the server sends on
// GET /check_session when no session cookie is present. The client treats a
// 401 carrying this string as the normal unauthenticated state, not an
// error. Do not reword it without changing both sides.
const NoActiveSessionMessage = "No active session."

// UnauthorizedMessage is returned by protected routes when the session is
// missing or invalid.
const UnauthorizedMessage = "Unauthorized: Please log in to access this resource."
