// Package identity provides authenticated identity management for boardhub
// requests.
//
// This package separates the concept of an authenticated requester from the
// raw token parsing. An Identity combines token claims (user id, email, name)
// with request-specific context (remote IP).
//
// # Basic Usage
//
//	// Build identity in the auth middleware after token validation
//	id := &identity.Identity{UserID: user.ID, Email: user.Email}
//	id.WithRemoteIP(clientIP)
//
//	// Store in request context
//	ctx = identity.Set(ctx, id)
//
//	// Retrieve from context
//	id, ok := identity.Get(ctx)
//
// Handlers never look at the Authorization header themselves; the middleware
// is the only place tokens are parsed.
package identity
