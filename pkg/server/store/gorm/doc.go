// Package gorm provides GORM-based implementations of the store interfaces
// defined in the parent store package.
//
// The implementations target Postgres. Plain lookups use the GORM query
// API; scoped reads and relation toggles drop to raw SQL where the query
// shape is clearer that way.
package gorm
