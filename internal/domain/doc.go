// Package domain defines the core domain types and interfaces.
//
// This package contains the Activity record, the signup error taxonomy, and
// the repository contract implemented by the registry. No implementation
// code - just contracts. Prevents circular imports by keeping shared types
// in one place.
package domain
