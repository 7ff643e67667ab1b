// Package app provides the application service layer.
//
// Orchestrates the signup use cases: listing the catalog, enrolling and
// withdrawing students. Sits between HTTP handlers and the registry, records
// metrics, and logs every mutation. Depends on domain interfaces, not
// concrete implementations.
package app
