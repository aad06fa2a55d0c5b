// Package internalcheck holds policy tests over the source of the signature
// packages.
//
// The tests parse and type-check the packages under pkg/basicsig and reject
// constructs that tend to leak secrets: hex formatting verbs in format
// strings, == on byte slices and arrays, and logging or printing from the
// cryptographic core. It exports nothing.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using basicsig-go.
package internalcheck
