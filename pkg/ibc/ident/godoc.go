// Package ident defines the typed IBC identifiers used to scope query requests.
// Construction through the New* functions validates an identifier against the
// ibc-go 24-host rules; once constructed, identifiers are treated as opaque and
// rendered with String().
package ident
