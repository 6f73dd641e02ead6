// Package polyzero implements polylog.Logger on top of zerolog. Only the part
// of the zerolog API used by the request builders and the CLI is mapped.
package polyzero
