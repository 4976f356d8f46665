// Package openapi exposes the contracts for reading model definitions out of
// schema documents: where a document comes from (Source), how its bytes are
// fetched (Loader) and how model definitions are extracted (Parser).
// Implementations live under internal/openapi so kin-openapi stays an
// implementation detail.
package openapi
