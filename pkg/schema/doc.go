// Package schema holds the data model shared by the translation and
// generation stages: raw field descriptors as read from a document, their
// typed counterparts, and the per-run result mapping.
package schema
