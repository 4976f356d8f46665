// Package translate maps raw schema fields onto typed field descriptors.
//
// The rules are evaluated in order and the first match wins:
//
//  1. fields with items become Array<T>; the item goes back through the
//     active translator, so overrides apply at every nesting level
//  2. string fields with a date or date-time format become Date
//  3. references resolve to their trailing path segment, renamed through a
//     lookup table (x-any becomes any)
//  4. anything else keeps its declared type
//
// Both translators are plain functions so callers can replace the field
// translator without touching the schema translator.
package translate
