// Package store persists typed values under validated keys.
//
// A Backend moves raw bytes. Typed access goes through Key, which couples a
// name with a validation function, and the generic Get and Set helpers which
// encode values as YAML. A missing key is not an error: Get reports it with
// ok == false.
package store
