// Package registry maps config names to the persistence operations of their
// config types so callers can work with configs they only know by name.
package registry
