// Package memory implements the storage ports in process memory. EntryStore
// is the reference implementation of the entry store contract; the package
// backs service tests and the "memory" storage driver.
//
// Values are copied on the way in and out, so callers never share memory
// with a store.
package memory
