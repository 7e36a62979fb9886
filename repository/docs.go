// Package repository offers a generic, typed, in-memory repository keyed by a
// caller-assigned integer identity.
//
// Every failure is returned as an error wrapping one of the package's sentinel
// errors, so callers can decide with errors.Is whether to report and continue
// or to escalate. A failed operation never changes the repository.
//
// A MemoryRepository offers the basic set of methods out of the box. That might not be enough, though.
// It is possible to overwrite an existing method to change the behaviour as well as extend the repository
// with new methods by embedding it. There are examples for both.
// MemoryQuantityRepository is such an extension, adding UpdateQuantity for items that carry a quantity.
//
// The repositories are not safe for concurrent use. If more than one goroutine needs
// access, serialise it in the caller, e.g. with one mutex per repository.
//
// Sometimes it might be handy to persist some data, so it is possible to Dump a repository into a Store
// and Restore it later. This is NOT intended for production use and only recommended for demoing.
package repository
