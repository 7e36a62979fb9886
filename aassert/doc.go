// Package aassert has assertions that go beyond what testify is offering.
// Its functions follow the design of testify/assert:
// they report a failure to t and return whether the assertion passed.
package aassert
