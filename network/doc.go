// Package network defines the addressing layer of the overlay: transport
// protocols and address families, relay circuit coordinates, the concrete
// IPEndpoint and BTHEndpoint value types, and the Endpoint variant that
// unifies them.
//
// All types in this package are plain, comparable values. Copies are
// independent, equality is ==, and values can be used directly as map keys.
// None of the types perform I/O or retain references to shared state; a
// single value must not be mutated concurrently from multiple goroutines,
// but passing copies across goroutines is always safe.
package network
