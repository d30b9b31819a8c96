// Package messaging provides a broker-agnostic API for publishing and
// consuming messages.
//
// Business code depends on the interfaces in this package, not on the
// underlying broker client, so implementations can be swapped without
// touching use-case code.
package messaging
