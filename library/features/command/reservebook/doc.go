// Package reservebook implements the Reserve Book use case.
//
// Only checked-out items can be reserved. A reservation is a passive record on the
// account: there is no queue and nobody gets notified.
package reservebook
