// Package observable wraps command and query handlers with logging and metrics.
package observable
