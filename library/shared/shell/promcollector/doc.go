// Package promcollector implements shell.MetricsCollector on top of prometheus/client_golang.
//
// Metric vectors are created on first use, with the label names of that first call.
// Later calls for the same metric must use the same label names; mismatching calls are dropped.
package promcollector
