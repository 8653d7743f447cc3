// Package metrics publishes Polaris counters via the standard library's
// expvar so they are visible on /debug/vars and convertible to Prometheus
// text format by the server without external dependencies.
package metrics
