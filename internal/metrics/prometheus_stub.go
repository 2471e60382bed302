//go:build noprom

package metrics

// Builds tagged noprom drop the Prometheus exporter entirely.
func enablePrometheus(string) error { return nil }
