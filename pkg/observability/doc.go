/*
Package observability provides monitoring for the Morse transcoder.

Metrics exposes Prometheus collectors fed by domain.LifecycleHooks, so any
host (CLI, HTTP, MCP) can plug them into a Transcoder without the core
depending on Prometheus. LogHooks does the same for structured logging.

	m := observability.NewMetrics()
	tc, _ := morse.New(morse.WithLifecycleHooks(m.Hooks()))
	http.Handle("/metrics", m.Handler())
*/
package observability
