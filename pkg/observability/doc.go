/*
Package observability provides tools for monitoring labyrinth runs.

Everything here plugs into an engine as domain.LifecycleHooks: Prometheus
counters for steps, halts and outcomes, and structured log lines for
every consumed token.
*/
package observability
