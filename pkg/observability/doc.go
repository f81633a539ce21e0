/*
Package observability exposes Prometheus instrumentation for the machine
hosts: step and run counters, active session gauge, and HTTP request
counts. The collectors are optional everywhere they are accepted; a nil
*Metrics disables instrumentation without conditionals at the call sites.
*/
package observability
