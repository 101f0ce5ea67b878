// Package probes implements the fixed set of dependency checks run by the
// refresh loop: database reachability, scheduler liveness via a marker file,
// and dashboard HTTP reachability.
//
// Every probe satisfies [ports.Prober] and never returns an error. Failures
// are folded into an Unhealthy status whose reason is the (truncated) error
// message, so a flaky dependency can never take down the refresh loop.
package probes
