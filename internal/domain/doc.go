// Package domain contains the health model shared by the refresh loop, the
// status store, and the HTTP surface: per-dependency statuses and the
// immutable Snapshot that bundles them.
package domain
