// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters. Client ports are implemented by outbound adapters (probes, database
// sessions) and called by the application layer.
package ports
