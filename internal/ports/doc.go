// Package ports defines the interfaces between layers. Service ports are
// implemented by the application layer and called by HTTP handlers. Client
// and store ports are implemented by outbound adapters (university sites,
// persistence) and called by the application layer.
package ports
