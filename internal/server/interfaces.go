package server

// Server is the lifecycle contract for the transport servers this package
// manages. RunServer blocks until the server is stopped; Shutdown drains
// in-flight requests and releases the listener.
type Server interface {
	// RunServer starts accepting requests and blocks until shutdown.
	RunServer()

	// Shutdown stops the server gracefully.
	Shutdown()
}
