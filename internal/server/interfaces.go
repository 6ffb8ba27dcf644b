package server

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal is
	// received and the server has shut down.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
