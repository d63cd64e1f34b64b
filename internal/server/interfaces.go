package server

// Server is one transport listener. RunServer blocks until the listener
// stops; Shutdown asks it to stop and drains requests in flight.
type Server interface {
	RunServer()
	Shutdown()
}
