package server

// Server owns the listener lifecycle of the shop API.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives or the listener
// fails; Shutdown drains in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
