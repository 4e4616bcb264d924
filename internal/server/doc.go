// Package server runs the HTTP transport and the background workers.
//
// It owns the process lifecycle: start listening, start workers, wait for a
// stop signal or a listener failure, then shut the server down gracefully
// and wait for every worker to return.
package server
