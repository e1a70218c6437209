// Package server provides the HTTP server for the boardhub API.
//
// It uses gorilla/mux for routing, with request logging via
// gorilla/handlers. The Server struct is a plain dependency bundle: the
// composition root fills in the stores, the access evaluator and resolver,
// the recency tracker and the auth middleware, then the endpoints
// subpackage registers routes against it:
//
//	srv := server.NewServer(db, cfg, log, host, port)
//	// ... assign stores and middleware ...
//	endpoints.RegisterAll(srv)
//	srv.Start()
//
// Every route requires a bearer token except GET /health.
package server
