// Package gridbase provides types, interfaces, and helpers for working with
// the Gridbase tabular-database API.
//
// # Overview
//
// The gridbase package defines the domain types (e.g., Base, Table, Record,
// Field, View, Webhook) and the interfaces for resource-oriented clients
// (e.g., BasesClient, RecordsClient). A concrete implementation of these
// clients is provided by the gridbaseclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// gridbaseclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/gridbase-io/gridbase-go/pkg/gridbase"
//	  "github.com/gridbase-io/gridbase-go/pkg/gridbaseclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := gridbaseclient.NewWithAPIKey("https://api.example.com/api/v1", "gb_live_...")
//	  if err != nil { log.Fatal(err) }
//
//	  bases, err := cli.Bases().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = bases
//	}
//
// # Authentication
//
// The client sends at most one authentication header per request. When an API
// key is configured it is sent as X-API-Key; otherwise a configured token is
// sent as a Bearer Authorization header. A successful Auth().Login call stores
// the returned token on the client's shared credentials, so subsequent calls
// from any resource client are authenticated without reconstruction.
//
// # Errors
//
// Requests that reach the service but fail with a non-success status are
// returned as *APIError, carrying the service's message, the HTTP status
// code, and the raw response body. Network-level failures (DNS, connection,
// timeout) are returned as ordinary wrapped errors and never as *APIError.
package gridbase
