// Package gridbaseclient provides the primary entry point for constructing a
// Gridbase API client that implements the gridbase.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the gridbase package. Most
// applications should import gridbaseclient to build a client, then use the
// returned gridbase.Client to access resource-specific clients, for example
// Bases(), Tables(), Records(), etc.
//
// Quick start
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
//
//	  // With an API key:
//	  cli, err := gridbaseclient.NewWithAPIKey("https://api.gridbase.example.com", "gb_live_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a session token you already have:
//	  cli, err = gridbaseclient.NewWithToken("https://api.gridbase.example.com", "eyJhbGciOi...")
//
//	  // Or start without credentials and log in:
//	  cli, err = gridbaseclient.New(&gridbase.Config{Endpoint: "https://api.gridbase.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  _, err = cli.Auth().Login(ctx, "ada@example.com", "secret")
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the gridbase.Client interface
//	  bases, err := cli.Bases().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = bases
//	}
//
// The endpoint may be given without a scheme; https:// is assumed. A trailing
// slash is trimmed.
package gridbaseclient
