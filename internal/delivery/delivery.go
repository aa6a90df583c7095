// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a servable transport such as the HTTP server. Implementations
// block in Serve until the listener stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
