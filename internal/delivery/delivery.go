// Package delivery defines the contract every long-running server of the
// application satisfies, whether it speaks HTTP or just runs loops.
package delivery

import "context"

// Delivery is a startable server. Serve blocks until the delivery stops;
// shutdown is arranged through the fx lifecycle hooks of the concrete type.
type Delivery interface {
	Serve(ctx context.Context) error
}
