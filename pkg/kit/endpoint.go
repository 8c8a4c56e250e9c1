package kit

import "context"

// Endpoint is one transport-agnostic operation of the registry: a
// vocabulary search, a stats read, a population pass. HTTP handlers and
// MCP tools dispatch to the same Endpoint, so each operation's
// validation and error semantics exist exactly once.
type Endpoint func(ctx context.Context, request any) (response any, err error)

// Middleware wraps an Endpoint with a cross-cutting concern, request
// logging being the one this registry ships.
type Middleware func(Endpoint) Endpoint

// Chain composes middlewares so the first argument runs outermost:
// Chain(a, b, c)(endpoint) == a(b(c(endpoint))).
func Chain(outer Middleware, others ...Middleware) Middleware {
	return func(next Endpoint) Endpoint {
		for i := len(others) - 1; i >= 0; i-- {
			next = others[i](next)
		}
		return outer(next)
	}
}
