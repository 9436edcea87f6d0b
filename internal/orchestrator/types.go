package orchestrator

import (
	"context"

	"conversational-support-assistant/internal/model"
)

// Node names the states of the turn graph.
type Node string

const (
	NodeRouteQuery         Node = "route_query"
	NodeGetProductInfo     Node = "get_product_info"
	NodeHandleGenericQuery Node = "handle_generic_query"
	NodeComposeResponse    Node = "compose_response"
	NodeEnd                Node = "end"
)

// TurnConfig is the request-scoped configuration passed through one traversal.
type TurnConfig struct {
	SessionKey string
}

// QueryHandler is the domain handler boundary. Handlers receive the current
// state and return the raw result text for the turn; errors are absorbed by
// the graph, never propagated.
type QueryHandler interface {
	Handle(ctx context.Context, state *model.ConversationState, cfg TurnConfig) (string, error)
}
