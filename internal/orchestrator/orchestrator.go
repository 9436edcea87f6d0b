package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"conversational-support-assistant/internal/composer"
	"conversational-support-assistant/internal/model"
)

// RunTurn executes exactly one full traversal from route_query to end for
// one user turn. The graph never loops or revisits nodes; every reachable
// state produces a displayable final response.
//
// Node failures are absorbed into fallback texts. RunTurn itself only errors
// on programming mistakes (nil state, broken topology), never on external
// call failures.
func (o *Orchestrator) RunTurn(ctx context.Context, state *model.ConversationState, cfg TurnConfig) error {
	if state == nil {
		return ErrNilState
	}

	state.BeginTurn()

	current := NodeRouteQuery
	for current != NodeEnd {
		next, err := o.step(ctx, current, state, cfg)
		if err != nil {
			return err
		}
		current = next
	}

	return nil
}

// step runs one node and returns the next one.
func (o *Orchestrator) step(ctx context.Context, current Node, state *model.ConversationState, cfg TurnConfig) (Node, error) {
	switch current {
	case NodeRouteQuery:
		o.routeQuery(ctx, state, cfg)
		if state.Category == model.CategoryProductReview {
			return NodeGetProductInfo, nil
		}
		// Router guarantees the category set is closed, so everything
		// else is generic.
		return NodeHandleGenericQuery, nil

	case NodeGetProductInfo:
		o.runHandler(ctx, o.product, current, state, cfg)
		return NodeComposeResponse, nil

	case NodeHandleGenericQuery:
		o.runHandler(ctx, o.generic, current, state, cfg)
		return NodeComposeResponse, nil

	case NodeComposeResponse:
		o.composeResponse(ctx, state, cfg)
		return NodeEnd, nil

	default:
		return "", fmt.Errorf("%s: unknown node %q", LogPrefixRunTurn, current)
	}
}

// routeQuery classifies the latest user message and writes the category.
func (o *Orchestrator) routeQuery(ctx context.Context, state *model.ConversationState, cfg TurnConfig) {
	query := state.LastUserMessage()
	state.Category = o.router.Classify(ctx, query, cfg.SessionKey)
	o.l.Debugf(ctx, "%s: session %s routed to %s", LogPrefixRunTurn, cfg.SessionKey, state.Category)
}

// runHandler invokes a domain handler and writes its result. Handler errors
// become a fixed apology so the state machine stays total.
func (o *Orchestrator) runHandler(ctx context.Context, handler QueryHandler, node Node, state *model.ConversationState, cfg TurnConfig) {
	result, err := handler.Handle(ctx, state, cfg)
	if err != nil {
		o.l.Errorf(ctx, "%s: session %s: node %s failed: %v", LogPrefixRunTurn, cfg.SessionKey, node, err)
		state.HandlerResult = HandlerFailureText
		return
	}
	state.HandlerResult = result
}

// composeResponse formats the handler result, writes the final response and
// appends the assistant message.
func (o *Orchestrator) composeResponse(ctx context.Context, state *model.ConversationState, cfg TurnConfig) {
	raw := state.HandlerResult
	if strings.TrimSpace(raw) == "" {
		o.l.Warnf(ctx, "%s: session %s: empty handler result", LogPrefixRunTurn, cfg.SessionKey)
		raw = NoResultText
	}

	final := composer.Compose(raw)
	state.FinalResponse = final
	state.AppendMessage(model.RoleAssistant, final)
}
