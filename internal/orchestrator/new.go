package orchestrator

import (
	"conversational-support-assistant/internal/router"
	"conversational-support-assistant/pkg/log"
)

// Orchestrator drives one conversational turn through the fixed graph
//
//	route_query → {get_product_info | handle_generic_query} → compose_response → end
//
// The node set and topology are closed; dispatch is an enum switch on the
// category the router wrote, nothing else.
type Orchestrator struct {
	l       log.Logger
	router  router.Router
	product QueryHandler
	generic QueryHandler
}

// New creates a new Orchestrator
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(l log.Logger, r router.Router, product, generic QueryHandler) *Orchestrator {
	return &Orchestrator{
		l:       l,
		router:  r,
		product: product,
		generic: generic,
	}
}
