package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"menuproxy-api/pkg/response"
)

// EventCatalogUpdated is the only notification type that triggers cache
// invalidation. Every other type is acknowledged without effect so new
// upstream event kinds never break the endpoint.
const EventCatalogUpdated = "catalog.version.updated"

// CatalogInvalidator clears the derived catalog caches after an upstream
// data change.
type CatalogInvalidator interface {
	InvalidateCatalog(ctx context.Context) error
}

// WebhookHandler handles upstream change notifications.
type WebhookHandler struct {
	invalidator CatalogInvalidator
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(invalidator CatalogInvalidator) *WebhookHandler {
	return &WebhookHandler{
		invalidator: invalidator,
	}
}

// webhookEvent is the minimal notification payload; only the event type
// matters here.
type webhookEvent struct {
	Type string `json:"type"`
}

// CatalogEvent handles POST /api/v1/webhooks/catalog
func (h *WebhookHandler) CatalogEvent(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var event webhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		// Unreadable notifications are acknowledged, not rejected.
		log.Printf("[WebhookHandler] Ignoring undecodable notification: %v", err)
		response.OK(w, map[string]string{"status": "ignored"})
		return
	}

	if event.Type != EventCatalogUpdated {
		response.OK(w, map[string]string{"status": "ignored", "type": event.Type})
		return
	}

	if err := h.invalidator.InvalidateCatalog(r.Context()); err != nil {
		response.Error(w, err)
		return
	}

	log.Printf("[WebhookHandler] Catalog caches cleared for event %q", event.Type)
	response.OK(w, map[string]string{"status": "invalidated", "type": event.Type})
}
