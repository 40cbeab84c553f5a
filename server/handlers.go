package server

import (
	"net/http"

	"github.com/onnwee/chatbot/command"
)

// Handlers holds dependencies for all HTTP handlers.
type Handlers struct {
	resolver *command.Resolver
}

// NewHandlers creates a new Handlers instance with the given dependencies.
func NewHandlers(resolver *command.Resolver) *Handlers {
	return &Handlers{resolver: resolver}
}

// HandleHealthz responds to liveness probe requests.
func (h *Handlers) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// HandleCommands lists the catalog in scan order.
func (h *Handlers) HandleCommands(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.resolver == nil || h.resolver.Catalog == nil {
		http.Error(w, "no catalog", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"commands": h.resolver.Catalog.Entries()})
}

// HandleResolve classifies the line given in ?q= without sending anything to chat.
func (h *Handlers) HandleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.resolver == nil {
		http.Error(w, "no resolver", http.StatusServiceUnavailable)
		return
	}
	q, ok := r.URL.Query()["q"]
	if !ok {
		http.Error(w, "missing q", http.StatusBadRequest)
		return
	}
	res := h.resolver.Resolve(q[0])
	if res.Params == nil {
		res.Params = []string{}
	}
	writeJSON(w, http.StatusOK, res)
}
