package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/alvisk/encode-spoonOS-sub000/internal/core/ports"
	"github.com/alvisk/encode-spoonOS-sub000/pkg/apperror"
	"github.com/alvisk/encode-spoonOS-sub000/pkg/response"
)

// headerPayment is the inbound x402 payment header relayed to the agent.
const headerPayment = "X-Payment"

// ProxyHandler relays arbitrary analysis requests to the hosted agent.
type ProxyHandler struct {
	agent ports.AgentGateway
}

// NewProxyHandler creates a new ProxyHandler.
func NewProxyHandler(agent ports.AgentGateway) *ProxyHandler {
	return &ProxyHandler{agent: agent}
}

// Invoke handles POST /api/spoonos. The body is relayed as-is; the gateway
// treats malformed JSON as an empty object rather than rejecting it.
func (h *ProxyHandler) Invoke(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		body = nil
	}

	result, err := h.agent.Invoke(c.Request.Context(), body, c.GetHeader(headerPayment))
	if err != nil {
		response.Error(c, apperror.ErrAgentUnreachable(err))
		return
	}
	response.Relay(c, result.Status, result.Body)
}
