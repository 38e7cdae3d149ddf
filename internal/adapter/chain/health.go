package chain

import "context"

// NeoHealthCheck implements ports.HealthChecker against the Neo RPC node.
type NeoHealthCheck struct {
	rpc *NeoRPC
}

// NewNeoHealthCheck creates a Neo RPC health checker.
func NewNeoHealthCheck(rpc *NeoRPC) *NeoHealthCheck {
	return &NeoHealthCheck{rpc: rpc}
}

// Ping checks node connectivity with a getblockcount call.
func (h *NeoHealthCheck) Ping(ctx context.Context) error {
	_, err := h.rpc.call(ctx, "getblockcount", []any{})
	return err
}

// Name returns the dependency name.
func (h *NeoHealthCheck) Name() string {
	return "neo-rpc"
}
