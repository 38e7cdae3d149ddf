package handler

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/alvisk/encode-spoonOS-sub000/internal/core/ports"
	"github.com/alvisk/encode-spoonOS-sub000/pkg/apperror"
	"github.com/alvisk/encode-spoonOS-sub000/pkg/response"
)

// WalletHandler handles wallet-related endpoints.
type WalletHandler struct {
	demo        ports.DemoData
	scanSvc     ports.ScanService
	activitySvc ports.ActivityService
	liveEnabled bool
}

// NewWalletHandler creates a new WalletHandler. liveEnabled false turns the
// single-wallet lookup into a demo-only endpoint.
func NewWalletHandler(demo ports.DemoData, scanSvc ports.ScanService, activitySvc ports.ActivityService, liveEnabled bool) *WalletHandler {
	return &WalletHandler{
		demo:        demo,
		scanSvc:     scanSvc,
		activitySvc: activitySvc,
		liveEnabled: liveEnabled,
	}
}

// ListWallets handles GET /api/wallets.
func (h *WalletHandler) ListWallets(c *gin.Context) {
	response.OK(c, h.demo.Wallets())
}

// GetWallet handles GET /api/wallets/:address. Demo wallets are served from
// the static dataset; unknown addresses trigger a live scan when enabled.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	address, err := pathAddress(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if w := h.demo.WalletByAddress(address); w != nil {
		response.OK(c, w)
		return
	}

	if !h.liveEnabled {
		response.Error(c, apperror.ErrNotFound("wallet"))
		return
	}

	snapshot, err := h.scanSvc.Scan(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snapshot)
}

// GetActivity handles GET /api/wallets/:address/activity.
func (h *WalletHandler) GetActivity(c *gin.Context) {
	address, err := pathAddress(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	records, err := h.activitySvc.RecentActivity(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, records)
}

// GetSummary handles GET /api/summary.
func (h *WalletHandler) GetSummary(c *gin.Context) {
	response.OK(c, h.demo.Summary())
}

// ListAlerts handles GET /api/alerts.
func (h *WalletHandler) ListAlerts(c *gin.Context) {
	response.OK(c, h.demo.Alerts())
}

// pathAddress percent-decodes the address path parameter.
func pathAddress(c *gin.Context) (string, error) {
	address, err := url.PathUnescape(c.Param("address"))
	if err != nil || address == "" {
		return "", apperror.Validation("malformed address parameter")
	}
	return address, nil
}
