package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"power-cost-backend/internal/estimate"
	"power-cost-backend/internal/parse"
)

// DeviceResponse represents one catalog entry.
type DeviceResponse struct {
	Name         string `json:"name"`
	DefaultWatts int    `json:"default_watts"`
	Tip          string `json:"tip"`
}

// ListDevices handles GET /api/devices.
func (h *Handler) ListDevices(c *gin.Context) {
	devices := estimate.Catalog()
	responses := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		responses = append(responses, DeviceResponse{
			Name:         d.Name,
			DefaultWatts: d.DefaultWatts,
			Tip:          estimate.TipFor(d.Name),
		})
	}
	c.JSON(http.StatusOK, responses)
}

// GetTip handles GET /api/tips?device=. Every device name, known or not, gets a tip.
func (h *Handler) GetTip(c *gin.Context) {
	device, _ := parse.DeviceName(c.Query("device"))
	c.JSON(http.StatusOK, gin.H{"device": device, "tip": estimate.TipFor(device)})
}
