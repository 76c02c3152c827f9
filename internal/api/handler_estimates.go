package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"power-cost-backend/internal/estimate"
	"power-cost-backend/internal/model"
	"power-cost-backend/internal/parse"
	"power-cost-backend/internal/store"
)

// Defaults matching the original form widgets.
const (
	defaultHoursPerDay  = 1.0
	defaultDaysPerMonth = 30
)

type estimateRequest struct {
	Device       string   `json:"device" form:"device" binding:"required"`
	PowerSaving  bool     `json:"power_saving" form:"power_saving"`
	PowerWatts   *int     `json:"power_watts" form:"power_watts"`
	HoursPerDay  *float64 `json:"hours_per_day" form:"hours_per_day"`
	DaysPerMonth *int     `json:"days_per_month" form:"days_per_month"`
	UnitPrice    *float64 `json:"unit_price" form:"unit_price"`
}

// EstimateResponse is the result of a single estimate.
type EstimateResponse struct {
	ID                  int64            `json:"id,omitempty"`
	Device              string           `json:"device"`
	PowerSaving         bool             `json:"power_saving"`
	PowerWatts          int              `json:"power_watts"`
	EffectivePowerWatts float64          `json:"effective_power_watts"`
	HoursPerDay         float64          `json:"hours_per_day"`
	DaysPerMonth        int              `json:"days_per_month"`
	UnitPrice           float64          `json:"unit_price"`
	Currency            string           `json:"currency"`
	DailyEnergyKWh      float64          `json:"daily_energy_kwh"`
	MonthlyEnergyKWh    float64          `json:"monthly_energy_kwh"`
	MonthlyCost         float64          `json:"monthly_cost"`
	Tip                 string           `json:"tip"`
	PowerSavingMessage  string           `json:"power_saving_message,omitempty"`
	Display             estimate.Display `json:"display"`
}

// input resolves the request into a complete estimator input, filling
// omitted fields with defaults.
func (h *Handler) input(req estimateRequest) (estimate.Input, error) {
	device, _ := parse.DeviceName(req.Device)

	in := estimate.Input{
		Device:      device,
		PowerSaving: req.PowerSaving,
		HoursPerDay: defaultHoursPerDay,
		DaysInMonth: defaultDaysPerMonth,
		UnitPrice:   h.estimator.UnitPrice,
	}
	if in.UnitPrice <= 0 {
		in.UnitPrice = estimate.DefaultUnitPrice
	}

	if req.PowerWatts != nil {
		in.PowerWatts = *req.PowerWatts
	} else {
		watts, err := estimate.DefaultPower(device)
		if err != nil {
			return estimate.Input{}, err
		}
		in.PowerWatts = watts
	}
	if req.HoursPerDay != nil {
		in.HoursPerDay = *req.HoursPerDay
	}
	if req.DaysPerMonth != nil {
		in.DaysInMonth = *req.DaysPerMonth
	}
	if req.UnitPrice != nil {
		in.UnitPrice = *req.UnitPrice
	}
	return in, nil
}

func (h *Handler) respond(in estimate.Input, res estimate.Result) EstimateResponse {
	resp := EstimateResponse{
		Device:              in.Device,
		PowerSaving:         in.PowerSaving,
		PowerWatts:          in.PowerWatts,
		EffectivePowerWatts: res.EffectivePowerWatts,
		HoursPerDay:         in.HoursPerDay,
		DaysPerMonth:        in.DaysInMonth,
		UnitPrice:           in.UnitPrice,
		Currency:            h.estimator.Currency,
		DailyEnergyKWh:      res.DailyEnergyKWh,
		MonthlyEnergyKWh:    res.MonthlyEnergyKWh,
		MonthlyCost:         res.MonthlyCost,
		Tip:                 res.Tip,
		Display:             res.Display(h.estimator.CurrencySymbol),
	}
	if in.PowerSaving {
		resp.PowerSavingMessage = estimate.PowerSavingMessage
	}
	return resp
}

func (h *Handler) compute(req estimateRequest) (estimate.Input, estimate.Result, error) {
	in, err := h.input(req)
	if err != nil {
		return in, estimate.Result{}, err
	}
	res, err := estimate.Estimate(in)
	return in, res, err
}

// GetEstimate handles GET /api/estimate. Nothing is persisted.
func (h *Handler) GetEstimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in, res, err := h.compute(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.respond(in, res))
}

// CreateEstimate handles POST /api/estimates: computes, saves and publishes.
func (h *Handler) CreateEstimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in, res, err := h.compute(req)
	if err != nil {
		writeError(c, err)
		return
	}

	record := model.Estimate{
		Device:              in.Device,
		PowerSaving:         in.PowerSaving,
		PowerWatts:          in.PowerWatts,
		EffectivePowerWatts: res.EffectivePowerWatts,
		HoursPerDay:         in.HoursPerDay,
		DaysPerMonth:        in.DaysInMonth,
		UnitPrice:           in.UnitPrice,
		DailyEnergyKWh:      res.DailyEnergyKWh,
		MonthlyEnergyKWh:    res.MonthlyEnergyKWh,
		MonthlyCost:         res.MonthlyCost,
		Currency:            h.estimator.Currency,
	}
	if err := h.store.SaveEstimate(c.Request.Context(), &record); err != nil {
		writeError(c, err)
		return
	}
	if h.dispatcher != nil {
		h.dispatcher.Dispatch(record)
	}

	resp := h.respond(in, res)
	resp.ID = record.ID
	c.JSON(http.StatusCreated, resp)
}

// ListEstimates handles GET /api/estimates?limit=&device=.
func (h *Handler) ListEstimates(c *gin.Context) {
	filter := store.ListFilter{}
	if raw := c.Query("device"); raw != "" {
		filter.Device, _ = parse.DeviceName(raw)
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		filter.Limit = limit
	}

	estimates, err := h.store.ListEstimates(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	if estimates == nil {
		estimates = []model.Estimate{}
	}
	c.JSON(http.StatusOK, estimates)
}

func estimateID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid estimate ID"})
		return 0, false
	}
	return id, true
}

// GetSavedEstimate handles GET /api/estimates/:id.
func (h *Handler) GetSavedEstimate(c *gin.Context) {
	id, ok := estimateID(c)
	if !ok {
		return
	}
	e, err := h.store.GetEstimate(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteEstimate handles DELETE /api/estimates/:id.
func (h *Handler) DeleteEstimate(c *gin.Context) {
	id, ok := estimateID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteEstimate(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SummarizeEstimates handles GET /api/estimates/summary.
func (h *Handler) SummarizeEstimates(c *gin.Context) {
	rows, err := h.store.SummarizeByDevice(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if rows == nil {
		rows = []model.DeviceSummary{}
	}
	c.JSON(http.StatusOK, rows)
}
