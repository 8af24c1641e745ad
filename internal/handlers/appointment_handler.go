package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/washerhq/carwash-api/internal/httperr"
	"github.com/washerhq/carwash-api/internal/httpresp"
	ucAppointment "github.com/washerhq/carwash-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC       *ucAppointment.Create
	getUC          *ucAppointment.Get
	listUC         *ucAppointment.List
	updateUC       *ucAppointment.Update
	updateStatusUC *ucAppointment.UpdateStatus
	deleteUC       *ucAppointment.Delete
}

func NewAppointmentHandler(
	createUC *ucAppointment.Create,
	getUC *ucAppointment.Get,
	listUC *ucAppointment.List,
	updateUC *ucAppointment.Update,
	updateStatusUC *ucAppointment.UpdateStatus,
	deleteUC *ucAppointment.Delete,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateUC:       updateUC,
		updateStatusUC: updateStatusUC,
		deleteUC:       deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	VehicleID   uint      `json:"vehicle_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	ServiceType string    `json:"service_type"`
}

type UpdateAppointmentRequest struct {
	VehicleID   *uint      `json:"vehicle_id"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      *string    `json:"status"`
	ServiceType *string    `json:"service_type"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "malformed request body")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateInput{
		Actor:       actor(c),
		VehicleID:   req.VehicleID,
		ScheduledAt: req.ScheduledAt,
		Status:      req.Status,
		ServiceType: req.ServiceType,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	appointment, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, appointment)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "malformed request body")
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), id, ucAppointment.UpdateInput{
		Actor:       actor(c),
		VehicleID:   req.VehicleID,
		ScheduledAt: req.ScheduledAt,
		Status:      req.Status,
		ServiceType: req.ServiceType,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, updated)
}

// UpdateStatus handles PUT /appointments/:id/status?status=...
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	status := c.Query("status")
	if status == "" {
		httperr.BadRequest(c, "missing_status", "status query parameter is required")
		return
	}

	updated, err := h.updateStatusUC.Execute(c.Request.Context(), actor(c), id, status)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), actor(c), id); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}
