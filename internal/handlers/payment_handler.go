package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/washerhq/carwash-api/internal/httperr"
	"github.com/washerhq/carwash-api/internal/httpresp"
	ucAppointment "github.com/washerhq/carwash-api/internal/usecase/appointment"
	ucPayment "github.com/washerhq/carwash-api/internal/usecase/payment"
)

type PaymentHandler struct {
	createUC *ucPayment.Create
	getUC    *ucPayment.Get
	listUC   *ucPayment.List
	updateUC *ucPayment.Update
	deleteUC *ucPayment.Delete

	// status changes through the payment resource address the linked
	// appointment
	appointmentStatusUC *ucAppointment.UpdateStatus
}

func NewPaymentHandler(
	createUC *ucPayment.Create,
	getUC *ucPayment.Get,
	listUC *ucPayment.List,
	updateUC *ucPayment.Update,
	deleteUC *ucPayment.Delete,
	appointmentStatusUC *ucAppointment.UpdateStatus,
) *PaymentHandler {
	return &PaymentHandler{
		createUC:            createUC,
		getUC:               getUC,
		listUC:              listUC,
		updateUC:            updateUC,
		deleteUC:            deleteUC,
		appointmentStatusUC: appointmentStatusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePaymentRequest struct {
	AppointmentID uint      `json:"appointment_id"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
}

type UpdatePaymentRequest struct {
	AppointmentID *uint      `json:"appointment_id"`
	Amount        *float64   `json:"amount"`
	Date          *time.Time `json:"date"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "malformed request body")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucPayment.CreateInput{
		Actor:         actor(c),
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Date:          req.Date,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	payment, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, payment)
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, payments)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "malformed request body")
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), id, ucPayment.UpdateInput{
		Actor:         actor(c),
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Date:          req.Date,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, updated)
}

// UpdateStatus handles PUT /payments/:id/status?status=... by updating the
// status of the payment's linked appointment.
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
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

	payment, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	updated, err := h.appointmentStatusUC.Execute(
		c.Request.Context(),
		actor(c),
		payment.AppointmentID,
		status,
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
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
