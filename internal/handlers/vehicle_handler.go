package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/washerhq/carwash-api/internal/httperr"
	"github.com/washerhq/carwash-api/internal/httpresp"
	ucVehicle "github.com/washerhq/carwash-api/internal/usecase/vehicle"
)

type VehicleHandler struct {
	createUC *ucVehicle.Create
	getUC    *ucVehicle.Get
	listUC   *ucVehicle.List
	updateUC *ucVehicle.Update
	deleteUC *ucVehicle.Delete
}

func NewVehicleHandler(
	createUC *ucVehicle.Create,
	getUC *ucVehicle.Get,
	listUC *ucVehicle.List,
	updateUC *ucVehicle.Update,
	deleteUC *ucVehicle.Delete,
) *VehicleHandler {
	return &VehicleHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateVehicleRequest struct {
	CustomerID   uint   `json:"customer_id"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	Type         string `json:"type"`
}

type UpdateVehicleRequest struct {
	CustomerID   *uint   `json:"customer_id"`
	Model        *string `json:"model"`
	LicensePlate *string `json:"license_plate"`
	Type         *string `json:"type"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *VehicleHandler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "malformed request body")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucVehicle.CreateInput{
		Actor:        actor(c),
		CustomerID:   req.CustomerID,
		Model:        req.Model,
		LicensePlate: req.LicensePlate,
		Type:         req.Type,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	vehicle, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, vehicle)
}

func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, vehicles)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "malformed request body")
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), id, ucVehicle.UpdateInput{
		Actor:        actor(c),
		CustomerID:   req.CustomerID,
		Model:        req.Model,
		LicensePlate: req.LicensePlate,
		Type:         req.Type,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
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
