package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/washerhq/carwash-api/internal/httperr"
	"github.com/washerhq/carwash-api/internal/httpresp"
	ucCustomer "github.com/washerhq/carwash-api/internal/usecase/customer"
)

type CustomerHandler struct {
	createUC *ucCustomer.Create
	getUC    *ucCustomer.Get
	listUC   *ucCustomer.List
	updateUC *ucCustomer.Update
	deleteUC *ucCustomer.Delete
}

func NewCustomerHandler(
	createUC *ucCustomer.Create,
	getUC *ucCustomer.Get,
	listUC *ucCustomer.List,
	updateUC *ucCustomer.Update,
	deleteUC *ucCustomer.Delete,
) *CustomerHandler {
	return &CustomerHandler{
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

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "malformed request body")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucCustomer.CreateInput{
		Actor: actor(c),
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	customer, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, customers)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "malformed request body")
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), id, ucCustomer.UpdateInput{
		Actor: actor(c),
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
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
