package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marchemgmt/marche-api/internal/api/handler/v1/request"
	"github.com/marchemgmt/marche-api/internal/api/handler/v1/response"
	"github.com/marchemgmt/marche-api/internal/domain"
	"github.com/marchemgmt/marche-api/internal/service"
)

type CatalogService interface {
	CreateForm(ctx context.Context, form domain.Form) (domain.Form, error)
	GetForm(ctx context.Context, id uint) (domain.Form, error)
	GetFormByExternalID(ctx context.Context, externalID uint) (domain.Form, error)
	ListForms(ctx context.Context) ([]domain.Form, error)
	UpdateForm(ctx context.Context, form domain.Form) (domain.Form, error)
	DeleteForm(ctx context.Context, id uint) error

	CreateDate(ctx context.Context, date domain.EventDate) (domain.EventDate, error)
	ListDates(ctx context.Context, formID uint, activeOnly bool) ([]domain.EventDate, error)
	UpdateDate(ctx context.Context, date domain.EventDate) (domain.EventDate, error)
	DeleteDate(ctx context.Context, formID, id uint) error
	ReorderDates(ctx context.Context, formID uint, orderedIDs []uint) error
	DateOptions(ctx context.Context, formID uint) ([]domain.DateOption, error)

	CreateArea(ctx context.Context, area domain.Area) (domain.Area, error)
	ListAreas(ctx context.Context, formID uint, dateID *uint, activeOnly bool) ([]domain.Area, error)
	UpdateArea(ctx context.Context, area domain.Area) (domain.Area, error)
	DeleteArea(ctx context.Context, formID, id uint) error
	ReorderAreas(ctx context.Context, formID uint, orderedIDs []uint) error
	AreaOptions(ctx context.Context, formID, dateID uint) ([]domain.AreaOption, error)

	CreateRentalItem(ctx context.Context, item domain.RentalItem) (domain.RentalItem, error)
	ListRentalItems(ctx context.Context, formID uint, activeOnly bool) ([]domain.RentalItem, error)
	UpdateRentalItem(ctx context.Context, item domain.RentalItem) (domain.RentalItem, error)
	DeleteRentalItem(ctx context.Context, formID, id uint) error
	ReorderRentalItems(ctx context.Context, formID uint, orderedIDs []uint) error
}

type AvailabilityService interface {
	AreaAvailability(ctx context.Context, formID, dateID, areaID uint) (domain.CapacityStatus, error)
}

type CatalogHandler struct {
	svc     CatalogService
	pricing AvailabilityService
}

func NewCatalogHandler(svc CatalogService, pricing AvailabilityService) *CatalogHandler {
	return &CatalogHandler{
		svc:     svc,
		pricing: pricing,
	}
}

// HandleCreateForm godoc
// @Summary      Create a form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateFormRequest true "request body"
// @Success      201      {object}  domain.Form
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleCreateForm(ctx *gin.Context) {
	var req request.CreateFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	form, err := h.svc.CreateForm(ctx.Request.Context(), domain.Form{
		ExternalFormID: req.ExternalFormID,
		Name:           req.Name,
		Type:           domain.FormType(req.Type),
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		if errors.Is(err, service.ErrFormExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrFormExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateForm -> h.svc.CreateForm -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusCreated, form)
}

// HandleListForms godoc
// @Summary      List all forms
// @Tags         forms
// @Produce      json
// @Success      200  {array}   domain.Form
// @Failure      500  {object}  response.Err
// @Router       /forms [get]
// @Security     BearerAuth
func (h *CatalogHandler) HandleListForms(ctx *gin.Context) {
	forms, err := h.svc.ListForms(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListForms -> h.svc.ListForms -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, forms)
}

// HandleGetForm godoc
// @Summary      Get a form
// @Tags         forms
// @Produce      json
// @Param        formID  path      int  true  "form ID"
// @Success      200     {object}  domain.Form
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /forms/{formID} [get]
func (h *CatalogHandler) HandleGetForm(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	form, err := h.svc.GetForm(ctx.Request.Context(), formID)
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("form", "ID", formID))

			return
		}

		err = fmt.Errorf("v1.HandleGetForm -> h.svc.GetForm -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, form)
}

// HandleGetFormByExternalID godoc
// @Summary      Get a form by its external form system ID
// @Tags         forms
// @Produce      json
// @Param        externalFormID  path      int  true  "external form ID"
// @Success      200             {object}  domain.Form
// @Failure      400             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /external-forms/{externalFormID} [get]
func (h *CatalogHandler) HandleGetFormByExternalID(ctx *gin.Context) {
	externalID, ok := parseUintParam(ctx, "externalFormID")
	if !ok {
		return
	}

	form, err := h.svc.GetFormByExternalID(ctx.Request.Context(), externalID)
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("form", "external ID", externalID))

			return
		}

		err = fmt.Errorf("v1.HandleGetFormByExternalID -> h.svc.GetFormByExternalID -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, form)
}

// HandleUpdateForm godoc
// @Summary      Update a form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        formID   path      int  true  "form ID"
// @Param        request  body      request.UpdateFormRequest true "request body"
// @Success      200      {object}  domain.Form
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID} [put]
// @Security     BearerAuth
func (h *CatalogHandler) HandleUpdateForm(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	var req request.UpdateFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	form, err := h.svc.UpdateForm(ctx.Request.Context(), domain.Form{
		ID:            formID,
		Name:          req.Name,
		Type:          domain.FormType(req.Type),
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("form", "ID", formID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateForm -> h.svc.UpdateForm -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, form)
}

// HandleDeleteForm godoc
// @Summary      Delete a form and its catalog entries
// @Description  Applications already received are kept for reporting.
// @Tags         forms
// @Produce      json
// @Param        formID  path  int  true  "form ID"
// @Success      204
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /forms/{formID} [delete]
// @Security     BearerAuth
func (h *CatalogHandler) HandleDeleteForm(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	if err := h.svc.DeleteForm(ctx.Request.Context(), formID); err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("form", "ID", formID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteForm -> h.svc.DeleteForm -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateDate godoc
// @Summary      Add an event date to a form
// @Tags         dates
// @Accept       json
// @Produce      json
// @Param        formID   path      int  true  "form ID"
// @Param        request  body      request.CreateDateRequest true "request body"
// @Success      201      {object}  domain.EventDate
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/dates [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleCreateDate(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	var req request.CreateDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	date, err := h.svc.CreateDate(ctx.Request.Context(), domain.EventDate{
		FormID:      formID,
		DateValue:   req.ParsedDate(),
		Description: req.Description,
		IsActive:    req.Active(),
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFormNotFound):
			response.RenderErr(ctx, response.ErrNotFound("form", "ID", formID))
		case errors.Is(err, service.ErrDateExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrDateExists))
		default:
			err = fmt.Errorf("v1.HandleCreateDate -> h.svc.CreateDate -> %w", err)
			response.RenderInternalErr(ctx, err)
		}

		return
	}

	ctx.JSON(http.StatusCreated, date)
}

// HandleListDates godoc
// @Summary      List a form's event dates
// @Tags         dates
// @Produce      json
// @Param        formID  path      int   true   "form ID"
// @Param        active  query     bool  false  "only active dates"
// @Success      200     {array}   domain.EventDate
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /forms/{formID}/dates [get]
// @Security     BearerAuth
func (h *CatalogHandler) HandleListDates(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	dates, err := h.svc.ListDates(ctx.Request.Context(), formID, ctx.Query("active") == "true")
	if err != nil {
		err = fmt.Errorf("v1.HandleListDates -> h.svc.ListDates -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, dates)
}

// HandleUpdateDate godoc
// @Summary      Update an event date
// @Tags         dates
// @Accept       json
// @Produce      json
// @Param        formID   path      int  true  "form ID"
// @Param        dateID   path      int  true  "date ID"
// @Param        request  body      request.CreateDateRequest true "request body"
// @Success      200      {object}  domain.EventDate
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/dates/{dateID} [put]
// @Security     BearerAuth
func (h *CatalogHandler) HandleUpdateDate(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}
	dateID, ok := parseUintParam(ctx, "dateID")
	if !ok {
		return
	}

	var req request.CreateDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	date, err := h.svc.UpdateDate(ctx.Request.Context(), domain.EventDate{
		ID:          dateID,
		FormID:      formID,
		DateValue:   req.ParsedDate(),
		Description: req.Description,
		IsActive:    req.Active(),
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDateNotFound):
			response.RenderErr(ctx, response.ErrNotFound("date", "ID", dateID))
		case errors.Is(err, service.ErrDateExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrDateExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateDate -> h.svc.UpdateDate -> %w", err)
			response.RenderInternalErr(ctx, err)
		}

		return
	}

	ctx.JSON(http.StatusOK, date)
}

// HandleDeleteDate godoc
// @Summary      Delete an event date
// @Tags         dates
// @Produce      json
// @Param        formID  path  int  true  "form ID"
// @Param        dateID  path  int  true  "date ID"
// @Success      204
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /forms/{formID}/dates/{dateID} [delete]
// @Security     BearerAuth
func (h *CatalogHandler) HandleDeleteDate(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}
	dateID, ok := parseUintParam(ctx, "dateID")
	if !ok {
		return
	}

	if err := h.svc.DeleteDate(ctx.Request.Context(), formID, dateID); err != nil {
		if errors.Is(err, service.ErrDateNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("date", "ID", dateID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteDate -> h.svc.DeleteDate -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleReorderDates godoc
// @Summary      Reorder a form's event dates
// @Tags         dates
// @Accept       json
// @Produce      json
// @Param        formID   path  int  true  "form ID"
// @Param        request  body  request.ReorderRequest true "request body"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/dates/reorder [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleReorderDates(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	var req request.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.ReorderDates(ctx.Request.Context(), formID, req.OrderedIDs); err != nil {
		err = fmt.Errorf("v1.HandleReorderDates -> h.svc.ReorderDates -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetDateOptions godoc
// @Summary      List the selectable dates for the public form
// @Description  Active dates that have not passed, in display order.
// @Tags         dates
// @Produce      json
// @Param        formID  path      int  true  "form ID"
// @Success      200     {array}   domain.DateOption
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /forms/{formID}/date-options [get]
func (h *CatalogHandler) HandleGetDateOptions(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	options, err := h.svc.DateOptions(ctx.Request.Context(), formID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDateOptions -> h.svc.DateOptions -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, options)
}

// HandleCreateArea godoc
// @Summary      Add a booth area to a form
// @Tags         areas
// @Accept       json
// @Produce      json
// @Param        formID   path      int  true  "form ID"
// @Param        request  body      request.CreateAreaRequest true "request body"
// @Success      201      {object}  domain.Area
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/areas [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleCreateArea(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	var req request.CreateAreaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	area, err := h.svc.CreateArea(ctx.Request.Context(), domain.Area{
		FormID:               formID,
		DateID:               req.DateID,
		Name:                 req.Name,
		Price:                req.Price,
		Capacity:             req.Capacity,
		CapacityLimitEnabled: req.CapacityLimitEnabled,
		IsActive:             req.Active(),
		SortOrder:            req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDateNotFound):
			response.RenderErr(ctx, response.ErrNotFound("date", "ID", req.DateID))
		case errors.Is(err, service.ErrAreaExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrAreaExists))
		default:
			err = fmt.Errorf("v1.HandleCreateArea -> h.svc.CreateArea -> %w", err)
			response.RenderInternalErr(ctx, err)
		}

		return
	}

	ctx.JSON(http.StatusCreated, area)
}

// HandleListAreas godoc
// @Summary      List a form's booth areas
// @Tags         areas
// @Produce      json
// @Param        formID   path      int   true   "form ID"
// @Param        date_id  query     int   false  "filter by date ID"
// @Param        active   query     bool  false  "only active areas"
// @Success      200      {array}   domain.Area
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/areas [get]
// @Security     BearerAuth
func (h *CatalogHandler) HandleListAreas(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	dateID, ok := parseOptionalUintQuery(ctx, "date_id")
	if !ok {
		return
	}

	areas, err := h.svc.ListAreas(ctx.Request.Context(), formID, dateID, ctx.Query("active") == "true")
	if err != nil {
		err = fmt.Errorf("v1.HandleListAreas -> h.svc.ListAreas -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, areas)
}

// HandleUpdateArea godoc
// @Summary      Update a booth area
// @Tags         areas
// @Accept       json
// @Produce      json
// @Param        formID   path      int  true  "form ID"
// @Param        areaID   path      int  true  "area ID"
// @Param        request  body      request.CreateAreaRequest true "request body"
// @Success      200      {object}  domain.Area
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/areas/{areaID} [put]
// @Security     BearerAuth
func (h *CatalogHandler) HandleUpdateArea(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}
	areaID, ok := parseUintParam(ctx, "areaID")
	if !ok {
		return
	}

	var req request.CreateAreaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	area, err := h.svc.UpdateArea(ctx.Request.Context(), domain.Area{
		ID:                   areaID,
		FormID:               formID,
		DateID:               req.DateID,
		Name:                 req.Name,
		Price:                req.Price,
		Capacity:             req.Capacity,
		CapacityLimitEnabled: req.CapacityLimitEnabled,
		IsActive:             req.Active(),
		SortOrder:            req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAreaNotFound):
			response.RenderErr(ctx, response.ErrNotFound("area", "ID", areaID))
		case errors.Is(err, service.ErrAreaExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrAreaExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateArea -> h.svc.UpdateArea -> %w", err)
			response.RenderInternalErr(ctx, err)
		}

		return
	}

	ctx.JSON(http.StatusOK, area)
}

// HandleDeleteArea godoc
// @Summary      Delete a booth area
// @Tags         areas
// @Produce      json
// @Param        formID  path  int  true  "form ID"
// @Param        areaID  path  int  true  "area ID"
// @Success      204
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /forms/{formID}/areas/{areaID} [delete]
// @Security     BearerAuth
func (h *CatalogHandler) HandleDeleteArea(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}
	areaID, ok := parseUintParam(ctx, "areaID")
	if !ok {
		return
	}

	if err := h.svc.DeleteArea(ctx.Request.Context(), formID, areaID); err != nil {
		if errors.Is(err, service.ErrAreaNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("area", "ID", areaID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteArea -> h.svc.DeleteArea -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleReorderAreas godoc
// @Summary      Reorder a form's booth areas
// @Tags         areas
// @Accept       json
// @Produce      json
// @Param        formID   path  int  true  "form ID"
// @Param        request  body  request.ReorderRequest true "request body"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/areas/reorder [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleReorderAreas(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	var req request.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.ReorderAreas(ctx.Request.Context(), formID, req.OrderedIDs); err != nil {
		err = fmt.Errorf("v1.HandleReorderAreas -> h.svc.ReorderAreas -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetAreaOptions godoc
// @Summary      List the selectable areas for one event date
// @Description  Active areas with remaining capacity; full areas are omitted.
// @Tags         areas
// @Produce      json
// @Param        formID   path      int  true  "form ID"
// @Param        date_id  query     int  true  "date ID"
// @Success      200      {array}   domain.AreaOption
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/area-options [get]
func (h *CatalogHandler) HandleGetAreaOptions(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}
	dateID, ok := parseRequiredUintQuery(ctx, "date_id")
	if !ok {
		return
	}

	options, err := h.svc.AreaOptions(ctx.Request.Context(), formID, dateID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetAreaOptions -> h.svc.AreaOptions -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, options)
}

// HandleGetAreaAvailability godoc
// @Summary      Get a point-in-time capacity snapshot for an area
// @Tags         areas
// @Produce      json
// @Param        formID   path      int  true  "form ID"
// @Param        date_id  query     int  true  "date ID"
// @Param        area_id  query     int  true  "area ID"
// @Success      200      {object}  domain.CapacityStatus
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/availability [get]
func (h *CatalogHandler) HandleGetAreaAvailability(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}
	dateID, ok := parseRequiredUintQuery(ctx, "date_id")
	if !ok {
		return
	}
	areaID, ok := parseRequiredUintQuery(ctx, "area_id")
	if !ok {
		return
	}

	status, err := h.pricing.AreaAvailability(ctx.Request.Context(), formID, dateID, areaID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetAreaAvailability -> h.pricing.AreaAvailability -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, status)
}

// HandleCreateRentalItem godoc
// @Summary      Add a rental item to a form
// @Tags         rental-items
// @Accept       json
// @Produce      json
// @Param        formID   path      int  true  "form ID"
// @Param        request  body      request.CreateRentalItemRequest true "request body"
// @Success      201      {object}  domain.RentalItem
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/rental-items [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleCreateRentalItem(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	var req request.CreateRentalItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	item, err := h.svc.CreateRentalItem(ctx.Request.Context(), domain.RentalItem{
		FormID:      formID,
		ItemName:    req.ItemName,
		FieldKey:    req.FieldKey,
		Price:       req.Price,
		Unit:        req.Unit,
		Description: req.Description,
		MinQuantity: req.MinQuantity,
		MaxQuantity: req.Max(),
		IsActive:    req.Active(),
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFormNotFound):
			response.RenderErr(ctx, response.ErrNotFound("form", "ID", formID))
		case errors.Is(err, service.ErrRentalExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrRentalExists))
		default:
			err = fmt.Errorf("v1.HandleCreateRentalItem -> h.svc.CreateRentalItem -> %w", err)
			response.RenderInternalErr(ctx, err)
		}

		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// HandleListRentalItems godoc
// @Summary      List a form's rental items
// @Tags         rental-items
// @Produce      json
// @Param        formID  path      int   true   "form ID"
// @Param        active  query     bool  false  "only active items"
// @Success      200     {array}   domain.RentalItem
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /forms/{formID}/rental-items [get]
func (h *CatalogHandler) HandleListRentalItems(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	items, err := h.svc.ListRentalItems(ctx.Request.Context(), formID, ctx.Query("active") == "true")
	if err != nil {
		err = fmt.Errorf("v1.HandleListRentalItems -> h.svc.ListRentalItems -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleUpdateRentalItem godoc
// @Summary      Update a rental item
// @Tags         rental-items
// @Accept       json
// @Produce      json
// @Param        formID    path      int  true  "form ID"
// @Param        rentalID  path      int  true  "rental item ID"
// @Param        request   body      request.CreateRentalItemRequest true "request body"
// @Success      200       {object}  domain.RentalItem
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /forms/{formID}/rental-items/{rentalID} [put]
// @Security     BearerAuth
func (h *CatalogHandler) HandleUpdateRentalItem(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}
	rentalID, ok := parseUintParam(ctx, "rentalID")
	if !ok {
		return
	}

	var req request.CreateRentalItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	item, err := h.svc.UpdateRentalItem(ctx.Request.Context(), domain.RentalItem{
		ID:          rentalID,
		FormID:      formID,
		ItemName:    req.ItemName,
		FieldKey:    req.FieldKey,
		Price:       req.Price,
		Unit:        req.Unit,
		Description: req.Description,
		MinQuantity: req.MinQuantity,
		MaxQuantity: req.Max(),
		IsActive:    req.Active(),
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRentalNotFound):
			response.RenderErr(ctx, response.ErrNotFound("rental item", "ID", rentalID))
		case errors.Is(err, service.ErrRentalExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrRentalExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateRentalItem -> h.svc.UpdateRentalItem -> %w", err)
			response.RenderInternalErr(ctx, err)
		}

		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleDeleteRentalItem godoc
// @Summary      Delete a rental item
// @Tags         rental-items
// @Produce      json
// @Param        formID    path  int  true  "form ID"
// @Param        rentalID  path  int  true  "rental item ID"
// @Success      204
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /forms/{formID}/rental-items/{rentalID} [delete]
// @Security     BearerAuth
func (h *CatalogHandler) HandleDeleteRentalItem(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}
	rentalID, ok := parseUintParam(ctx, "rentalID")
	if !ok {
		return
	}

	if err := h.svc.DeleteRentalItem(ctx.Request.Context(), formID, rentalID); err != nil {
		if errors.Is(err, service.ErrRentalNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("rental item", "ID", rentalID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteRentalItem -> h.svc.DeleteRentalItem -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleReorderRentalItems godoc
// @Summary      Reorder a form's rental items
// @Tags         rental-items
// @Accept       json
// @Produce      json
// @Param        formID   path  int  true  "form ID"
// @Param        request  body  request.ReorderRequest true "request body"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/rental-items/reorder [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleReorderRentalItems(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	var req request.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.ReorderRentalItems(ctx.Request.Context(), formID, req.OrderedIDs); err != nil {
		err = fmt.Errorf("v1.HandleReorderRentalItems -> h.svc.ReorderRentalItems -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}
