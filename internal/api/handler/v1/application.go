package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marchemgmt/marche-api/internal/api/handler/v1/request"
	"github.com/marchemgmt/marche-api/internal/api/handler/v1/response"
	"github.com/marchemgmt/marche-api/internal/domain"
	"github.com/marchemgmt/marche-api/internal/payment"
	"github.com/marchemgmt/marche-api/internal/service"
)

type SubmissionService interface {
	Submit(ctx context.Context, formID uint, fields domain.FieldMap, uploads []service.Upload) (domain.Application, bool, error)
	CheckAcceptable(ctx context.Context, formID, dateID uint, areaName string, rentalQuantities map[string]int) (domain.Acceptance, error)
	GetApplication(ctx context.Context, id uint) (domain.Application, error)
	ListApplications(ctx context.Context, formID uint, dateID *uint) ([]domain.Application, error)
	DeleteApplication(ctx context.Context, id uint) error
	Statistics(ctx context.Context, formID uint, dateID *uint) (domain.Statistics, error)
}

type PricingService interface {
	CalculatePrice(ctx context.Context, formID uint, fields domain.FieldMap) domain.PriceResult
}

type PaymentService interface {
	CreateIntent(ctx context.Context, formID uint, fields domain.FieldMap) (payment.Intent, domain.PriceResult, error)
}

type ApplicationHandler struct {
	svc      SubmissionService
	pricing  PricingService
	payments PaymentService
}

func NewApplicationHandler(svc SubmissionService, pricing PricingService, payments PaymentService) *ApplicationHandler {
	return &ApplicationHandler{
		svc:      svc,
		pricing:  pricing,
		payments: payments,
	}
}

// bindSubmission accepts either a JSON body or a multipart form whose
// "payload" part carries the JSON and whose "files" parts carry attachments.
func bindSubmission(ctx *gin.Context) (domain.FieldMap, []service.Upload, *response.Err) {
	contentType := ctx.ContentType()

	if strings.HasPrefix(contentType, "multipart/") {
		form, err := ctx.MultipartForm()
		if err != nil {
			return nil, nil, response.ErrBadRequest(err)
		}

		payloads := form.Value["payload"]
		if len(payloads) == 0 {
			return nil, nil, response.ErrBadRequest(errors.New("missing payload part"))
		}

		var req request.SubmitApplicationRequest
		if err := json.Unmarshal([]byte(payloads[0]), &req); err != nil {
			return nil, nil, response.ErrBadRequest(err)
		}
		if err := req.Validate(); err != nil {
			return nil, nil, response.ErrBadRequest(err)
		}

		var uploads []service.Upload
		for _, header := range form.File["files"] {
			file, err := header.Open()
			if err != nil {
				return nil, nil, response.ErrBadRequest(err)
			}

			uploads = append(uploads, service.Upload{
				FileName: header.Filename,
				Content:  file,
			})
		}

		return req.Fields, uploads, nil
	}

	var req request.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, nil, response.ErrBadRequest(err)
	}
	if err := req.Validate(); err != nil {
		return nil, nil, response.ErrBadRequest(err)
	}

	return req.Fields, nil, nil
}

// HandleSubmitApplication godoc
// @Summary      Submit a vendor application
// @Description  Validates capacity and rental quantity bounds, prices the
// @Description  payload, and stores at most one record per effective payload
// @Description  within the dedupe window.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        formID   path      int  true  "form ID"
// @Param        request  body      request.SubmitApplicationRequest true "request body"
// @Success      201      {object}  response.SubmissionResponse
// @Success      200      {object}  response.SubmissionResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.RejectionResponse
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/applications [post]
func (h *ApplicationHandler) HandleSubmitApplication(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	fields, uploads, respErr := bindSubmission(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	app, created, err := h.svc.Submit(ctx.Request.Context(), formID, fields, uploads)
	if err != nil {
		var rejection *service.RejectionError
		if errors.As(err, &rejection) {
			ctx.JSON(http.StatusUnprocessableEntity, response.RejectionResponse{
				Accepted: false,
				Reasons:  rejection.Reasons,
			})

			return
		}

		if errors.Is(err, service.ErrFormNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("form", "ID", formID))

			return
		}

		err = fmt.Errorf("v1.HandleSubmitApplication -> h.svc.Submit -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}

	ctx.JSON(status, response.SubmissionResponse{
		Application: app,
		Duplicate:   !created,
	})
}

// HandleCheckAcceptance godoc
// @Summary      Check whether a submission would be admitted right now
// @Description  Side-effect free; usable for live form validation.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        formID   path      int  true  "form ID"
// @Param        request  body      request.CheckAcceptanceRequest true "request body"
// @Success      200      {object}  response.AcceptanceResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/acceptance [post]
func (h *ApplicationHandler) HandleCheckAcceptance(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	var req request.CheckAcceptanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	acceptance, err := h.svc.CheckAcceptable(ctx.Request.Context(), formID, req.DateID, req.AreaName, req.RentalQuantities)
	if err != nil {
		err = fmt.Errorf("v1.HandleCheckAcceptance -> h.svc.CheckAcceptable -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, response.AcceptanceResponse{
		Acceptable: acceptance.OK,
		Reasons:    acceptance.Reasons,
	})
}

// HandleQuote godoc
// @Summary      Price a payload without storing anything
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        formID   path      int  true  "form ID"
// @Param        request  body      request.QuoteRequest true "request body"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/quote [post]
func (h *ApplicationHandler) HandleQuote(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	var req request.QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result := h.pricing.CalculatePrice(ctx.Request.Context(), formID, req.Fields)

	ctx.JSON(http.StatusOK, response.QuoteResponse{PriceResult: result})
}

// HandleCreatePaymentIntent godoc
// @Summary      Open a payment intent for the payload's computed total
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        formID   path      int  true  "form ID"
// @Param        request  body      request.CreatePaymentIntentRequest true "request body"
// @Success      201      {object}  response.PaymentIntentResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.RejectionResponse
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/payment-intents [post]
func (h *ApplicationHandler) HandleCreatePaymentIntent(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	var req request.CreatePaymentIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	intent, price, err := h.payments.CreateIntent(ctx.Request.Context(), formID, req.Fields)
	if err != nil {
		var rejection *service.RejectionError
		switch {
		case errors.As(err, &rejection):
			ctx.JSON(http.StatusUnprocessableEntity, response.RejectionResponse{
				Accepted: false,
				Reasons:  rejection.Reasons,
			})
		case errors.Is(err, service.ErrFormNotFound):
			response.RenderErr(ctx, response.ErrNotFound("form", "ID", formID))
		case errors.Is(err, service.ErrPaymentNotSupported):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrPaymentNotSupported))
		default:
			err = fmt.Errorf("v1.HandleCreatePaymentIntent -> h.payments.CreateIntent -> %w", err)
			response.RenderInternalErr(ctx, err)
		}

		return
	}

	ctx.JSON(http.StatusCreated, response.PaymentIntentResponse{
		Intent: intent,
		Price:  price,
	})
}

// HandleListApplications godoc
// @Summary      List a form's applications
// @Tags         applications
// @Produce      json
// @Param        formID   path      int  true   "form ID"
// @Param        date_id  query     int  false  "filter by date ID"
// @Success      200      {array}   domain.Application
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) HandleListApplications(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	dateID, ok := parseOptionalUintQuery(ctx, "date_id")
	if !ok {
		return
	}

	apps, err := h.svc.ListApplications(ctx.Request.Context(), formID, dateID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListApplications -> h.svc.ListApplications -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, apps)
}

// HandleGetApplication godoc
// @Summary      Get one application
// @Tags         applications
// @Produce      json
// @Param        applicationID  path      int  true  "application ID"
// @Success      200            {object}  domain.Application
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /applications/{applicationID} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) HandleGetApplication(ctx *gin.Context) {
	applicationID, ok := parseUintParam(ctx, "applicationID")
	if !ok {
		return
	}

	app, err := h.svc.GetApplication(ctx.Request.Context(), applicationID)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("application", "ID", applicationID))

			return
		}

		err = fmt.Errorf("v1.HandleGetApplication -> h.svc.GetApplication -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, app)
}

// HandleDeleteApplication godoc
// @Summary      Delete an application and its stored attachments
// @Tags         applications
// @Produce      json
// @Param        applicationID  path  int  true  "application ID"
// @Success      204
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /applications/{applicationID} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) HandleDeleteApplication(ctx *gin.Context) {
	applicationID, ok := parseUintParam(ctx, "applicationID")
	if !ok {
		return
	}

	if err := h.svc.DeleteApplication(ctx.Request.Context(), applicationID); err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("application", "ID", applicationID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteApplication -> h.svc.DeleteApplication -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetStatistics godoc
// @Summary      Aggregate statistics over a form's applications
// @Description  Area counts, flyer totals, vehicle roof-height split and
// @Description  rental totals, optionally narrowed to one event date.
// @Tags         applications
// @Produce      json
// @Param        formID   path      int  true   "form ID"
// @Param        date_id  query     int  false  "filter by date ID"
// @Success      200      {object}  domain.Statistics
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /forms/{formID}/statistics [get]
// @Security     BearerAuth
func (h *ApplicationHandler) HandleGetStatistics(ctx *gin.Context) {
	formID, ok := parseUintParam(ctx, "formID")
	if !ok {
		return
	}

	dateID, ok := parseOptionalUintQuery(ctx, "date_id")
	if !ok {
		return
	}

	stats, err := h.svc.Statistics(ctx.Request.Context(), formID, dateID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStatistics -> h.svc.Statistics -> %w", err)
		response.RenderInternalErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, stats)
}
