package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchemgmt/marche-api/internal/domain"
	"github.com/marchemgmt/marche-api/internal/payment"
	"github.com/marchemgmt/marche-api/internal/service"
)

type stubSubmissionService struct {
	app       domain.Application
	created   bool
	err       error
	gotFields domain.FieldMap
	gotFiles  []string
}

func (s *stubSubmissionService) Submit(_ context.Context, formID uint, fields domain.FieldMap, uploads []service.Upload) (domain.Application, bool, error) {
	s.gotFields = fields
	for _, upload := range uploads {
		_, _ = io.Copy(io.Discard, upload.Content)
		s.gotFiles = append(s.gotFiles, upload.FileName)
	}
	if s.err != nil {
		return domain.Application{}, false, s.err
	}

	app := s.app
	app.FormID = formID

	return app, s.created, nil
}

func (s *stubSubmissionService) CheckAcceptable(_ context.Context, _, _ uint, _ string, _ map[string]int) (domain.Acceptance, error) {
	return domain.Acceptance{OK: true}, nil
}

func (s *stubSubmissionService) GetApplication(_ context.Context, _ uint) (domain.Application, error) {
	return s.app, s.err
}

func (s *stubSubmissionService) ListApplications(_ context.Context, _ uint, _ *uint) ([]domain.Application, error) {
	return []domain.Application{s.app}, s.err
}

func (s *stubSubmissionService) DeleteApplication(_ context.Context, _ uint) error {
	return s.err
}

func (s *stubSubmissionService) Statistics(_ context.Context, _ uint, _ *uint) (domain.Statistics, error) {
	return domain.Statistics{}, s.err
}

type stubPricingService struct {
	result domain.PriceResult
}

func (s *stubPricingService) CalculatePrice(_ context.Context, _ uint, _ domain.FieldMap) domain.PriceResult {
	return s.result
}

type stubPaymentService struct {
	intent payment.Intent
	result domain.PriceResult
	err    error
}

func (s *stubPaymentService) CreateIntent(_ context.Context, _ uint, _ domain.FieldMap) (payment.Intent, domain.PriceResult, error) {
	return s.intent, s.result, s.err
}

func newTestRouter(svc SubmissionService, pricing PricingService, payments PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewApplicationHandler(svc, pricing, payments)

	router := gin.New()
	router.POST("/forms/:formID/applications", handler.HandleSubmitApplication)
	router.POST("/forms/:formID/quote", handler.HandleQuote)
	router.POST("/forms/:formID/payment-intents", handler.HandleCreatePaymentIntent)

	return router
}

func TestHandleSubmitApplication(t *testing.T) {
	body := `{"fields":{"date":["2026年12月12日 (土)"],"your-name":"山田太郎"}}`

	t.Run("created", func(t *testing.T) {
		svc := &stubSubmissionService{app: domain.Application{ID: 7}, created: true}
		router := newTestRouter(svc, &stubPricingService{}, &stubPaymentService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/forms/1/applications", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			Application domain.Application `json:"application"`
			Duplicate   bool               `json:"duplicate"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint(7), resp.Application.ID)
		assert.False(t, resp.Duplicate)
		assert.Equal(t, "山田太郎", svc.gotFields.First(domain.FieldCustomerName))
	})

	t.Run("duplicate returns 200", func(t *testing.T) {
		svc := &stubSubmissionService{app: domain.Application{ID: 7}, created: false}
		router := newTestRouter(svc, &stubPricingService{}, &stubPaymentService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/forms/1/applications", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"duplicate":true`)
	})

	t.Run("rejection renders 422", func(t *testing.T) {
		svc := &stubSubmissionService{err: &service.RejectionError{Reasons: []string{"定員に達しています"}}}
		router := newTestRouter(svc, &stubPricingService{}, &stubPaymentService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/forms/1/applications", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "定員に達しています")
	})

	t.Run("bad form id", func(t *testing.T) {
		router := newTestRouter(&stubSubmissionService{}, &stubPricingService{}, &stubPaymentService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/forms/abc/applications", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty fields", func(t *testing.T) {
		router := newTestRouter(&stubSubmissionService{}, &stubPricingService{}, &stubPaymentService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/forms/1/applications", strings.NewReader(`{"fields":{}}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("multipart with attachments", func(t *testing.T) {
		svc := &stubSubmissionService{app: domain.Application{ID: 8}, created: true}
		router := newTestRouter(svc, &stubPricingService{}, &stubPaymentService{})

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.WriteField("payload", body))

		part, err := writer.CreateFormFile("files", "menu.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("menu"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/forms/1/applications", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, []string{"menu.pdf"}, svc.gotFiles)
	})
}

func TestHandleQuote(t *testing.T) {
	pricing := &stubPricingService{result: domain.PriceResult{TotalPrice: 3500, Success: true, Currency: "JPY"}}
	router := newTestRouter(&stubSubmissionService{}, pricing, &stubPaymentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/forms/1/quote", strings.NewReader(`{"fields":{"booth-location":["Aエリア"]}}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result domain.PriceResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 3500, result.TotalPrice)
	assert.True(t, result.Success)
}

func TestHandleCreatePaymentIntent(t *testing.T) {
	body := `{"fields":{"your-name":"山田太郎"}}`

	t.Run("created", func(t *testing.T) {
		payments := &stubPaymentService{
			intent: payment.Intent{ID: "pi_test", ClientSecret: "secret", Amount: 3500, Currency: "jpy"},
			result: domain.PriceResult{TotalPrice: 3500, Success: true},
		}
		router := newTestRouter(&stubSubmissionService{}, &stubPricingService{}, payments)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/forms/1/payment-intents", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "pi_test")
	})

	t.Run("card payments disabled", func(t *testing.T) {
		payments := &stubPaymentService{err: service.ErrPaymentNotSupported}
		router := newTestRouter(&stubSubmissionService{}, &stubPricingService{}, payments)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/forms/1/payment-intents", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
