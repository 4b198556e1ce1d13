package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appointmentRepo "medicare/database/repository/appointment"
	bannerRepo "medicare/database/repository/banner"
	paymentRepo "medicare/database/repository/payment"
	"medicare/handlers"
	"medicare/models"
	"medicare/services/admin"
	"medicare/services/banner"
	"medicare/services/booking"
	"medicare/services/catalog"
	"medicare/services/payment"
	"medicare/services/storage"
	"medicare/services/user"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type roleMap map[string]string

func (r roleMap) Role(_ context.Context, email string) (string, error) { return r[email], nil }

// deliveredAppointments serves only ListDelivered; other methods are unused.
type deliveredAppointments struct {
	appointmentRepo.AppointmentRepository
	byEmail map[string][]models.Appointment
}

func (d deliveredAppointments) ListDelivered(_ context.Context, email string) ([]models.Appointment, error) {
	return d.byEmail[email], nil
}

type paymentsByEmail struct {
	paymentRepo.PaymentRepository
	byEmail map[string][]models.Payment
}

func (p paymentsByEmail) ListByEmail(_ context.Context, email string) ([]models.Payment, error) {
	return p.byEmail[email], nil
}

type noBanners struct{ bannerRepo.BannerRepository }

func (noBanners) Activate(context.Context, primitive.ObjectID) (int64, error) { return 0, nil }

type harness struct {
	router *gin.Engine
	tokens *utils.TokenManager
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := utils.NewTokenManager("test-secret", time.Hour)
	appts := deliveredAppointments{byEmail: map[string][]models.Appointment{
		"a@x.com": {{Email: "a@x.com", Title: "CBC", ReportStatus: models.ReportStatusDelivered}},
	}}
	payments := paymentsByEmail{byEmail: map[string][]models.Payment{
		"a@x.com": {{Email: "a@x.com", Price: 25, TransactionID: "pi_1"}},
	}}
	store, err := storage.NewStorageService("")
	require.NoError(t, err)

	bookingSvc := booking.NewBookingService(nil, appts, nil, nil)
	hb := &handlers.HandlerBundle{
		Tokens:      tokens,
		Roles:       roleMap{"admin@x.com": models.RoleAdmin, "a@x.com": models.RoleMember, "b@x.com": models.RoleMember},
		Auth:        handlers.NewAuthHandler(tokens),
		User:        handlers.NewUserHandler(user.NewUserService(nil, nil)),
		Location:    handlers.NewLocationHandler(nil),
		Catalog:     handlers.NewCatalogHandler(catalog.NewCatalogService(nil), bookingSvc),
		Appointment: handlers.NewAppointmentHandler(bookingSvc),
		Banner:      handlers.NewBannerHandler(banner.NewBannerService(noBanners{}, nil)),
		Payment:     handlers.NewPaymentHandler(payment.NewPaymentService(payments, nil, "usd")),
		Admin:       handlers.NewAdminHandler(admin.NewAdminService(nil, nil, nil, nil)),
		Storage:     handlers.NewStorageHandler(store),
	}
	return &harness{router: NewRouter(hb), tokens: tokens}
}

func (h *harness) do(t *testing.T, method, path, email, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		token, err := h.tokens.Issue(email)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestRootAndUnknownRoute(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MediCare is sitting", w.Body.String())

	w = h.do(t, http.MethodGet, "/no/such/place?x=1", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "The requested url is invalid: [/no/such/place?x=1]", message(t, w))
}

func TestIssueToken(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodPost, "/jwt", "", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct{ Token string }
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	claims, err := h.tokens.Verify(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	assert.Equal(t, http.StatusBadRequest, h.do(t, http.MethodPost, "/jwt", "", `{}`).Code)
}

func TestCrossUserReadsAreForbidden(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/testResults/a@x.com", "/payments/a@x.com", "/appointmentSummary/a@x.com"} {
		w := h.do(t, http.MethodGet, path, "b@x.com", "")
		assert.Equal(t, http.StatusForbidden, w.Code, path)
		assert.Equal(t, "forbidden access", message(t, w), path)
		assert.NotContains(t, w.Body.String(), "CBC")
		assert.NotContains(t, w.Body.String(), "pi_1")
	}

	w := h.do(t, http.MethodGet, "/testResults/a@x.com", "a@x.com", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CBC")

	w = h.do(t, http.MethodGet, "/payments/a@x.com", "a@x.com", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pi_1")
}

func TestAuthSplit(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, http.StatusUnauthorized, h.do(t, http.MethodGet, "/testResults/a@x.com", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, h.do(t, http.MethodGet, "/appointments", "", "").Code)
	assert.Equal(t, http.StatusForbidden, h.do(t, http.MethodGet, "/appointments", "a@x.com", "").Code)
	assert.Equal(t, http.StatusForbidden, h.do(t, http.MethodPatch, "/setActiveBanner/"+primitive.NewObjectID().Hex(), "a@x.com", "").Code)
}

func TestRequestValidation(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodPost, "/upcomingAppointments?id=nope", "a@x.com",
		`{"email":"a@x.com","appointmentDate":"3/1/2025"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid id", message(t, w))

	w = h.do(t, http.MethodPatch, "/updateSlot/"+primitive.NewObjectID().Hex()+"/decrementSlot", "a@x.com", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "date is required", message(t, w))

	w = h.do(t, http.MethodPost, "/create-payment-intent", "a@x.com", `{"price":-3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetActiveBannerNotFound(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodPatch, "/setActiveBanner/"+primitive.NewObjectID().Hex(), "admin@x.com", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "banner not found", message(t, w))

	w = h.do(t, http.MethodPatch, "/setActiveBanner/xyz", "admin@x.com", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadWithoutStorage(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodPost, "/upload/tests", "admin@x.com", "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing multipart file")
}
