package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"classbook/internal/api"
)

type MockBookingService struct{ mock.Mock }

func (m *MockBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Response), args.Error(1)
}

func (m *MockBookingService) ListByEmail(ctx context.Context, clientEmail string) (*ListResponse, error) {
	args := m.Called(ctx, clientEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ListResponse), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(svc)
	router.POST("/api/v1/book", handler.CreateBooking)
	router.GET("/api/v1/bookings", handler.ListBookings)
	return router
}

func postBook(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/api/v1/book", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateBookingHandler(t *testing.T) {
	t.Run("success returns 200 with booking", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("CreateBooking", mock.Anything, CreateBookingRequest{
			ClassID: 1, ClientName: "John Doe", ClientEmail: "john@example.com",
		}).Return(&Response{
			Booking: Booking{ID: 1, ClassID: 1, ClientName: "John Doe", ClientEmail: "john@example.com", Status: StatusConfirmed, Reference: "FBDEADBEEF"},
		}, nil)

		w := postBook(t, setupRouter(svc), `{"class_id":1,"client_name":"John Doe","client_email":"john@example.com"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "FBDEADBEEF", resp.Reference)
		assert.Equal(t, StatusConfirmed, resp.Status)
	})

	t.Run("invalid email rejected with 422 before domain logic", func(t *testing.T) {
		svc := new(MockBookingService)

		w := postBook(t, setupRouter(svc), `{"class_id":1,"client_name":"John Doe","client_email":"invalid-email"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "validation_error", resp.ErrorType)
		svc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("malformed JSON rejected with 422", func(t *testing.T) {
		svc := new(MockBookingService)

		w := postBook(t, setupRouter(svc), `{"class_id": not json`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("class not found maps to 404", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, &ClassNotFoundError{ClassID: 999})

		w := postBook(t, setupRouter(svc), `{"class_id":999,"client_name":"John Doe","client_email":"john@example.com"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "class_not_found", resp.ErrorType)
		assert.Contains(t, resp.Message, "not found")
	})

	t.Run("capacity exhausted maps to 409", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("CreateBooking", mock.Anything, mock.Anything).
			Return(nil, &NoSlotsAvailableError{ClassID: 1, ClassName: "Morning Yoga", AvailableSlots: 0})

		w := postBook(t, setupRouter(svc), `{"class_id":1,"client_name":"John Doe","client_email":"john@example.com"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "no_slots_available", resp.ErrorType)
	})

	t.Run("duplicate booking maps to 409", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("CreateBooking", mock.Anything, mock.Anything).
			Return(nil, &DuplicateBookingError{ExistingBookingID: 42, ClientEmail: "john@example.com"})

		w := postBook(t, setupRouter(svc), `{"class_id":1,"client_name":"John Doe","client_email":"john@example.com"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "duplicate_booking", resp.ErrorType)
		assert.Equal(t, float64(42), resp.Details["existing_booking_id"])
	})

	t.Run("past class maps to 400", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("CreateBooking", mock.Anything, mock.Anything).
			Return(nil, &InvalidBookingDataError{Reason: "cannot book a class that has already occurred"})

		w := postBook(t, setupRouter(svc), `{"class_id":1,"client_name":"John Doe","client_email":"john@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "invalid_booking_data", resp.ErrorType)
	})

	t.Run("unexpected errors map to 500 with generic body", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("CreateBooking", mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		w := postBook(t, setupRouter(svc), `{"class_id":1,"client_name":"John Doe","client_email":"john@example.com"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "internal_server_error", resp.ErrorType)
		assert.NotContains(t, resp.Message, assert.AnError.Error())
	})
}

func TestListBookingsHandler(t *testing.T) {
	t.Run("missing client_email rejected with 422", func(t *testing.T) {
		svc := new(MockBookingService)

		req, err := http.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "validation_error", resp.ErrorType)
		svc.AssertNotCalled(t, "ListByEmail", mock.Anything, mock.Anything)
	})

	t.Run("returns bookings with count", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("ListByEmail", mock.Anything, "john@example.com").Return(&ListResponse{
			Bookings: []Response{
				{Booking: Booking{ID: 1, Reference: "FB11111111", Status: StatusConfirmed}},
			},
			TotalCount:  1,
			ClientEmail: "john@example.com",
		}, nil)

		req, err := http.NewRequest(http.MethodGet, "/api/v1/bookings?client_email=john%40example.com", nil)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.TotalCount)
		assert.Equal(t, "john@example.com", resp.ClientEmail)
	})
}
