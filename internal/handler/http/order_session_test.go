package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-table-order/internal/app"
	"github.com/MKhiriev/go-table-order/internal/service"
	"github.com/MKhiriev/go-table-order/internal/store"
	"github.com/MKhiriev/go-table-order/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidateLocation(t *testing.T) {
	distance := 56

	t.Run("customer inside", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		f.orderSession.EXPECT().
			ValidateLocation(gomock.Any(), gomock.Any(), (*models.Session)(nil)).
			DoAndReturn(func(_ any, req models.LocationRequest, _ *models.Session) (models.LocationResult, error) {
				assert.Equal(t, "tok", req.Token)
				require.NotNil(t, req.Lat)
				assert.InDelta(t, 19.07, float64(*req.Lat), 1e-9)
				return models.LocationResult{Ok: true, Inside: true, Distance: &distance, Msg: service.MsgInsideVenue}, nil
			})

		rr := f.serve(jsonRequest(t, http.MethodPost, "/api/validate-location", `{"token":"tok","lat":"19.07","lng":72.87}`))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.LocationResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Ok)
		assert.True(t, resp.Inside)
		require.NotNil(t, resp.Distance)
		assert.Equal(t, 56, *resp.Distance)
	})

	t.Run("admin session is passed through", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		f.orderSession.EXPECT().
			ValidateLocation(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
			Return(models.LocationResult{Ok: true, Inside: true, Msg: service.MsgAdminBypass}, nil)

		rr := f.serve(withAdmin(jsonRequest(t, http.MethodPost, "/api/validate-location", `{}`)))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), service.MsgAdminBypass)
	})

	t.Run("admin without a body", func(t *testing.T) {
		for name, body := range map[string]any{"empty": nil, "non-numeric lat": `{"lat":"abc"}`} {
			t.Run(name, func(t *testing.T) {
				f := newHandlerFixture(t, testServerConfig())
				f.orderSession.EXPECT().
					ValidateLocation(gomock.Any(), models.LocationRequest{}, gomock.Not(gomock.Nil())).
					Return(models.LocationResult{Ok: true, Inside: true, Msg: service.MsgAdminBypass}, nil)

				rr := f.serve(withAdmin(jsonRequest(t, http.MethodPost, "/api/validate-location", body)))

				require.Equal(t, http.StatusOK, rr.Code)
				var resp models.LocationResult
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Ok)
				assert.True(t, resp.Inside)
			})
		}
	})

	t.Run("admin without a body and bypass disabled", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		f.orderSession.EXPECT().ValidateLocation(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
			Return(models.LocationResult{Ok: false, Msg: service.MsgInvalidQRToken, Code: service.CodeUnauthorized}, nil)

		rr := f.serve(withAdmin(jsonRequest(t, http.MethodPost, "/api/validate-location", nil)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgLocationRequired, decodeResponse(t, rr).Msg)
	})

	t.Run("customer without a body", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())

		rr := f.serve(jsonRequest(t, http.MethodPost, "/api/validate-location", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgLocationRequired, decodeResponse(t, rr).Msg)
	})

	t.Run("invalid token is a 200 rejection", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		f.orderSession.EXPECT().ValidateLocation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.LocationResult{Ok: false, Msg: service.MsgInvalidQRToken, Code: service.CodeUnauthorized}, nil)

		rr := f.serve(jsonRequest(t, http.MethodPost, "/api/validate-location", `{"token":"bad","lat":1,"lng":1}`))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.False(t, decodeResponse(t, rr).Ok)
	})

	t.Run("missing location", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		f.orderSession.EXPECT().ValidateLocation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.LocationResult{}, fmt.Errorf("%w: lat is required", service.ErrValidation))

		rr := f.serve(jsonRequest(t, http.MethodPost, "/api/validate-location", `{"token":"tok"}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeResponse(t, rr)
		assert.Equal(t, app.MsgLocationRequired, resp.Msg)
		assert.Equal(t, CodeInvalidRequest, resp.Code)
	})

	t.Run("non-numeric coordinate", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())

		rr := f.serve(jsonRequest(t, http.MethodPost, "/api/validate-location", `{"token":"tok","lat":"north","lng":1}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgLocationRequired, decodeResponse(t, rr).Msg)
	})
}

func TestValidatePin(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		ok         bool
		err        error
		callsSvc   bool
		wantStatus int
		wantOk     bool
	}{
		{"correct", models.PinRequest{Token: "t", TableID: 1, PIN: "1234"}, true, nil, true, http.StatusOK, true},
		{"wrong", models.PinRequest{Token: "t", TableID: 1, PIN: "0000"}, false, nil, true, http.StatusOK, false},
		{"garbage body", "not json", false, nil, false, http.StatusOK, false},
		{"storage failure", models.PinRequest{Token: "t", TableID: 1, PIN: "1234"}, false, store.ErrStorage, true, http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t, testServerConfig())
			if tt.callsSvc {
				f.orderSession.EXPECT().ValidatePin(gomock.Any(), gomock.Any()).Return(tt.ok, tt.err)
			}

			rr := f.serve(jsonRequest(t, http.MethodPost, "/api/validate-pin", tt.body))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOk, decodeResponse(t, rr).Ok)
		})
	}
}

func TestCreateOrder(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	body := models.CreateOrderRequest{
		Token:   "tok",
		TableID: 2,
		Items:   []models.OrderItemRequest{{Name: "Pizza", Qty: 2, Price: 9.5}},
	}

	t.Run("accepted", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		f.orderSession.EXPECT().SubmitOrder(gomock.Any(), body).
			Return(models.Order{ID: "order-1", TableID: 2, CreatedAt: createdAt}, nil)

		rr := f.serve(jsonRequest(t, http.MethodPost, "/api/orders/create", body))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.OrderAccepted
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Ok)
		assert.Equal(t, "order-1", resp.ID)
		assert.True(t, createdAt.Equal(resp.CreatedAt))
	})

	errorCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid token", service.ErrInvalidToken, http.StatusUnauthorized, CodeUnauthorized},
		{"invalid items", fmt.Errorf("%w: qty must be > 0", service.ErrValidation), http.StatusBadRequest, CodeInvalidRequest},
		{"storage", fmt.Errorf("append order: %w", store.ErrStorage), http.StatusInternalServerError, CodeInternal},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newHandlerFixture(t, testServerConfig())
			f.orderSession.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(models.Order{}, tc.err)

			rr := f.serve(jsonRequest(t, http.MethodPost, "/api/orders/create", body))

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, tc.wantCode, decodeResponse(t, rr).Code)
		})
	}

	t.Run("bad JSON", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())

		rr := f.serve(jsonRequest(t, http.MethodPost, "/api/orders/create", `{"items":`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rate limited before body is read", func(t *testing.T) {
		cfg := testServerConfig()
		cfg.OrderRateLimit = 1
		f := newHandlerFixture(t, cfg)
		f.orderSession.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(models.Order{ID: "order-1", CreatedAt: createdAt}, nil).Times(1)

		router := f.h.Init()
		first := serveWith(router, jsonRequest(t, http.MethodPost, "/api/orders/create", body))
		second := serveWith(router, jsonRequest(t, http.MethodPost, "/api/orders/create", "garbage"))

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		resp := decodeResponse(t, second)
		assert.Equal(t, CodeRateLimited, resp.Code)
		assert.Equal(t, "Too many requests", resp.Msg)
		assert.NotEmpty(t, second.Header().Get("Retry-After"))
		assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("window elapses", func(t *testing.T) {
		cfg := testServerConfig()
		cfg.OrderRateLimit = 2
		cfg.OrderRateWindow = time.Second
		f := newHandlerFixture(t, cfg)
		f.orderSession.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(models.Order{ID: "x", CreatedAt: createdAt}, nil).Times(3)

		router := f.h.Init()
		var codes []int
		for range 3 {
			codes = append(codes, serveWith(router, jsonRequest(t, http.MethodPost, "/api/orders/create", body)).Code)
		}
		time.Sleep(1100 * time.Millisecond)
		codes = append(codes, serveWith(router, jsonRequest(t, http.MethodPost, "/api/orders/create", body)).Code)

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusOK}, codes)
	})

	t.Run("limit is per client", func(t *testing.T) {
		cfg := testServerConfig()
		cfg.OrderRateLimit = 1
		f := newHandlerFixture(t, cfg)
		f.orderSession.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(models.Order{ID: "x", CreatedAt: createdAt}, nil).Times(2)

		router := f.h.Init()
		for _, addr := range []string{"10.0.0.1:5000", "10.0.0.2:5000"} {
			req := jsonRequest(t, http.MethodPost, "/api/orders/create", body)
			req.RemoteAddr = addr
			assert.Equal(t, http.StatusOK, serveWith(router, req).Code)
		}
	})
}
