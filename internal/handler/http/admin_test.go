package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-table-order/internal/app"
	"github.com/MKhiriev/go-table-order/internal/service"
	"github.com/MKhiriev/go-table-order/internal/store"
	"github.com/MKhiriev/go-table-order/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCSRFToken(t *testing.T) {
	t.Run("issues cookie", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())

		rr := f.serve(withAdmin(jsonRequest(t, http.MethodGet, "/api/admin/csrf-token", nil)))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.CSRFResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Ok)
		assert.NotEmpty(t, resp.CSRFToken)

		cookie := findCookie(rr.Result().Cookies(), csrfCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, resp.CSRFToken, cookie.Value)
		assert.False(t, cookie.HttpOnly)
	})

	t.Run("reuses existing cookie", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		req := withAdmin(jsonRequest(t, http.MethodGet, "/api/admin/csrf-token", nil))
		req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "existing"})

		rr := f.serve(req)

		var resp models.CSRFResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "existing", resp.CSRFToken)
		assert.Nil(t, findCookie(rr.Result().Cookies(), csrfCookieName))
	})
}

func TestGenerateQR(t *testing.T) {
	t.Run("success uses request origin", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		f.admin.EXPECT().
			GenerateQR(gomock.Any(), models.TableID(4), "https://tables.example.com").
			Return("https://tables.example.com/index.html?token=abc", nil)

		req := withCSRF(withAdmin(jsonRequest(t, http.MethodPost, "/api/admin/generate-qr", map[string]any{"tableId": 4})), "csrf-1")
		req.Host = "tables.example.com"
		req.Header.Set("X-Forwarded-Proto", "https")

		rr := f.serve(req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.QRResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Ok)
		assert.Equal(t, "https://tables.example.com/index.html?token=abc", resp.QRURL)
	})

	t.Run("missing table id", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())

		req := withCSRF(withAdmin(jsonRequest(t, http.MethodPost, "/api/admin/generate-qr", map[string]any{})), "csrf-1")
		rr := f.serve(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgTableIDRequired, decodeResponse(t, rr).Msg)
	})

	t.Run("unknown table", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		f.admin.EXPECT().GenerateQR(gomock.Any(), models.TableID(99), gomock.Any()).Return("", service.ErrTableNotFound)

		req := withCSRF(withAdmin(jsonRequest(t, http.MethodPost, "/api/admin/generate-qr", map[string]any{"tableId": 99})), "csrf-1")
		rr := f.serve(req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, CodeNotFound, decodeResponse(t, rr).Code)
	})

	t.Run("missing CSRF header", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())

		req := withAdmin(jsonRequest(t, http.MethodPost, "/api/admin/generate-qr", map[string]any{"tableId": 4}))
		req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "csrf-1"})
		rr := f.serve(req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, CodeForbidden, decodeResponse(t, rr).Code)
	})

	t.Run("CSRF mismatch", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())

		req := withAdmin(jsonRequest(t, http.MethodPost, "/api/admin/generate-qr", map[string]any{"tableId": 4}))
		req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "csrf-1"})
		req.Header.Set(csrfHeaderName, "csrf-2")
		rr := f.serve(req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("legacy CSRF header", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		f.admin.EXPECT().GenerateQR(gomock.Any(), models.TableID(1), "http://example.com").Return("http://example.com/index.html?token=t", nil)

		req := withAdmin(jsonRequest(t, http.MethodPost, "/api/admin/generate-qr", map[string]any{"tableId": 1}))
		req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "csrf-1"})
		req.Header.Set(csrfHeaderLegacy, "csrf-1")
		rr := f.serve(req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestTables(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		f.credentials.EXPECT().ListTables(gomock.Any()).Return([]models.TableView{
			{ID: 1, Name: "Window", HasPin: true},
			{ID: 2, Name: "Bar", HasPin: true},
		}, nil)

		rr := f.serve(withAdmin(jsonRequest(t, http.MethodGet, "/api/admin/tables", nil)))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.DataResponse[models.TableView]
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Ok)
		assert.Len(t, resp.Data, 2)
		assert.NotContains(t, rr.Body.String(), "pinHash")
	})

	t.Run("save", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		want := models.SaveTableRequest{ID: 3, Name: "Patio", PIN: "4321"}
		f.credentials.EXPECT().SaveTable(gomock.Any(), want).Return(models.TableView{ID: 3, Name: "Patio", HasPin: true}, nil)

		rr := f.serve(withCSRF(withAdmin(jsonRequest(t, http.MethodPost, "/api/admin/tables", want)), "c"))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decodeResponse(t, rr).Ok)
	})

	t.Run("save invalid", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		f.credentials.EXPECT().SaveTable(gomock.Any(), gomock.Any()).Return(models.TableView{}, service.ErrValidation)

		rr := f.serve(withCSRF(withAdmin(jsonRequest(t, http.MethodPost, "/api/admin/tables", models.SaveTableRequest{ID: 3})), "c"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newHandlerFixture(t, testServerConfig())
		f.credentials.EXPECT().ListTables(gomock.Any()).Return(nil, errors.Join(store.ErrStorage, errors.New("disk full")))

		rr := f.serve(withAdmin(jsonRequest(t, http.MethodGet, "/api/admin/tables", nil)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		resp := decodeResponse(t, rr)
		assert.Equal(t, CodeInternal, resp.Code)
		assert.NotContains(t, resp.Msg, "disk full")
	})
}

func TestRequestBaseURL(t *testing.T) {
	req := jsonRequest(t, http.MethodGet, "/", nil)
	req.Host = "localhost:3000"
	assert.Equal(t, "http://localhost:3000", requestBaseURL(req))

	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://localhost:3000", requestBaseURL(req))

	req.Header.Set("X-Forwarded-Proto", "gopher")
	assert.Equal(t, "http://localhost:3000", requestBaseURL(req))
}
