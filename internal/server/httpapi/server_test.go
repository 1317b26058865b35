package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/dmitrijs2005/hrconsole/internal/client/client"
	"github.com/dmitrijs2005/hrconsole/internal/client/models"
	"github.com/dmitrijs2005/hrconsole/internal/common"
	"github.com/dmitrijs2005/hrconsole/internal/logging"
	"github.com/dmitrijs2005/hrconsole/internal/server/records"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *records.Service) {
	t.Helper()
	svc := records.NewService(records.NewMemoryRepository(), logging.Nop{})
	return NewServer("127.0.0.1:0", svc, logging.Nop{}, time.Second), svc
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd *bytes.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func TestPing(t *testing.T) {
	s, _ := newTestServer(t)
	rec, body := do(t, s.Handler(), http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestCollectionRoutes(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	rec, body := do(t, h, http.MethodPost, "/users", `{"firstName":"Ana","username":"ana","password":"pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, records.PasswordMask, body["password"])

	rec, _ = do(t, h, http.MethodPost, "/users", `{"firstName":"Dup","username":"ana"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, body = do(t, h, http.MethodPut, "/users/1", `{"position":"Lead"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Lead", body["position"])
	assert.Equal(t, "Ana", body["firstName"])

	rec, body = do(t, h, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Lead", body["position"])

	req := httptest.NewRequest(http.MethodGet, "/users?username=ana&password=pw", nil)
	lrec := httptest.NewRecorder()
	h.ServeHTTP(lrec, req)
	require.Equal(t, http.StatusOK, lrec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(lrec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec, _ = do(t, h, http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = do(t, h, http.MethodGet, "/users/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", body["error"])
}

func TestBadRequests(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	rec, body := do(t, h, http.MethodPost, "/leave", `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid body", body["error"])

	rec, _ = do(t, h, http.MethodPut, "/leave/1", ``)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/leave", `{"id":"temp_1_x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/payroll", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type failingRecords struct{ Records }

func (failingRecords) List(context.Context, string, url.Values) ([]records.Document, error) {
	return nil, errors.New("disk on fire")
}

func TestStorageFailureIs500(t *testing.T) {
	s := NewServer(":0", failingRecords{}, logging.Nop{}, time.Second)
	rec, body := do(t, s.Handler(), http.MethodGet, "/attendance", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", body["error"])
}

// The console's store client against the real routes.
func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("get: %w", common.ErrorNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: username taken", common.ErrorConflict), http.StatusConflict},
		{fmt.Errorf("%w: bad id", common.ErrorValidation), http.StatusBadRequest},
		{errors.New("unauthorized"), http.StatusInternalServerError},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusOf(tt.err), tt.err.Error())
	}
}

func TestConsoleClientRoundTrip(t *testing.T) {
	s, svc := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	_, err := svc.SeedAdmin(context.Background(), "root", "toor")
	require.NoError(t, err)

	api, err := client.NewHTTPClient(ts.URL, time.Second)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, api.Ping(ctx))

	accounts, err := client.NewDirectory(api, models.Admins.Path).Find(ctx, url.Values{"username": {"root"}, "password": {"toor"}})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, models.PersistedID("1"), accounts[0].ID)

	emps := client.ForEntity(api, models.Employees)
	created, err := emps.Create(ctx, &models.Employee{ID: models.PersistedID("3"), FirstName: "Ana", LastName: "Lopez", Username: "ana", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.PersistedID("3"), created.ID)
	assert.Equal(t, models.PasswordMask, created.Password)

	_, err = emps.Create(ctx, &models.Employee{ID: models.PersistedID("3"), Username: "other"})
	assert.ErrorIs(t, err, client.ErrConflict)

	draft := created.Clone()
	draft.Position = "Lead"
	updated, err := emps.Update(ctx, "3", draft)
	require.NoError(t, err)
	assert.Equal(t, "Lead", updated.Position)
	assert.Equal(t, "Ana", updated.FirstName)

	require.NoError(t, emps.Delete(ctx, "3"))
	_, err = emps.Get(ctx, "3")
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestServeStopsOnCancel(t *testing.T) {
	s, _ := newTestServer(t)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, l) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + l.Addr().String() + "/ping")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
