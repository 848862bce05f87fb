package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Check(t *testing.T) {
	mockStore := new(MockHealthStore)
	h := NewHealthHandler(mockStore, zerolog.Nop())

	mockStore.On("Ping", mock.Anything).Return(nil)
	mockStore.On("CollectionNames", mock.Anything).
		Return([]string{"product", "order", "promocode"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "connected", resp.Store)
	assert.Equal(t, []string{"product", "order", "promocode"}, resp.Collections)
}

func TestHealthHandler_Check_StoreUnavailable(t *testing.T) {
	mockStore := new(MockHealthStore)
	h := NewHealthHandler(mockStore, zerolog.Nop())

	mockStore.On("Ping", mock.Anything).Return(errors.New("no reachable servers"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	// A degraded store still answers 200; the body carries the state.
	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unavailable", resp.Store)
	assert.Empty(t, resp.Collections)
	mockStore.AssertNotCalled(t, "CollectionNames", mock.Anything)
}

func TestHealthHandler_Check_CollectionListTruncated(t *testing.T) {
	mockStore := new(MockHealthStore)
	h := NewHealthHandler(mockStore, zerolog.Nop())

	names := make([]string, 25)
	for i := range names {
		names[i] = string(rune('a' + i))
	}

	mockStore.On("Ping", mock.Anything).Return(nil)
	mockStore.On("CollectionNames", mock.Anything).Return(names, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Collections, 10)
}
