package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meta-radar/internal/config"
	"meta-radar/internal/model"
)

type fakeRunner struct {
	result *model.ScanResult
	err    error
}

func (f *fakeRunner) Run(ctx context.Context) (*model.ScanResult, error) {
	return f.result, f.err
}

func TestHealth(t *testing.T) {
	s := New(config.ServerConfig{Port: 0}, &fakeRunner{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMeta_Success(t *testing.T) {
	runner := &fakeRunner{result: &model.ScanResult{
		Success:      true,
		TotalScanned: 3,
		MetaKeyword:  "DOGE",
		MetaCount:    3,
		AIAnalysis:   "doge season",
		FilteredList: []model.CanonicalRecord{{Name: "DOGE KING", Address: "a"}},
	}}
	s := New(config.ServerConfig{Port: 0}, runner)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/meta", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got model.ScanResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, "DOGE", got.MetaKeyword)
	assert.Equal(t, 3, got.MetaCount)
	require.Len(t, got.FilteredList, 1)
	assert.Equal(t, "a", got.FilteredList[0].Address)
}

func TestMeta_PipelineFailure(t *testing.T) {
	s := New(config.ServerConfig{Port: 0}, &fakeRunner{err: errors.New("harvest down")})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/meta", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got model.ErrorResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Success)
	assert.Equal(t, "scan failed", got.Error)
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(config.ServerConfig{Port: 0}, &fakeRunner{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
