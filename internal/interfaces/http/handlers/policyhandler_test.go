package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gantry/internal/application/ratelimit/dto"
	"gantry/internal/application/ratelimit/usecases"
	apperrors "gantry/internal/shared/errors"
	"gantry/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockPolicyReader struct {
	doc *dto.PolicyDocumentDTO
	err error
}

func (m *mockPolicyReader) Execute(ctx context.Context) (*dto.PolicyDocumentDTO, error) {
	return m.doc, m.err
}

type mockPolicyReplacer struct {
	got dto.PolicyDocumentDTO
	err error
}

func (m *mockPolicyReplacer) Execute(ctx context.Context, document dto.PolicyDocumentDTO) error {
	m.got = document
	return m.err
}

type mockEndpointUpserter struct {
	got  usecases.UpsertEndpointRuleCommand
	rule *dto.RuleDTO
	err  error
}

func (m *mockEndpointUpserter) Execute(ctx context.Context, cmd usecases.UpsertEndpointRuleCommand) (*dto.RuleDTO, error) {
	m.got = cmd
	return m.rule, m.err
}

type mockEndpointDeleter struct {
	gotPath   string
	gotMethod string
	err       error
}

func (m *mockEndpointDeleter) Execute(ctx context.Context, path, method string) error {
	m.gotPath = path
	m.gotMethod = method
	return m.err
}

type mockOverrideUpserter struct {
	got  usecases.UpsertUserOverrideCommand
	rule *dto.RuleDTO
	err  error
}

func (m *mockOverrideUpserter) Execute(ctx context.Context, cmd usecases.UpsertUserOverrideCommand) (*dto.RuleDTO, error) {
	m.got = cmd
	return m.rule, m.err
}

type mockOverrideDeleter struct {
	gotUserID string
	err       error
}

func (m *mockOverrideDeleter) Execute(ctx context.Context, userID string) error {
	m.gotUserID = userID
	return m.err
}

func performRequest(router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestPolicyHandler_GetConfig(t *testing.T) {
	reader := &mockPolicyReader{doc: &dto.PolicyDocumentDTO{
		DefaultRequestsPerMinute: 60,
		DefaultBurstSize:         10,
		Endpoints: map[string]map[string]dto.RuleDTO{
			"/api/users": {"GET": {RequestsPerMinute: 100, BurstSize: 20}},
		},
		UserOverrides: map[string]dto.RuleDTO{},
	}}
	handler := NewPolicyHandler(reader, nil, nil, nil, nil, nil)

	router := gin.New()
	router.GET("/api/config", handler.GetConfig)

	w := performRequest(router, http.MethodGet, "/api/config", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(60), data["default_requests_per_minute"])
}

func TestPolicyHandler_GetConfig_StoreError(t *testing.T) {
	reader := &mockPolicyReader{err: apperrors.NewStoreError("redis unreachable")}
	handler := NewPolicyHandler(reader, nil, nil, nil, nil, nil)

	router := gin.New()
	router.GET("/api/config", handler.GetConfig)

	w := performRequest(router, http.MethodGet, "/api/config", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "store_error", resp.Error.Type)
}

func TestPolicyHandler_ReplaceConfig(t *testing.T) {
	replacer := &mockPolicyReplacer{}
	handler := NewPolicyHandler(nil, replacer, nil, nil, nil, nil)

	router := gin.New()
	router.POST("/api/config", handler.ReplaceConfig)

	body := dto.PolicyDocumentDTO{
		DefaultRequestsPerMinute: 120,
		Endpoints:                map[string]map[string]dto.RuleDTO{},
	}
	w := performRequest(router, http.MethodPost, "/api/config", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 120, replacer.got.DefaultRequestsPerMinute)
}

func TestPolicyHandler_ReplaceConfig_ValidationError(t *testing.T) {
	replacer := &mockPolicyReplacer{err: apperrors.NewValidationError("endpoints section is required")}
	handler := NewPolicyHandler(nil, replacer, nil, nil, nil, nil)

	router := gin.New()
	router.POST("/api/config", handler.ReplaceConfig)

	w := performRequest(router, http.MethodPost, "/api/config", dto.PolicyDocumentDTO{DefaultRequestsPerMinute: 60})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_error", resp.Error.Type)
}

func TestPolicyHandler_UpsertEndpoint(t *testing.T) {
	upserter := &mockEndpointUpserter{rule: &dto.RuleDTO{RequestsPerMinute: 100, BurstSize: 20}}
	handler := NewPolicyHandler(nil, nil, upserter, nil, nil, nil)

	router := gin.New()
	router.POST("/api/endpoints", handler.UpsertEndpoint)

	w := performRequest(router, http.MethodPost, "/api/endpoints", gin.H{
		"endpoint":            "/api/users",
		"method":              "GET",
		"requests_per_minute": 100,
		"burst_size":          20,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "/api/users", upserter.got.Path)
	assert.Equal(t, "GET", upserter.got.Method)
	assert.Equal(t, float64(100), upserter.got.RequestsPerMinute)

	resp := decodeResponse(t, w)
	assert.Equal(t, "Endpoint configuration updated successfully", resp.Message)
}

func TestPolicyHandler_UpsertEndpoint_MissingFields(t *testing.T) {
	upserter := &mockEndpointUpserter{}
	handler := NewPolicyHandler(nil, nil, upserter, nil, nil, nil)

	router := gin.New()
	router.POST("/api/endpoints", handler.UpsertEndpoint)

	w := performRequest(router, http.MethodPost, "/api/endpoints", gin.H{"method": "GET"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, upserter.got.Method, "use case must not run on a bad request body")
}

func TestPolicyHandler_UpsertEndpoint_ValidationError(t *testing.T) {
	upserter := &mockEndpointUpserter{err: apperrors.NewValidationError("requests_per_minute must be a positive number")}
	handler := NewPolicyHandler(nil, nil, upserter, nil, nil, nil)

	router := gin.New()
	router.POST("/api/endpoints", handler.UpsertEndpoint)

	w := performRequest(router, http.MethodPost, "/api/endpoints", gin.H{
		"endpoint":            "/api/users",
		"method":              "GET",
		"requests_per_minute": "fast",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPolicyHandler_DeleteEndpoint(t *testing.T) {
	deleter := &mockEndpointDeleter{}
	handler := NewPolicyHandler(nil, nil, nil, deleter, nil, nil)

	router := gin.New()
	router.DELETE("/api/endpoints", handler.DeleteEndpoint)

	w := performRequest(router, http.MethodDelete, "/api/endpoints?path=/api/users&method=GET", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/users", deleter.gotPath)
	assert.Equal(t, "GET", deleter.gotMethod)
}

func TestPolicyHandler_DeleteEndpoint_NotFound(t *testing.T) {
	deleter := &mockEndpointDeleter{err: apperrors.NewNotFoundError("no rule configured for GET /api/users")}
	handler := NewPolicyHandler(nil, nil, nil, deleter, nil, nil)

	router := gin.New()
	router.DELETE("/api/endpoints", handler.DeleteEndpoint)

	w := performRequest(router, http.MethodDelete, "/api/endpoints?path=/api/users&method=GET", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "not_found", resp.Error.Type)
}

func TestPolicyHandler_UpsertUserOverride(t *testing.T) {
	upserter := &mockOverrideUpserter{rule: &dto.RuleDTO{RequestsPerMinute: 500, BurstSize: 100}}
	handler := NewPolicyHandler(nil, nil, nil, nil, upserter, nil)

	router := gin.New()
	router.POST("/api/users", handler.UpsertUserOverride)

	w := performRequest(router, http.MethodPost, "/api/users", gin.H{
		"user_id":             "premium_user_123",
		"requests_per_minute": 500,
		"burst_size":          100,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "premium_user_123", upserter.got.UserID)
}

func TestPolicyHandler_DeleteUserOverride(t *testing.T) {
	deleter := &mockOverrideDeleter{}
	handler := NewPolicyHandler(nil, nil, nil, nil, nil, deleter)

	router := gin.New()
	router.DELETE("/api/users/:user_id", handler.DeleteUserOverride)

	w := performRequest(router, http.MethodDelete, "/api/users/premium_user_123", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "premium_user_123", deleter.gotUserID)
}
