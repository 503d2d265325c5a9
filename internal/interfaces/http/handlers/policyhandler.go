package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gantry/internal/application/ratelimit/dto"
	"gantry/internal/application/ratelimit/usecases"
	"gantry/internal/shared/logger"
	"gantry/internal/shared/utils"
)

// PolicyHandler exposes the policy document: whole-document read/replace,
// endpoint rules, and user overrides.
type PolicyHandler struct {
	getPolicyUC          policyReader
	replacePolicyUC      policyReplacer
	upsertEndpointUC     endpointRuleUpserter
	deleteEndpointUC     endpointRuleDeleter
	upsertUserOverrideUC userOverrideUpserter
	deleteUserOverrideUC userOverrideDeleter
	logger               logger.Interface
}

func NewPolicyHandler(
	getPolicyUC policyReader,
	replacePolicyUC policyReplacer,
	upsertEndpointUC endpointRuleUpserter,
	deleteEndpointUC endpointRuleDeleter,
	upsertUserOverrideUC userOverrideUpserter,
	deleteUserOverrideUC userOverrideDeleter,
) *PolicyHandler {
	return &PolicyHandler{
		getPolicyUC:          getPolicyUC,
		replacePolicyUC:      replacePolicyUC,
		upsertEndpointUC:     upsertEndpointUC,
		deleteEndpointUC:     deleteEndpointUC,
		upsertUserOverrideUC: upsertUserOverrideUC,
		deleteUserOverrideUC: deleteUserOverrideUC,
		logger:               logger.NewLogger(),
	}
}

type UpsertEndpointRequest struct {
	Endpoint          string `json:"endpoint" binding:"required"`
	Method            string `json:"method" binding:"required"`
	RequestsPerMinute any    `json:"requests_per_minute"`
	BurstSize         any    `json:"burst_size"`
}

type UpsertUserOverrideRequest struct {
	UserID            string `json:"user_id" binding:"required"`
	RequestsPerMinute any    `json:"requests_per_minute"`
	BurstSize         any    `json:"burst_size"`
}

// GetConfig returns the full policy document, synthesizing the built-in
// default when the store holds nothing.
func (h *PolicyHandler) GetConfig(c *gin.Context) {
	doc, err := h.getPolicyUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, doc)
}

// ReplaceConfig overwrites the whole policy document.
func (h *PolicyHandler) ReplaceConfig(c *gin.Context) {
	var req dto.PolicyDocumentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for replace config", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.replacePolicyUC.Execute(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Configuration updated successfully", nil)
}

// ListEndpoints returns the endpoint rules plus the defaults they fall back to.
func (h *PolicyHandler) ListEndpoints(c *gin.Context) {
	doc, err := h.getPolicyUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.EndpointListDTO{
		Endpoints:                doc.Endpoints,
		DefaultRequestsPerMinute: doc.DefaultRequestsPerMinute,
		DefaultBurstSize:         doc.DefaultBurstSize,
	})
}

// UpsertEndpoint merges one endpoint+method rule into the document.
func (h *PolicyHandler) UpsertEndpoint(c *gin.Context) {
	var req UpsertEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for upsert endpoint", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "endpoint, method, and requests_per_minute are required")
		return
	}

	rule, err := h.upsertEndpointUC.Execute(c.Request.Context(), usecases.UpsertEndpointRuleCommand{
		Path:              req.Endpoint,
		Method:            req.Method,
		RequestsPerMinute: req.RequestsPerMinute,
		BurstSize:         req.BurstSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Endpoint configuration updated successfully", gin.H{
		"endpoint": req.Endpoint,
		"method":   req.Method,
		"config":   rule,
	})
}

// DeleteEndpoint removes a rule addressed by the path and method query
// parameters. Query parameters are used because endpoint paths contain
// slashes that do not fit a route parameter.
func (h *PolicyHandler) DeleteEndpoint(c *gin.Context) {
	path := c.Query("path")
	method := c.Query("method")

	if err := h.deleteEndpointUC.Execute(c.Request.Context(), path, method); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Endpoint configuration deleted successfully", gin.H{
		"endpoint": path,
		"method":   method,
	})
}

// ListUserOverrides returns the per-user rules.
func (h *PolicyHandler) ListUserOverrides(c *gin.Context) {
	doc, err := h.getPolicyUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.UserOverrideListDTO{
		UserOverrides: doc.UserOverrides,
	})
}

// UpsertUserOverride merges one per-user rule into the document.
func (h *PolicyHandler) UpsertUserOverride(c *gin.Context) {
	var req UpsertUserOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for upsert user override", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "user_id and requests_per_minute are required")
		return
	}

	rule, err := h.upsertUserOverrideUC.Execute(c.Request.Context(), usecases.UpsertUserOverrideCommand{
		UserID:            req.UserID,
		RequestsPerMinute: req.RequestsPerMinute,
		BurstSize:         req.BurstSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User override updated successfully", gin.H{
		"user_id": req.UserID,
		"config":  rule,
	})
}

// DeleteUserOverride removes the override for the user in the route.
func (h *PolicyHandler) DeleteUserOverride(c *gin.Context) {
	userID := c.Param("user_id")

	if err := h.deleteUserOverrideUC.Execute(c.Request.Context(), userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User override deleted successfully", gin.H{
		"user_id": userID,
	})
}
