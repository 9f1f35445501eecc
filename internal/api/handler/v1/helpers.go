package v1

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marchemgmt/marche-api/internal/api/handler/v1/response"
)

// parseUintParam reads a numeric path parameter, rendering a 400 on failure.
// The caller must return when ok is false.
func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid %v %q", name, raw)))

		return 0, false
	}

	return uint(value), true
}

// parseRequiredUintQuery reads a numeric query parameter that must be set.
func parseRequiredUintQuery(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Query(name)

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid %v %q", name, raw)))

		return 0, false
	}

	return uint(value), true
}

// parseOptionalUintQuery reads a numeric query parameter that may be absent.
func parseOptionalUintQuery(ctx *gin.Context, name string) (*uint, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid %v %q", name, raw)))

		return nil, false
	}

	id := uint(value)

	return &id, true
}
