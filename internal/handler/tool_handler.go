package handler

import (
	"errors"
	"io"
	"net/http"

	"hospital-reception-backend/internal/middleware"
	"hospital-reception-backend/internal/tools"
	"hospital-reception-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ToolHandler struct {
	registry *tools.Registry
}

func NewToolHandler(registry *tools.Registry) *ToolHandler {
	return &ToolHandler{
		registry: registry,
	}
}

// GetTools lists the tool catalogue
func (h *ToolHandler) GetTools(c *gin.Context) {
	catalogue := h.registry.Tools()

	utils.SuccessResponse(c, gin.H{
		"tools": catalogue,
		"count": len(catalogue),
	})
}

// InvokeTool runs :name with a JSON object of string arguments; an empty body means no arguments
func (h *ToolHandler) InvokeTool(c *gin.Context) {
	var args tools.Args
	if err := c.ShouldBindJSON(&args); err != nil && !errors.Is(err, io.EOF) {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ctx := tools.WithRequestID(c.Request.Context(), c.GetString(middleware.ContextRequestID))
	name := c.Param("name")
	result, err := h.registry.Invoke(ctx, name, args)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"tool":   name,
		"result": result,
	})
}
