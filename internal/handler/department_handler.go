package handler

import (
	"hospital-reception-backend/internal/models"
	"hospital-reception-backend/internal/service"
	"hospital-reception-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	departmentService *service.DepartmentService
}

func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

// GetDepartments lists departments, filtered by ?floor= or ?building= when given
func (h *DepartmentHandler) GetDepartments(c *gin.Context) {
	var (
		departments []models.Department
		err         error
	)
	switch {
	case c.Query("floor") != "":
		departments, err = h.departmentService.ByFloor(c.Query("floor"))
	case c.Query("building") != "":
		departments, err = h.departmentService.ByBuilding(c.Query("building"))
	default:
		departments = h.departmentService.All()
	}
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"departments": departments,
		"count":       len(departments),
	})
}

// GetDepartment finds the first department matching :name
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	department, err := h.departmentService.ByName(c.Param("name"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, department)
}
