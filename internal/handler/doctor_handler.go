package handler

import (
	"hospital-reception-backend/internal/models"
	"hospital-reception-backend/internal/service"
	"hospital-reception-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

// GetDoctors lists doctors, filtered by ?specialization=, ?department_id= or ?day=
// The first filter present wins.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	var (
		doctors []models.Doctor
		err     error
	)
	switch {
	case c.Query("specialization") != "":
		doctors, err = h.doctorService.BySpecialization(c.Query("specialization"))
	case c.Query("department_id") != "":
		doctors, err = h.doctorService.ByDepartment(c.Query("department_id"))
	case c.Query("day") != "":
		doctors, err = h.doctorService.AvailableOn(c.Query("day"))
	default:
		doctors = h.doctorService.All()
	}
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// GetDoctor finds the first doctor matching :name
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	doctor, err := h.doctorService.ByName(c.Param("name"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, doctor)
}
