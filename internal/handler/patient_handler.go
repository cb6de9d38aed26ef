package handler

import (
	"hospital-reception-backend/internal/models"
	"hospital-reception-backend/internal/service"
	"hospital-reception-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// GetPatients lists patients, filtered by ?disease=, ?doctor_id= or ?floor=
// The first filter present wins.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	var (
		patients []models.Patient
		err      error
	)
	switch {
	case c.Query("disease") != "":
		patients, err = h.patientService.ByDisease(c.Query("disease"))
	case c.Query("doctor_id") != "":
		patients, err = h.patientService.ByDoctor(c.Query("doctor_id"))
	case c.Query("floor") != "":
		patients, err = h.patientService.ByFloor(c.Query("floor"))
	default:
		patients = h.patientService.All()
	}
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}

// GetPatient finds the first patient matching :name
func (h *PatientHandler) GetPatient(c *gin.Context) {
	patient, err := h.patientService.ByName(c.Param("name"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// GetDirections describes how to reach a patient's room
func (h *PatientHandler) GetDirections(c *gin.Context) {
	directions, err := h.patientService.DirectionsTo(c.Param("name"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, directions)
}

// GetPatientInRoom returns the patient in :room
func (h *PatientHandler) GetPatientInRoom(c *gin.Context) {
	patient, err := h.patientService.ByRoom(c.Param("room"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}
