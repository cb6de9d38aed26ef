package handler

import (
	"hospital-reception-backend/internal/service"
	"hospital-reception-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
	geoService      *service.GeoService
	metricService   *service.MetricService
}

func NewHospitalHandler(hospitalService *service.HospitalService, geoService *service.GeoService, metricService *service.MetricService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
		geoService:      geoService,
		metricService:   metricService,
	}
}

// GetAllHospitals lists each hospital once with its location
func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	hospitals := h.hospitalService.Names()

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// GetHospitalCount returns the number of distinct hospitals
func (h *HospitalHandler) GetHospitalCount(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"count": h.hospitalService.Count()})
}

// GetDateRange returns the dates covered by the dataset
func (h *HospitalHandler) GetDateRange(c *gin.Context) {
	dateRange, err := h.hospitalService.DateRange()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, dateRange)
}

// GetColumnNames lists the dataset columns
func (h *HospitalHandler) GetColumnNames(c *gin.Context) {
	columns := h.metricService.ColumnNames()

	utils.SuccessResponse(c, gin.H{
		"columns": columns,
		"count":   len(columns),
	})
}

// GetDetails returns one hospital's metrics on ?date=
func (h *HospitalHandler) GetDetails(c *gin.Context) {
	metric, err := h.hospitalService.DetailsByDate(c.Param("name"), c.Query("date"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, metric)
}

// GetColumnValue returns one metric on ?date=, or the full series without it
func (h *HospitalHandler) GetColumnValue(c *gin.Context) {
	value, err := h.metricService.ColumnValue(c.Param("name"), c.Param("column"), c.Query("date"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, value)
}

// GetLocation returns a hospital's parsed coordinates
func (h *HospitalHandler) GetLocation(c *gin.Context) {
	location, err := h.geoService.Location(c.Param("name"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, location)
}

// GetDistance returns the distance between ?from= and ?to=
func (h *HospitalHandler) GetDistance(c *gin.Context) {
	distance, err := h.geoService.Distance(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, distance)
}

// GetAllDistances returns the distance between every pair of hospitals
func (h *HospitalHandler) GetAllDistances(c *gin.Context) {
	utils.SuccessResponse(c, h.geoService.AllPairwiseDistances())
}
