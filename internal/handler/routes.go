package handler

import (
	"hospital-reception-backend/internal/tools"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the lookup API on api
func RegisterRoutes(api *gin.RouterGroup, svc tools.Services, registry *tools.Registry) {
	hospitalHandler := NewHospitalHandler(svc.Hospital, svc.Geo, svc.Metric)
	departmentHandler := NewDepartmentHandler(svc.Department)
	doctorHandler := NewDoctorHandler(svc.Doctor)
	patientHandler := NewPatientHandler(svc.Patient)
	toolHandler := NewToolHandler(registry)

	hospitals := api.Group("/hospitals")
	{
		hospitals.GET("", hospitalHandler.GetAllHospitals)
		hospitals.GET("/count", hospitalHandler.GetHospitalCount)
		hospitals.GET("/date-range", hospitalHandler.GetDateRange)
		hospitals.GET("/columns", hospitalHandler.GetColumnNames)
		hospitals.GET("/distances", hospitalHandler.GetAllDistances)
		hospitals.GET("/distance", hospitalHandler.GetDistance) // ?from=&to=
		hospitals.GET("/:name/details", hospitalHandler.GetDetails)
		hospitals.GET("/:name/location", hospitalHandler.GetLocation)
		hospitals.GET("/:name/columns/:column", hospitalHandler.GetColumnValue)
	}

	departments := api.Group("/departments")
	{
		departments.GET("", departmentHandler.GetDepartments)
		departments.GET("/:name", departmentHandler.GetDepartment)
	}

	doctors := api.Group("/doctors")
	{
		doctors.GET("", doctorHandler.GetDoctors)
		doctors.GET("/:name", doctorHandler.GetDoctor)
	}

	patients := api.Group("/patients")
	{
		patients.GET("", patientHandler.GetPatients)
		patients.GET("/:name", patientHandler.GetPatient)
		patients.GET("/:name/directions", patientHandler.GetDirections)
	}
	api.GET("/rooms/:room/patient", patientHandler.GetPatientInRoom)

	toolRoutes := api.Group("/tools")
	{
		toolRoutes.GET("", toolHandler.GetTools)
		toolRoutes.POST("/:name", toolHandler.InvokeTool)
	}
}
