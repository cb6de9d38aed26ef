package tools

import (
	"context"

	"hospital-reception-backend/internal/repository"
	"hospital-reception-backend/internal/service"

	"go.uber.org/zap"
)

// Services are the lookup services the catalogue is built over.
type Services struct {
	Hospital   *service.HospitalService
	Department *service.DepartmentService
	Doctor     *service.DoctorService
	Patient    *service.PatientService
	Geo        *service.GeoService
	Metric     *service.MetricService
}

// NewServices wires the lookup services over loaded repositories.
func NewServices(
	metricRepo *repository.HospitalMetricRepository,
	departmentRepo *repository.DepartmentRepository,
	doctorRepo *repository.DoctorRepository,
	patientRepo *repository.PatientRepository,
	distanceCacheSize int,
	logger *zap.Logger,
) (Services, error) {
	geoService, err := service.NewGeoService(metricRepo, distanceCacheSize, logger)
	if err != nil {
		return Services{}, err
	}
	return Services{
		Hospital:   service.NewHospitalService(metricRepo),
		Department: service.NewDepartmentService(departmentRepo),
		Doctor:     service.NewDoctorService(doctorRepo),
		Patient:    service.NewPatientService(patientRepo),
		Geo:        geoService,
		Metric:     service.NewMetricService(metricRepo),
	}, nil
}

// Tool groups, one per reception sub-agent.
const (
	GroupHospital   = "hospital_data"
	GroupDepartment = "department"
	GroupDoctor     = "doctor"
	GroupPatient    = "patient"
)

func required(name, description string) Param {
	return Param{Name: name, Description: description, Kind: KindText, Required: true}
}

func listResult(key string, items any, count int) map[string]any {
	return map[string]any{key: items, "count": count}
}

func catalogue(svc Services, r *Registry) []*Tool {
	return []*Tool{
		// hospital time series
		{
			Name: "get_hospital_count", Group: GroupHospital,
			Description: "Number of distinct hospitals in the dataset",
			run: func(context.Context, Args) (any, error) {
				return map[string]any{"count": svc.Hospital.Count()}, nil
			},
		},
		{
			Name: "get_hospital_names", Group: GroupHospital,
			Description: "Every hospital with its id and location",
			run: func(context.Context, Args) (any, error) {
				names := svc.Hospital.Names()
				return listResult("hospitals", names, len(names)), nil
			},
		},
		{
			Name: "get_hospital_details_by_date", Group: GroupHospital,
			Description: "All metrics of a hospital on one date",
			Params: []Param{
				required("hospital_name", "Exact hospital name"),
				{Name: "date", Description: "Date, e.g. 2024-10-20", Kind: KindDate, Required: true},
			},
			run: func(_ context.Context, a Args) (any, error) {
				return svc.Hospital.DetailsByDate(a.Get("hospital_name"), a.Get("date"))
			},
		},
		{
			Name: "get_column_value", Group: GroupHospital,
			Description: "One metric of a hospital on a date, or its full series when date is omitted",
			Params: []Param{
				required("hospital_name", "Exact hospital name"),
				required("column_name", "Column from get_column_names"),
				{Name: "date", Description: "Optional date", Kind: KindDate},
			},
			run: func(_ context.Context, a Args) (any, error) {
				return svc.Metric.ColumnValue(a.Get("hospital_name"), a.Get("column_name"), a.Get("date"))
			},
		},
		{
			Name: "get_column_names", Group: GroupHospital,
			Description: "Columns available in the hospital dataset",
			run: func(context.Context, Args) (any, error) {
				columns := svc.Metric.ColumnNames()
				return listResult("columns", columns, len(columns)), nil
			},
		},
		{
			Name: "get_hospital_location", Group: GroupHospital,
			Description: "Coordinates and place of a hospital",
			Params: []Param{required("hospital_name", "Exact hospital name")},
			run: func(_ context.Context, a Args) (any, error) {
				return svc.Geo.Location(a.Get("hospital_name"))
			},
		},
		{
			Name: "get_data_date_range", Group: GroupHospital,
			Description: "First and last date covered by the dataset",
			run: func(context.Context, Args) (any, error) {
				return svc.Hospital.DateRange()
			},
		},
		{
			Name: "calculate_distance_between_hospitals", Group: GroupHospital,
			Description: "Great-circle distance in km between two hospitals",
			Params: []Param{
				required("hospital_name1", "Exact name of the first hospital"),
				required("hospital_name2", "Exact name of the second hospital"),
			},
			run: func(_ context.Context, a Args) (any, error) {
				return svc.Geo.Distance(a.Get("hospital_name1"), a.Get("hospital_name2"))
			},
		},
		{
			Name: "get_all_hospital_distances", Group: GroupHospital,
			Description: "Distance between every pair of hospitals",
			run: func(context.Context, Args) (any, error) {
				return svc.Geo.AllPairwiseDistances(), nil
			},
		},

		// departments
		{
			Name: "get_all_departments", Group: GroupDepartment,
			Description: "Every department with floor, building and extension",
			run: func(context.Context, Args) (any, error) {
				all := svc.Department.All()
				return listResult("departments", all, len(all)), nil
			},
		},
		{
			Name: "find_department", Group: GroupDepartment,
			Description: "First department whose name contains the query",
			Params: []Param{required("department_name", "Department name or part of it")},
			run: func(_ context.Context, a Args) (any, error) {
				return svc.Department.ByName(a.Get("department_name"))
			},
		},
		{
			Name: "get_departments_on_floor", Group: GroupDepartment,
			Description: "Departments on a floor",
			Params: []Param{required("floor", "Floor")},
			run: func(_ context.Context, a Args) (any, error) {
				found, err := svc.Department.ByFloor(a.Get("floor"))
				if err != nil {
					return nil, err
				}
				return listResult("departments", found, len(found)), nil
			},
		},
		{
			Name: "get_departments_in_building", Group: GroupDepartment,
			Description: "Departments in a building",
			Params: []Param{required("building", "Building name or part of it")},
			run: func(_ context.Context, a Args) (any, error) {
				found, err := svc.Department.ByBuilding(a.Get("building"))
				if err != nil {
					return nil, err
				}
				return listResult("departments", found, len(found)), nil
			},
		},

		// doctors
		{
			Name: "get_all_doctors", Group: GroupDoctor,
			Description: "Every doctor with specialization and availability",
			run: func(context.Context, Args) (any, error) {
				all := svc.Doctor.All()
				return listResult("doctors", all, len(all)), nil
			},
		},
		{
			Name: "find_doctor", Group: GroupDoctor,
			Description: "First doctor whose name contains the query",
			Params: []Param{required("doctor_name", "Doctor name or part of it")},
			run: func(_ context.Context, a Args) (any, error) {
				return svc.Doctor.ByName(a.Get("doctor_name"))
			},
		},
		{
			Name: "find_doctors_by_specialization", Group: GroupDoctor,
			Description: "Doctors whose specialization contains the query",
			Params: []Param{required("specialization", "Specialization, e.g. Cardiologist")},
			run: func(_ context.Context, a Args) (any, error) {
				found, err := svc.Doctor.BySpecialization(a.Get("specialization"))
				if err != nil {
					return nil, err
				}
				return listResult("doctors", found, len(found)), nil
			},
		},
		{
			Name: "find_doctors_by_department", Group: GroupDoctor,
			Description: "Doctors of a department, by exact department id",
			Params: []Param{required("department_id", "Department id, e.g. DEP001")},
			run: func(_ context.Context, a Args) (any, error) {
				found, err := svc.Doctor.ByDepartment(a.Get("department_id"))
				if err != nil {
					return nil, err
				}
				return listResult("doctors", found, len(found)), nil
			},
		},
		{
			Name: "get_available_doctors_today", Group: GroupDoctor,
			Description: "Doctors available on a weekday, today when day is omitted",
			Params: []Param{{Name: "day", Description: "Weekday name, e.g. Monday or Tue", Kind: KindDay}},
			run: func(_ context.Context, a Args) (any, error) {
				day := a.Get("day")
				if day == "" {
					day = r.now().Weekday().String()
				}
				found, err := svc.Doctor.AvailableOn(day)
				if err != nil {
					return nil, err
				}
				result := listResult("doctors", found, len(found))
				result["day"] = day
				return result, nil
			},
		},

		// patients
		{
			Name: "get_all_patients", Group: GroupPatient,
			Description: "Every admitted patient",
			run: func(context.Context, Args) (any, error) {
				all := svc.Patient.All()
				return listResult("patients", all, len(all)), nil
			},
		},
		{
			Name: "find_patient", Group: GroupPatient,
			Description: "First patient whose name contains the query",
			Params: []Param{required("patient_name", "Patient name or part of it")},
			run: func(_ context.Context, a Args) (any, error) {
				return svc.Patient.ByName(a.Get("patient_name"))
			},
		},
		{
			Name: "find_patient_by_room", Group: GroupPatient,
			Description: "Patient in a room, by exact room number",
			Params: []Param{required("room_number", "Room number, e.g. 301")},
			run: func(_ context.Context, a Args) (any, error) {
				return svc.Patient.ByRoom(a.Get("room_number"))
			},
		},
		{
			Name: "get_directions_to_patient", Group: GroupPatient,
			Description: "How to reach a patient's room",
			Params: []Param{required("patient_name", "Patient name or part of it")},
			run: func(_ context.Context, a Args) (any, error) {
				return svc.Patient.DirectionsTo(a.Get("patient_name"))
			},
		},
		{
			Name: "find_patients_by_disease", Group: GroupPatient,
			Description: "Patients whose disease contains the query",
			Params: []Param{required("disease", "Disease or condition")},
			run: func(_ context.Context, a Args) (any, error) {
				found, err := svc.Patient.ByDisease(a.Get("disease"))
				if err != nil {
					return nil, err
				}
				return listResult("patients", found, len(found)), nil
			},
		},
		{
			Name: "find_patients_by_doctor", Group: GroupPatient,
			Description: "Patients of an attending doctor, by exact doctor id",
			Params: []Param{required("doctor_id", "Doctor id, e.g. D001")},
			run: func(_ context.Context, a Args) (any, error) {
				found, err := svc.Patient.ByDoctor(a.Get("doctor_id"))
				if err != nil {
					return nil, err
				}
				return listResult("patients", found, len(found)), nil
			},
		},
		{
			Name: "get_patients_on_floor", Group: GroupPatient,
			Description: "Patients on a floor",
			Params: []Param{required("floor", "Floor")},
			run: func(_ context.Context, a Args) (any, error) {
				found, err := svc.Patient.ByFloor(a.Get("floor"))
				if err != nil {
					return nil, err
				}
				return listResult("patients", found, len(found)), nil
			},
		},
	}
}
