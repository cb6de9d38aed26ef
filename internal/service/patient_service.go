package service

import (
	"hospital-reception-backend/internal/apperrors"
	"hospital-reception-backend/internal/models"
	"hospital-reception-backend/internal/repository"
)

type PatientService struct {
	patientRepo *repository.PatientRepository
}

func NewPatientService(patientRepo *repository.PatientRepository) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
	}
}

// All returns every patient in dataset order
func (s *PatientService) All() []models.Patient {
	return s.patientRepo.All()
}

// ByName returns the first patient whose name contains name
func (s *PatientService) ByName(name string) (*models.Patient, error) {
	name, err := requireQuery("patient name", name)
	if err != nil {
		return nil, err
	}
	if s.patientRepo.Empty() {
		return nil, apperrors.EmptyStore(s.patientRepo.Dataset())
	}

	patient, ok := s.patientRepo.First(func(p models.Patient) bool {
		return containsFold(p.PatientName, name)
	})
	if !ok {
		return nil, apperrors.NotFound("Patient", name)
	}
	return &patient, nil
}

// ByRoom returns the patient in a room, matched exactly
func (s *PatientService) ByRoom(room string) (*models.Patient, error) {
	room, err := requireQuery("room number", room)
	if err != nil {
		return nil, err
	}
	if s.patientRepo.Empty() {
		return nil, apperrors.EmptyStore(s.patientRepo.Dataset())
	}

	patient, ok := s.patientRepo.First(func(p models.Patient) bool {
		return p.RoomNumber == room
	})
	if !ok {
		return nil, apperrors.NotFoundf("No patient found in room '%s'", room)
	}
	return &patient, nil
}

// ByDisease returns the patients whose disease contains disease
func (s *PatientService) ByDisease(disease string) ([]models.Patient, error) {
	disease, err := requireQuery("disease", disease)
	if err != nil {
		return nil, err
	}
	return s.patientRepo.Matching(func(p models.Patient) bool {
		return containsFold(p.Disease, disease)
	}), nil
}

// ByDoctor returns the patients of one attending doctor, matched exactly by id
func (s *PatientService) ByDoctor(doctorID string) ([]models.Patient, error) {
	doctorID, err := requireQuery("doctor id", doctorID)
	if err != nil {
		return nil, err
	}
	return s.patientRepo.Matching(func(p models.Patient) bool {
		return p.AttendingDoctorID == doctorID
	}), nil
}

// ByFloor returns the patients whose floor contains floor
func (s *PatientService) ByFloor(floor string) ([]models.Patient, error) {
	floor, err := requireQuery("floor", floor)
	if err != nil {
		return nil, err
	}
	return s.patientRepo.Matching(func(p models.Patient) bool {
		return containsFold(p.Floor, floor)
	}), nil
}

// DirectionsTo resolves a patient by name and returns how to reach their room
func (s *PatientService) DirectionsTo(name string) (*models.PatientDirections, error) {
	patient, err := s.ByName(name)
	if err != nil {
		return nil, err
	}
	return &models.PatientDirections{
		PatientName: patient.PatientName,
		RoomNumber:  patient.RoomNumber,
		Floor:       patient.Floor,
		Building:    patient.Building,
		Directions:  patient.DirectionToRoom,
	}, nil
}
