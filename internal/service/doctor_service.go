package service

import (
	"hospital-reception-backend/internal/apperrors"
	"hospital-reception-backend/internal/models"
	"hospital-reception-backend/internal/repository"
)

type DoctorService struct {
	doctorRepo *repository.DoctorRepository
}

func NewDoctorService(doctorRepo *repository.DoctorRepository) *DoctorService {
	return &DoctorService{
		doctorRepo: doctorRepo,
	}
}

// All returns every doctor in dataset order
func (s *DoctorService) All() []models.Doctor {
	return s.doctorRepo.All()
}

// ByName returns the first doctor whose name contains name
func (s *DoctorService) ByName(name string) (*models.Doctor, error) {
	name, err := requireQuery("doctor name", name)
	if err != nil {
		return nil, err
	}
	if s.doctorRepo.Empty() {
		return nil, apperrors.EmptyStore(s.doctorRepo.Dataset())
	}

	doctor, ok := s.doctorRepo.First(func(d models.Doctor) bool {
		return containsFold(d.DoctorName, name)
	})
	if !ok {
		return nil, apperrors.NotFound("Doctor", name)
	}
	return &doctor, nil
}

// BySpecialization returns the doctors whose specialization contains specialization
func (s *DoctorService) BySpecialization(specialization string) ([]models.Doctor, error) {
	specialization, err := requireQuery("specialization", specialization)
	if err != nil {
		return nil, err
	}
	return s.doctorRepo.Matching(func(d models.Doctor) bool {
		return containsFold(d.Specialization, specialization)
	}), nil
}

// ByDepartment returns the doctors of one department, matched exactly by id
func (s *DoctorService) ByDepartment(departmentID string) ([]models.Doctor, error) {
	departmentID, err := requireQuery("department id", departmentID)
	if err != nil {
		return nil, err
	}
	return s.doctorRepo.Matching(func(d models.Doctor) bool {
		return d.DepartmentID == departmentID
	}), nil
}

// AvailableOn returns the doctors whose weekly availability includes day.
// day must name a weekday; abbreviations such as "Tue" are accepted.
func (s *DoctorService) AvailableOn(day string) ([]models.Doctor, error) {
	day, err := requireQuery("day", day)
	if err != nil {
		return nil, err
	}
	weekday, ok := models.ParseWeekday(day)
	if !ok {
		return nil, apperrors.InvalidInput("'%s' is not a day of the week", day)
	}
	return s.doctorRepo.Matching(func(d models.Doctor) bool {
		return d.AvailableWeekdays.Has(weekday)
	}), nil
}
