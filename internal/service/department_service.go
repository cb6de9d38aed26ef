package service

import (
	"hospital-reception-backend/internal/apperrors"
	"hospital-reception-backend/internal/models"
	"hospital-reception-backend/internal/repository"
)

type DepartmentService struct {
	departmentRepo *repository.DepartmentRepository
}

func NewDepartmentService(departmentRepo *repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
	}
}

// All returns every department in dataset order
func (s *DepartmentService) All() []models.Department {
	return s.departmentRepo.All()
}

// ByName returns the first department whose name contains name
func (s *DepartmentService) ByName(name string) (*models.Department, error) {
	name, err := requireQuery("department name", name)
	if err != nil {
		return nil, err
	}
	if s.departmentRepo.Empty() {
		return nil, apperrors.EmptyStore(s.departmentRepo.Dataset())
	}

	dept, ok := s.departmentRepo.First(func(d models.Department) bool {
		return containsFold(d.DepartmentName, name)
	})
	if !ok {
		return nil, apperrors.NotFound("Department", name)
	}
	return &dept, nil
}

// ByFloor returns the departments whose floor contains floor
func (s *DepartmentService) ByFloor(floor string) ([]models.Department, error) {
	floor, err := requireQuery("floor", floor)
	if err != nil {
		return nil, err
	}
	return s.departmentRepo.Matching(func(d models.Department) bool {
		return containsFold(d.Floor, floor)
	}), nil
}

// ByBuilding returns the departments whose building contains building
func (s *DepartmentService) ByBuilding(building string) ([]models.Department, error) {
	building, err := requireQuery("building", building)
	if err != nil {
		return nil, err
	}
	return s.departmentRepo.Matching(func(d models.Department) bool {
		return containsFold(d.Building, building)
	}), nil
}
