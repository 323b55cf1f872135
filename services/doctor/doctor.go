package doctor

import (
	"context"
	"errors"
	"fmt"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"

	"go.uber.org/zap"
)

var ErrInvalidDoctorID = errors.New("invalid doctor id")

type DoctorService interface {
	AddDoctor(ctx context.Context, doctor models.Doctor) (*models.InsertResult, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) (*models.DeleteResult, error)
}

type DefaultDoctorService struct {
	Repo   doctorRepo.DoctorRepository
	Logger *zap.Logger
}

func NewDoctorService(repo doctorRepo.DoctorRepository, logger *zap.Logger) *DefaultDoctorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultDoctorService{Repo: repo, Logger: logger}
}

func (s *DefaultDoctorService) AddDoctor(ctx context.Context, doctor models.Doctor) (*models.InsertResult, error) {
	id, err := s.Repo.Create(ctx, &doctor)
	if err != nil {
		return nil, fmt.Errorf("failed to add doctor: %w", err)
	}
	s.Logger.Info("doctor added", zap.String("doctorID", id), zap.String("specialty", doctor.Specialty))
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *DefaultDoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	return doctors, nil
}

// DeleteDoctor removes a doctor. Deleting an unknown id is acknowledged with a zero count.
func (s *DefaultDoctorService) DeleteDoctor(ctx context.Context, id string) (*models.DeleteResult, error) {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrInvalidID) {
			return nil, ErrInvalidDoctorID
		}
		return nil, fmt.Errorf("failed to delete doctor: %w", err)
	}
	s.Logger.Info("doctor deleted", zap.String("doctorID", id), zap.Int64("deleted", n))
	return &models.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}
