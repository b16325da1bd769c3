package usecase

import (
	"context"

	"maareeye-hospital/internal/converter"
	"maareeye-hospital/internal/delivery/dto"
	"maareeye-hospital/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type HospitalUsecase interface {
	CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	GetHospital(ctx context.Context, id int64) (*dto.HospitalResponse, error)
	GetAllHospitals(ctx context.Context) ([]dto.HospitalResponse, error)
	UpdateHospital(ctx context.Context, id int64, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error)
	DeleteHospital(ctx context.Context, id int64) error
}

type hospitalUsecase struct {
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
}

func NewHospitalUsecase(log *logrus.Logger, hospitalRepo repository.HospitalRepository) HospitalUsecase {
	return &hospitalUsecase{
		log:          log,
		hospitalRepo: hospitalRepo,
	}
}

func (u *hospitalUsecase) CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital := converter.CreateHospitalRequestToEntity(req)
	if err := u.hospitalRepo.Create(ctx, hospital); err != nil {
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) GetHospital(ctx context.Context, id int64) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) GetAllHospitals(ctx context.Context) ([]dto.HospitalResponse, error) {
	hospitals, err := u.hospitalRepo.List(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all hospitals: %+v", err)
		return nil, err
	}

	return converter.HospitalsToResponses(hospitals), nil
}

func (u *hospitalUsecase) UpdateHospital(ctx context.Context, id int64, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	if req.Name != nil {
		hospital.Name = *req.Name
	}
	if req.Location != nil {
		hospital.Location = *req.Location
	}
	if req.Phone != nil {
		hospital.Phone = *req.Phone
	}
	if req.Email != nil {
		hospital.Email = *req.Email
	}

	affected, err := u.hospitalRepo.Update(ctx, hospital)
	if err != nil {
		u.log.Warnf("Failed to update hospital: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}

// DeleteHospital removes the hospital; the database cascades to its doctors,
// patients and appointments.
func (u *hospitalUsecase) DeleteHospital(ctx context.Context, id int64) error {
	affected, err := u.hospitalRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete hospital: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrHospitalNotFound
	}

	return nil
}
