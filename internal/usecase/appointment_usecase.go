package usecase

import (
	"context"

	"maareeye-hospital/internal/converter"
	"maareeye-hospital/internal/delivery/dto"
	"maareeye-hospital/internal/domain/entity"
	"maareeye-hospital/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id int64) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	hospitalRepo    repository.HospitalRepository
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	hospitalRepo repository.HospitalRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		hospitalRepo:    hospitalRepo,
	}
}

// checkReferences validates the three foreign keys of an appointment in
// payload order: doctor, patient, hospital.
func (u *appointmentUsecase) checkReferences(ctx context.Context, appointment *entity.Appointment) error {
	if err := checkReference(ctx, u.doctorRepo, "doctor_id", appointment.DoctorID); err != nil {
		return err
	}
	if err := checkReference(ctx, u.patientRepo, "patient_id", appointment.PatientID); err != nil {
		return err
	}
	return checkReference(ctx, u.hospitalRepo, "hospital_id", appointment.HospitalID)
}

// violatedReference names the key that stopped resolving between the checks
// and the write, e.g. a patient deleted concurrently.
func (u *appointmentUsecase) violatedReference(ctx context.Context, appointment *entity.Appointment) error {
	if err := u.checkReferences(ctx, appointment); err != nil {
		return err
	}
	return &ReferenceError{Field: "doctor_id"}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment := converter.CreateAppointmentRequestToEntity(req)

	if err := u.checkReferences(ctx, appointment); err != nil {
		u.log.Warnf("Failed to validate appointment references: %+v", err)
		return nil, err
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		if isForeignKeyError(err) {
			return nil, u.violatedReference(ctx, appointment)
		}
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.List(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.DoctorID != nil && *req.DoctorID != appointment.DoctorID {
		if err := checkReference(ctx, u.doctorRepo, "doctor_id", *req.DoctorID); err != nil {
			u.log.Warnf("Failed to validate doctor: %+v", err)
			return nil, err
		}
		appointment.DoctorID = *req.DoctorID
	}
	if req.PatientID != nil && *req.PatientID != appointment.PatientID {
		if err := checkReference(ctx, u.patientRepo, "patient_id", *req.PatientID); err != nil {
			u.log.Warnf("Failed to validate patient: %+v", err)
			return nil, err
		}
		appointment.PatientID = *req.PatientID
	}
	if req.HospitalID != nil && *req.HospitalID != appointment.HospitalID {
		if err := checkReference(ctx, u.hospitalRepo, "hospital_id", *req.HospitalID); err != nil {
			u.log.Warnf("Failed to validate hospital: %+v", err)
			return nil, err
		}
		appointment.HospitalID = *req.HospitalID
	}
	if req.Date != nil {
		appointment.Date = req.Date.UTC()
	}
	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}
	if req.Status != nil {
		appointment.Status = *req.Status
	}

	affected, err := u.appointmentRepo.Update(ctx, appointment)
	if err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		if isForeignKeyError(err) {
			return nil, u.violatedReference(ctx, appointment)
		}
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int64) error {
	affected, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
