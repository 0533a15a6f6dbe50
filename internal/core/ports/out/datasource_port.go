package out

import (
	"context"

	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
)

// DataSourcePort - источник справочных данных и записей на прием.
// Данные читаются как неизменяемый снимок, отсутствие записи - не ошибка
type DataSourcePort interface {
	ListDoctors(ctx context.Context) []domain.Doctor
	GetDoctor(ctx context.Context, doctorID string) (*domain.Doctor, bool)

	ListPatients(ctx context.Context) []domain.Patient
	GetPatient(ctx context.Context, patientID string) (*domain.Patient, bool)

	ListAppointments(ctx context.Context) []domain.Appointment
}
