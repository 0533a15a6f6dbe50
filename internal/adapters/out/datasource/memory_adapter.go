package datasource

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/ports/out"
)

// MemoryAdapter - источник данных в памяти. Чтение отдает снимки,
// поэтому результаты запросов безопасно использовать без блокировок
type MemoryAdapter struct {
	mu           sync.RWMutex
	doctors      []domain.Doctor
	patients     []domain.Patient
	appointments []domain.Appointment
	logger       out.LoggerPort
}

func NewMemoryAdapter(
	doctors []domain.Doctor,
	patients []domain.Patient,
	appointments []domain.Appointment,
	logger out.LoggerPort,
) *MemoryAdapter {
	adapter := &MemoryAdapter{
		doctors:      make([]domain.Doctor, len(doctors)),
		patients:     make([]domain.Patient, len(patients)),
		appointments: make([]domain.Appointment, len(appointments)),
		logger:       logger.WithModule("MemoryAdapter"),
	}

	copy(adapter.doctors, doctors)
	copy(adapter.patients, patients)
	copy(adapter.appointments, appointments)

	adapter.logger.Info("datasource.loaded", out.LogFields{
		"doctorsCount":      len(doctors),
		"patientsCount":     len(patients),
		"appointmentsCount": len(appointments),
	})

	return adapter
}

func (a *MemoryAdapter) ListDoctors(ctx context.Context) []domain.Doctor {
	a.mu.RLock()
	defer a.mu.RUnlock()

	doctors := make([]domain.Doctor, len(a.doctors))
	copy(doctors, a.doctors)

	return doctors
}

func (a *MemoryAdapter) GetDoctor(ctx context.Context, doctorID string) (*domain.Doctor, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, doctor := range a.doctors {
		if doctor.ID == doctorID {
			found := doctor
			return &found, true
		}
	}

	return nil, false
}

func (a *MemoryAdapter) ListPatients(ctx context.Context) []domain.Patient {
	a.mu.RLock()
	defer a.mu.RUnlock()

	patients := make([]domain.Patient, len(a.patients))
	copy(patients, a.patients)

	return patients
}

func (a *MemoryAdapter) GetPatient(ctx context.Context, patientID string) (*domain.Patient, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, patient := range a.patients {
		if patient.ID == patientID {
			found := patient
			return &found, true
		}
	}

	return nil, false
}

func (a *MemoryAdapter) ListAppointments(ctx context.Context) []domain.Appointment {
	a.mu.RLock()
	defer a.mu.RUnlock()

	appointments := make([]domain.Appointment, len(a.appointments))
	copy(appointments, a.appointments)

	return appointments
}

// AddAppointment добавляет запись в снимок. Если идентификатор не задан,
// генерируется новый. Возвращает сохраненную запись
func (a *MemoryAdapter) AddAppointment(ctx context.Context, appointment domain.Appointment) domain.Appointment {
	a.mu.Lock()
	defer a.mu.Unlock()

	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}

	a.appointments = append(a.appointments, appointment)

	a.logger.Debug("datasource.appointment.added", out.LogFields{
		"appointmentId": appointment.ID,
		"doctorId":      appointment.DoctorID,
	})

	return appointment
}
