package services

import (
	"context"
	"time"

	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
	"github.com/suchimauz/clinic-calendar-engine/internal/utils"
)

// AppointmentsByDoctorAndDate возвращает записи врача, начинающиеся
// в указанный календарный день. Порядок исходной коллекции сохраняется
func (s *CalendarService) AppointmentsByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) []domain.Appointment {
	result := make([]domain.Appointment, 0)

	for _, appointment := range s.dataSource.ListAppointments(ctx) {
		if appointment.DoctorID != doctorID {
			continue
		}

		if utils.SameDay(appointment.StartTime, date) {
			result = append(result, appointment)
		}
	}

	return result
}

// AppointmentsByDoctorAndDateRange возвращает записи врача, начинающиеся
// в диапазоне дней включительно. Границы нормализуются к 00:00:00.000 и
// 23:59:59.999 своих дней; отбор идет только по времени начала записи,
// время окончания не учитывается
func (s *CalendarService) AppointmentsByDoctorAndDateRange(ctx context.Context, doctorID string, startDate, endDate time.Time) []domain.Appointment {
	rangeStart := utils.StartCurrentDay(startDate)
	rangeEnd := utils.EndCurrentDay(endDate)

	result := make([]domain.Appointment, 0)

	for _, appointment := range s.dataSource.ListAppointments(ctx) {
		if appointment.DoctorID != doctorID {
			continue
		}

		if !appointment.StartTime.Before(rangeStart) && !appointment.StartTime.After(rangeEnd) {
			result = append(result, appointment)
		}
	}

	return result
}

// PopulateAppointments обогащает записи справочными данными врача и пациента.
// Ненайденный врач или пациент остается nil, это не ошибка.
// Исходные записи не изменяются
func (s *CalendarService) PopulateAppointments(ctx context.Context, appointments []domain.Appointment) []domain.PopulatedAppointment {
	populated := make([]domain.PopulatedAppointment, 0, len(appointments))

	for _, appointment := range appointments {
		doctor, _ := s.dataSource.GetDoctor(ctx, appointment.DoctorID)
		patient, _ := s.dataSource.GetPatient(ctx, appointment.PatientID)

		populated = append(populated, domain.PopulatedAppointment{
			Appointment: appointment,
			Doctor:      doctor,
			Patient:     patient,
			Meta:        appointment.Type.Meta(),
		})
	}

	return populated
}
