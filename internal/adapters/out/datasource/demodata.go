package datasource

import (
	"time"

	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
	"github.com/suchimauz/clinic-calendar-engine/internal/utils"
)

// Демонстрационные данные, привязанные к неделе переданной даты

var DemoDoctors = []domain.Doctor{
	{ID: "doc-1", Name: "Dr. Sarah Chen", Specialty: "Cardiology"},
	{ID: "doc-2", Name: "Dr. Michael Rodriguez", Specialty: "Pediatrics"},
	{ID: "doc-3", Name: "Dr. Emily Johnson", Specialty: "Dermatology"},
}

var DemoPatients = []domain.Patient{
	{ID: "pat-1", Name: "Alice Smith"},
	{ID: "pat-2", Name: "Bob Johnson"},
	{ID: "pat-3", Name: "Charlie Brown"},
	{ID: "pat-4", Name: "Diana Prince"},
	{ID: "pat-5", Name: "Ethan Hunt"},
	{ID: "pat-6", Name: "Fiona Glenn"},
	{ID: "pat-7", Name: "George Harrison"},
	{ID: "pat-8", Name: "Hannah Scott"},
}

// DemoAppointments строит записи на прием в пределах недели, в которую
// входит reference. dayOffset отсчитывается от понедельника
func DemoAppointments(reference time.Time) []domain.Appointment {
	weekStart := utils.StartOfWeek(reference)

	at := func(dayOffset, hour, minute int) time.Time {
		day := weekStart.AddDate(0, 0, dayOffset)
		return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	}

	appointment := func(id, patientID, doctorID string, appointmentType domain.AppointmentType, startTime time.Time, durationMinutes int) domain.Appointment {
		return domain.Appointment{
			ID:        id,
			PatientID: patientID,
			DoctorID:  doctorID,
			Type:      appointmentType,
			StartTime: startTime,
			EndTime:   startTime.Add(time.Duration(durationMinutes) * time.Minute),
			Status:    domain.AppointmentStatusScheduled,
		}
	}

	return []domain.Appointment{
		// Dr. Sarah Chen (doc-1)
		appointment("apt-1", "pat-1", "doc-1", domain.AppointmentTypeCheckup, at(0, 9, 0), 30),
		appointment("apt-2", "pat-2", "doc-1", domain.AppointmentTypeConsultation, at(1, 10, 0), 60),
		appointment("apt-3", "pat-3", "doc-1", domain.AppointmentTypeFollowUp, at(3, 14, 30), 45),

		// Dr. Michael Rodriguez (doc-2)
		appointment("apt-5", "pat-5", "doc-2", domain.AppointmentTypeCheckup, at(0, 8, 0), 30),
		appointment("apt-6", "pat-6", "doc-2", domain.AppointmentTypeConsultation, at(2, 9, 0), 60),

		// Dr. Emily Johnson (doc-3)
		appointment("apt-7", "pat-7", "doc-3", domain.AppointmentTypeConsultation, at(1, 10, 0), 60),
		appointment("apt-8", "pat-8", "doc-3", domain.AppointmentTypeCheckup, at(4, 12, 0), 30),
	}
}
