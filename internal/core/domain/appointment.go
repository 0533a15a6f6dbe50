package domain

import "time"

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type AppointmentType string

const (
	AppointmentTypeCheckup      AppointmentType = "checkup"
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeFollowUp     AppointmentType = "followUp"
	AppointmentTypeProcedure    AppointmentType = "procedure"
)

// AppointmentTypeMeta - отображаемые метаданные типа приема
type AppointmentTypeMeta struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// AppointmentTypeMetaMap - цвета и подписи для каждого типа приема
var AppointmentTypeMetaMap = map[AppointmentType]AppointmentTypeMeta{
	AppointmentTypeCheckup:      {Color: "#007bff", Label: "Check-up"},
	AppointmentTypeConsultation: {Color: "#28a745", Label: "Consultation"},
	AppointmentTypeFollowUp:     {Color: "#ffc107", Label: "Follow-up"},
	AppointmentTypeProcedure:    {Color: "#dc3545", Label: "Procedure"},
}

// AppointmentTypeMetaDefault - метаданные для неизвестного типа приема
var AppointmentTypeMetaDefault = AppointmentTypeMeta{Color: "#888", Label: "Appointment"}

func (t AppointmentType) Meta() AppointmentTypeMeta {
	if meta, ok := AppointmentTypeMetaMap[t]; ok {
		return meta
	}
	return AppointmentTypeMetaDefault
}

// Appointment - запись на прием, EndTime всегда позже StartTime
type Appointment struct {
	ID        string            `json:"id"`
	DoctorID  string            `json:"doctorId"`
	PatientID string            `json:"patientId"`
	Type      AppointmentType   `json:"type"`
	StartTime time.Time         `json:"startTime"`
	EndTime   time.Time         `json:"endTime"`
	Status    AppointmentStatus `json:"status"`
}

// PopulatedAppointment - запись на прием, обогащенная справочными данными
// врача и пациента. Это производное представление, исходная запись не меняется
type PopulatedAppointment struct {
	Appointment
	Doctor  *Doctor             `json:"doctor,omitempty"`
	Patient *Patient            `json:"patient,omitempty"`
	Meta    AppointmentTypeMeta `json:"meta"`
}
