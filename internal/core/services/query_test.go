package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/suchimauz/clinic-calendar-engine/internal/adapters/out/datasource"
	"github.com/suchimauz/clinic-calendar-engine/internal/adapters/out/logger"
	"github.com/suchimauz/clinic-calendar-engine/internal/adapters/out/registry"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
)

func TestAppointmentsByDoctorAndDate(t *testing.T) {
	service := newTestService(t, testConfig(), nil)
	ctx := context.Background()

	appointments := service.AppointmentsByDoctorAndDate(ctx, "doc-1", testMonday)

	require.Len(t, appointments, 1)
	require.Equal(t, "apt-1", appointments[0].ID)

	// Чужие записи того же дня не попадают в выборку
	for _, appointment := range appointments {
		require.Equal(t, "doc-1", appointment.DoctorID)
	}

	// Время в пределах дня не влияет на выборку
	evening := testMonday.Add(19 * time.Hour)
	require.Equal(t, appointments, service.AppointmentsByDoctorAndDate(ctx, "doc-1", evening))
}

func TestAppointmentsByDoctorAndDate_Empty(t *testing.T) {
	service := newTestService(t, testConfig(), nil)

	// Среда у doc-1 пустая
	appointments := service.AppointmentsByDoctorAndDate(context.Background(), "doc-1", testMonday.AddDate(0, 0, 2))
	require.Empty(t, appointments)
}

func TestAppointmentsByDoctorAndDateRange(t *testing.T) {
	service := newTestService(t, testConfig(), nil)
	ctx := context.Background()

	weekEnd := testMonday.AddDate(0, 0, 6)

	appointments := service.AppointmentsByDoctorAndDateRange(ctx, "doc-1", testMonday, weekEnd)

	// Порядок исходной коллекции сохраняется
	ids := make([]string, 0, len(appointments))
	for _, appointment := range appointments {
		ids = append(ids, appointment.ID)
	}
	require.Equal(t, []string{"apt-1", "apt-2", "apt-3"}, ids)
}

func TestAppointmentsByDoctorAndDateRange_SingleDayEquivalence(t *testing.T) {
	service := newTestService(t, testConfig(), nil)
	ctx := context.Background()

	// Диапазон из одного дня эквивалентен выборке по дню
	byDate := service.AppointmentsByDoctorAndDate(ctx, "doc-1", testMonday)
	byRange := service.AppointmentsByDoctorAndDateRange(ctx, "doc-1", testMonday, testMonday)

	require.Equal(t, byDate, byRange)
}

func TestAppointmentsByDoctorAndDateRange_InclusiveBounds(t *testing.T) {
	nop := logger.NewNopLogger()

	// Запись перед самой полуночью последнего дня включается,
	// запись в полночь следующего дня - нет
	lateNight := domain.Appointment{
		ID:        "apt-late",
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Type:      domain.AppointmentTypeProcedure,
		StartTime: testMonday.Add(23*time.Hour + 59*time.Minute),
		EndTime:   testMonday.Add(24*time.Hour + 30*time.Minute),
		Status:    domain.AppointmentStatusScheduled,
	}
	nextMidnight := domain.Appointment{
		ID:        "apt-next",
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Type:      domain.AppointmentTypeCheckup,
		StartTime: testMonday.AddDate(0, 0, 1),
		EndTime:   testMonday.AddDate(0, 0, 1).Add(30 * time.Minute),
		Status:    domain.AppointmentStatusScheduled,
	}

	dataSource := datasource.NewMemoryAdapter(
		datasource.DemoDoctors,
		datasource.DemoPatients,
		[]domain.Appointment{lateNight, nextMidnight},
		nop,
	)
	service := NewCalendarService(dataSource, registry.NewScheduleRegistryAdapter(nop), nil, testConfig(), nop)

	appointments := service.AppointmentsByDoctorAndDateRange(context.Background(), "doc-1", testMonday, testMonday)

	require.Len(t, appointments, 1)
	require.Equal(t, "apt-late", appointments[0].ID)

	// Запись у границы полуночи относится к дню своего начала
	byStartDay := service.AppointmentsByDoctorAndDate(context.Background(), "doc-1", testMonday)
	require.Equal(t, appointments, byStartDay)
}

func TestPopulateAppointments(t *testing.T) {
	service := newTestService(t, testConfig(), nil)
	ctx := context.Background()

	appointments := service.AppointmentsByDoctorAndDate(ctx, "doc-1", testMonday)
	before := make([]domain.Appointment, len(appointments))
	copy(before, appointments)

	populated := service.PopulateAppointments(ctx, appointments)

	require.Len(t, populated, len(appointments))
	for i, appointment := range populated {
		require.Equal(t, appointments[i], appointment.Appointment)
		require.NotNil(t, appointment.Doctor)
		require.Equal(t, appointment.DoctorID, appointment.Doctor.ID)
		require.NotNil(t, appointment.Patient)
		require.Equal(t, appointment.PatientID, appointment.Patient.ID)
	}

	// Исходные записи не изменяются
	require.Equal(t, before, appointments)
}

func TestPopulateAppointments_UnmatchedReferences(t *testing.T) {
	service := newTestService(t, testConfig(), nil)

	orphan := domain.Appointment{
		ID:        "apt-orphan",
		DoctorID:  "doc-404",
		PatientID: "pat-404",
		Type:      "surgery",
		StartTime: testMonday.Add(9 * time.Hour),
		EndTime:   testMonday.Add(10 * time.Hour),
		Status:    domain.AppointmentStatusScheduled,
	}

	populated := service.PopulateAppointments(context.Background(), []domain.Appointment{orphan})

	// Ненайденные врач и пациент - не ошибка, поля остаются nil
	require.Len(t, populated, 1)
	require.Nil(t, populated[0].Doctor)
	require.Nil(t, populated[0].Patient)

	// Неизвестный тип приема получает метаданные по умолчанию
	require.Equal(t, domain.AppointmentTypeMetaDefault, populated[0].Meta)
}
