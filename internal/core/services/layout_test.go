package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
)

func testAppointment(startTime time.Time, durationMinutes int) domain.Appointment {
	return domain.Appointment{
		ID:        "apt-test",
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Type:      domain.AppointmentTypeCheckup,
		StartTime: startTime,
		EndTime:   startTime.Add(time.Duration(durationMinutes) * time.Minute),
		Status:    domain.AppointmentStatusScheduled,
	}
}

func TestPosition(t *testing.T) {
	service := newTestService(t, testConfig(), nil)
	slots := service.GenerateSlots(testMonday)

	// 09:00 при сетке с 08:00 - третий слот, 45 минут занимают два слота
	appointment := testAppointment(testMonday.Add(9*time.Hour), 45)

	layout := service.Position(appointment, slots)
	require.NotNil(t, layout)
	require.Equal(t, 2, layout.StartSlotIndex)
	require.Equal(t, 2, layout.SlotsSpanned)
	require.Equal(t, 120, layout.TopOffsetPx)
	require.Equal(t, 120, layout.HeightPx)
}

func TestPosition_ExactDuration(t *testing.T) {
	service := newTestService(t, testConfig(), nil)
	slots := service.GenerateSlots(testMonday)

	appointment := testAppointment(testMonday.Add(8*time.Hour), 30)

	layout := service.Position(appointment, slots)
	require.NotNil(t, layout)
	require.Equal(t, 0, layout.StartSlotIndex)
	require.Equal(t, 1, layout.SlotsSpanned)
	require.Equal(t, 0, layout.TopOffsetPx)
	require.Equal(t, 60, layout.HeightPx)
}

func TestPosition_NotAlignedToGrid(t *testing.T) {
	service := newTestService(t, testConfig(), nil)
	slots := service.GenerateSlots(testMonday)

	// Начало в 09:10 не совпадает ни с одним началом слота -
	// запись не позиционируется, привязки к ближайшему слоту нет
	appointment := testAppointment(testMonday.Add(9*time.Hour+10*time.Minute), 30)

	require.Nil(t, service.Position(appointment, slots))
}

func TestPosition_OutsideWindow(t *testing.T) {
	service := newTestService(t, testConfig(), nil)
	slots := service.GenerateSlots(testMonday)

	// 07:00 раньше начала сетки
	appointment := testAppointment(testMonday.Add(7*time.Hour), 30)

	require.Nil(t, service.Position(appointment, slots))
}

func TestPosition_ZeroDuration(t *testing.T) {
	service := newTestService(t, testConfig(), nil)
	slots := service.GenerateSlots(testMonday)

	// Запись нулевой длительности дает блок нулевой высоты
	appointment := testAppointment(testMonday.Add(10*time.Hour), 0)

	layout := service.Position(appointment, slots)
	require.NotNil(t, layout)
	require.Equal(t, 4, layout.StartSlotIndex)
	require.Equal(t, 0, layout.SlotsSpanned)
	require.Equal(t, 0, layout.HeightPx)
	require.Equal(t, 240, layout.TopOffsetPx)
}

func TestPosition_SubSlotDuration(t *testing.T) {
	service := newTestService(t, testConfig(), nil)
	slots := service.GenerateSlots(testMonday)

	// Запись короче слота округляется вверх до одного слота
	appointment := testAppointment(testMonday.Add(10*time.Hour), 10)

	layout := service.Position(appointment, slots)
	require.NotNil(t, layout)
	require.Equal(t, 1, layout.SlotsSpanned)
	require.Equal(t, 60, layout.HeightPx)
}
