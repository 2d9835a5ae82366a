package schedule

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeutil"
)

// ShiftWindow combina um dia UTC com os horários do turno e devolve a
// janela de trabalho [workStart, workEnd) daquele dia.
func ShiftWindow(ws *models.WorkShift, day time.Time) (Interval, error) {
	start, err := timeutil.AtHourMinute(day, ws.StartTime)
	if err != nil {
		return Interval{}, err
	}
	end, err := timeutil.AtHourMinute(day, ws.EndTime)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}
