package schedule

import "time"

// Interval é meio-aberto: [Start, End). Toda a matemática de sobreposição
// do agendamento usa essa convenção, então intervalos que apenas se tocam
// na borda não conflitam.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (iv Interval) Valid() bool {
	return iv.Start.Before(iv.End)
}

func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// FreeSlots subtrai os intervalos ocupados (ordenados por início) da janela
// de expediente e devolve os buracos livres maximais. Bookings sobrepostos
// ou aninhados são absorvidos pelo avanço com max(cursor, fim).
func FreeSlots(window Interval, busy []Interval) []Interval {
	free := []Interval{}
	if !window.Valid() {
		return free
	}

	cursor := window.Start
	for _, b := range busy {
		if cursor.Before(b.Start) {
			end := b.Start
			if end.After(window.End) {
				end = window.End
			}
			if cursor.Before(end) {
				free = append(free, Interval{Start: cursor, End: end})
			}
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
		if !cursor.Before(window.End) {
			return free
		}
	}

	if cursor.Before(window.End) {
		free = append(free, Interval{Start: cursor, End: window.End})
	}

	return free
}
