package component

// WaveTimer — часы волн и курсор по расписанию.
// Курсор только растёт; сбрасывается лишь вместе с часами при новой игре.
type WaveTimer struct {
	Elapsed float64
	Cursor  int
}
