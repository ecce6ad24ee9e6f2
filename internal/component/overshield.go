package component

// Overshield — усиление щита; уровень задаёт ёмкость.
type Overshield struct {
	Level int
}

// OvershieldState — текущее состояние щита, поглощающего урон раньше здоровья.
type OvershieldState struct {
	Max               int
	Current           int
	SecsUntilRecharge float64
}
