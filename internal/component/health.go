package component

// Health — текущее и максимальное здоровье.
type Health struct {
	Value int
	Max   int
}

// NewHealth создаёт полное здоровье.
func NewHealth(max int) *Health {
	return &Health{Value: max, Max: max}
}

// Dead — сущность погибла и ждёт удаления.
type Dead struct{}

// DespawnTimer удаляет сущность, когда Remaining опускается до нуля.
type DespawnTimer struct {
	Remaining float64
}
