package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффекту осталось
	Duration float64 // Общая продолжительность эффекта
}
