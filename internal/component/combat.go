package component

import (
	"go-sky-shooter/internal/types"
	"go-sky-shooter/pkg/vec"
)

// Team разделяет сущности на две стороны для проверки столкновений.
type Team int

const (
	TeamFriendly Team = iota
	TeamHostile
)

// Opposes сообщает, являются ли команды противниками.
func (t Team) Opposes(other Team) bool {
	return t != other
}

func (t Team) String() string {
	if t == TeamFriendly {
		return "friendly"
	}
	return "hostile"
}

// Target — сущность, в которую целится оружие. Ноль означает отсутствие цели.
// Ссылка может указывать на уже удалённую сущность.
type Target struct {
	ID types.EntityID
}

// TargetVector — единичное направление на цель, пересчитывается каждый тик.
type TargetVector struct {
	Dir   vec.Vec2
	Valid bool
}

// Set записывает вектор.
func (t *TargetVector) Set(dir vec.Vec2) {
	t.Dir = dir
	t.Valid = true
}

// Clear сбрасывает вектор.
func (t *TargetVector) Clear() {
	t.Dir = vec.Zero
	t.Valid = false
}

// AutoTarget — сущность сама выбирает ближайшего противника (игрок).
type AutoTarget struct{}
