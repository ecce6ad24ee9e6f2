// internal/component/projectile.go
package component

import (
	"go-sky-shooter/internal/types"
	"go-sky-shooter/pkg/vec"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	FiredBy types.EntityID
	Damage  int
	// Size — радиус попадания.
	Size float64
	// HitPoints — сколько целей снаряд может пробить, прежде чем исчезнуть.
	HitPoints int
	// LastHit — последняя поражённая цель, чтобы не бить её повторно, пока снаряд внутри радиуса.
	LastHit types.EntityID
	// OnImpact вызывается в точке каждого попадания. Может быть nil.
	OnImpact func(at vec.Vec2)
}

// ImpactEffect — короткоживущая вспышка в месте попадания.
type ImpactEffect struct{}
