// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"go-sky-shooter/internal/defs"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
// Передаётся явно в системы, которым нужна случайность.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает равномерное число в [min, max]. При min == max возвращает min.
func (s *PRNGService) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// Angle возвращает равномерный угол в [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// Bool возвращает true с вероятностью p.
func (s *PRNGService) Bool(p float64) bool {
	return s.rng.Float64() < p
}

// ChooseDistinct выбирает до n разных значений из pool.
// Повторы в pool увеличивают шанс значения быть выбранным.
func (s *PRNGService) ChooseDistinct(pool []defs.PowerUpType, n int) []defs.PowerUpType {
	remaining := append([]defs.PowerUpType(nil), pool...)
	var out []defs.PowerUpType
	for len(out) < n && len(remaining) > 0 {
		pick := remaining[s.Intn(len(remaining))]
		out = append(out, pick)
		kept := remaining[:0]
		for _, p := range remaining {
			if p != pick {
				kept = append(kept, p)
			}
		}
		remaining = kept
	}
	return out
}
