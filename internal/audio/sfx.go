// internal/audio/sfx.go
package audio

import (
	"encoding/binary"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/logging"
	"go-sky-shooter/internal/types"
)

// Sound — вид звукового эффекта.
type Sound int

const (
	SoundShot Sound = iota
	SoundHit
	SoundExplosion
	SoundLevelUp
)

// minGap не даёт одному звуку проигрываться чаще, чем раз в этот интервал.
const minGap = 60 * time.Millisecond

// SFX проигрывает синтезированные звуки по игровым событиям.
type SFX struct {
	ecs        *entity.ECS
	ctx        *audio.Context
	sounds     map[Sound][]byte
	lastPlayed map[Sound]time.Time
	volume     float64
	log        *slog.Logger
}

// NewSFX создаёт звуковую подсистему. При muted звук не инициализируется вовсе.
func NewSFX(ecs *entity.ECS, muted bool) *SFX {
	s := &SFX{
		ecs:        ecs,
		lastPlayed: make(map[Sound]time.Time),
		volume:     0.3,
		log:        logging.ForComponent("audio"),
	}
	if muted {
		s.log.Info("sound muted")
		return s
	}
	s.ctx = audio.NewContext(config.SampleRate)
	s.sounds = map[Sound][]byte{
		SoundShot:      tone(880, 0.04, 0.25),
		SoundHit:       tone(160, 0.12, 0.6),
		SoundExplosion: noise(0.25, 0.5),
		SoundLevelUp:   sweep(440, 1320, 0.35, 0.5),
	}
	return s
}

// Subscribe подписывает SFX на события, которые озвучиваются.
func (s *SFX) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.ProjectileFired, s)
	d.Subscribe(event.DamageDealt, s)
	d.Subscribe(event.EntityDied, s)
	d.Subscribe(event.LevelUp, s)
}

func (s *SFX) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileFired:
		if shot, ok := e.Data.(event.Shot); ok && s.isPlayer(shot.FiredBy) {
			s.Play(SoundShot)
		}
	case event.DamageDealt:
		if dmg, ok := e.Data.(event.Damage); ok && s.isPlayer(dmg.AppliedTo) {
			s.Play(SoundHit)
		}
	case event.EntityDied:
		if death, ok := e.Data.(event.Death); ok {
			if _, enemy := s.ecs.Enemies[death.Entity]; enemy {
				s.Play(SoundExplosion)
			}
		}
	case event.LevelUp:
		s.Play(SoundLevelUp)
	}
}

// Play проигрывает звук, если он включён и не звучал только что.
func (s *SFX) Play(sound Sound) {
	if s.ctx == nil {
		return
	}
	now := time.Now()
	if now.Sub(s.lastPlayed[sound]) < minGap {
		return
	}
	s.lastPlayed[sound] = now

	p := s.ctx.NewPlayerFromBytes(s.sounds[sound])
	p.SetVolume(s.volume)
	p.Play()
}

func (s *SFX) isPlayer(id types.EntityID) bool {
	_, ok := s.ecs.Players[id]
	return ok
}

// tone — синус с линейным затуханием, 16 бит стерео.
func tone(freq, seconds, volume float64) []byte {
	return synth(seconds, volume, func(t float64) float64 {
		return math.Sin(2 * math.Pi * freq * t)
	})
}

// sweep — синус с частотой, плавно меняющейся от from до to.
func sweep(from, to, seconds, volume float64) []byte {
	return synth(seconds, volume, func(t float64) float64 {
		f := from + (to-from)*t/seconds
		return math.Sin(2 * math.Pi * f * t)
	})
}

// noise — детерминированный шум для взрывов.
func noise(seconds, volume float64) []byte {
	state := uint32(2463534242)
	return synth(seconds, volume, func(float64) float64 {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		return float64(state)/math.MaxUint32*2 - 1
	})
}

func synth(seconds, volume float64, wave func(t float64) float64) []byte {
	n := int(seconds * config.SampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / config.SampleRate
		envelope := 1 - float64(i)/float64(n)
		v := int16(wave(t) * envelope * volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
