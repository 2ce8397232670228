package core

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/countdown/config"
	"github.com/automoto/countdown/shared/gamemath"
)

// Particle is a single ballistic spark.
type Particle struct {
	Position gamemath.Vec
	Velocity gamemath.Vec
	Life     float64
	Color    color.RGBA
}

// Update integrates the particle under constant gravity.
func (p *Particle) Update(dt float64) {
	p.Life -= dt
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Velocity.Y += config.Effects.ParticleGravity * dt
}

// Alive reports whether the particle still has life left.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Overlay is the large digit flashed on screen after a pickup.
type Overlay struct {
	Text string
	Time float64
}

// NewOverlay creates an overlay with the full display time.
func NewOverlay(text string) Overlay {
	return Overlay{Text: text, Time: config.Effects.OverlayLife}
}

// FontSize returns the overlay font size for a screen of the given half
// height. The digit shrinks with the cube of its remaining time.
func (o Overlay) FontSize(halfHeight float64) float64 {
	return math.Pow(o.Time, 3) * halfHeight * config.Effects.OverlayScale
}

// Burst generates count particles fanning upward from center. Each particle
// leaves at a random angle within the configured spread of vertical with a
// random speed up to power.
func Burst(rng *rand.Rand, center gamemath.Vec, count, power int, c color.RGBA) []Particle {
	spread := config.Effects.SpreadDegrees
	out := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := float64(rng.Intn(2*spread+1)-spread) * math.Pi / 180
		speed := float64(rng.Intn(power + 1))
		out = append(out, Particle{
			Position: center,
			Velocity: gamemath.Vec{X: math.Sin(angle) * speed, Y: -math.Cos(angle) * speed},
			Life:     config.Effects.ParticleLife,
			Color:    c,
		})
	}
	return out
}
