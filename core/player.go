package core

import (
	"math"

	"github.com/automoto/countdown/config"
	"github.com/automoto/countdown/shared/gamemath"
)

// Outcome is what a player update means for the session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGameOver
)

const (
	maxBackoffSteps = 64
	maxUnstickSteps = 4096
)

// Player is the controllable character.
type Player struct {
	Position gamemath.Vec
	Size     gamemath.Vec
	Velocity gamemath.Vec

	Jumps    int
	MaxJumps int

	WallHolding bool
	Frame       int // 0 idle, ±1/±2 walk cycle, ±3 wall hold; sign is facing
}

// NewPlayer creates a player standing still at position.
func NewPlayer(position, size gamemath.Vec) *Player {
	return &Player{
		Position: position,
		Size:     size,
		MaxJumps: config.Player.MaxJumps,
	}
}

// Rect is the full player box.
func (p *Player) Rect() gamemath.Rect {
	return gamemath.Rect{X: p.Position.X, Y: p.Position.Y, W: p.Size.X, H: p.Size.Y}
}

// Center returns the middle of the player box.
func (p *Player) Center() gamemath.Vec {
	return p.Rect().Center()
}

// Collides reports whether the player box, slightly inset, overlaps the door,
// a ground tile, the left edge of the level or its bottom row.
func (p *Player) Collides(level *Level) bool {
	box := p.Rect().Inset(config.Player.CollisionInset)
	if box.Overlaps(level.Door.Rect) {
		return true
	}

	tiles := box.Scale(config.Physics.TileSize)
	x0, y0, x1, y1 := tiles.TileSpan()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if level.TileAt(x, y) == TileGround {
				return true
			}
		}
	}

	return tiles.X < 0 || tiles.Y+tiles.H >= level.HeightInTiles()
}

// Update runs one frame of player movement and interaction.
func (p *Player) Update(f *Frame, level *Level) Outcome {
	cfg := config.Player
	dir := f.Input.Direction()

	if f.Input.JumpPressed && (p.Jumps > 0 || p.WallHolding) {
		if p.WallHolding {
			p.Velocity.X = dir * -cfg.WallJumpSpeed
			p.WallHolding = false
		} else {
			p.Jumps--
		}
		p.Velocity.Y = -cfg.JumpSpeed
		f.Play(config.SoundJump)
	}

	if f.Input.JumpReleased && p.Velocity.Y < 0 {
		p.Velocity.Y *= cfg.JumpCut
	}

	p.Velocity.Y += config.Physics.Gravity * f.DT
	if p.WallHolding {
		p.Velocity.Y = 0
	}

	target := dir * p.Size.X * cfg.SpeedPerWidth
	p.Velocity.X = gamemath.Approach(p.Velocity.X, target, cfg.Smoothing, f.DT)

	for i := 0; i < maxUnstickSteps && p.Collides(level); i++ {
		p.Position.Y -= cfg.UnstickStep
	}

	p.collidableMove(f, level, gamemath.Vec{X: 1})
	p.collidableMove(f, level, gamemath.Vec{Y: 1})
	outcome := p.checkInteractables(f, level)

	switch {
	case math.Abs(p.Velocity.X) > cfg.WalkThreshold:
		p.Frame = int(gamemath.Sign(p.Velocity.X)) * (int(math.Mod(f.Time*cfg.WalkRate, 2)) + 1)
	case p.WallHolding:
		p.Frame = int(dir) * cfg.WallFrame
	default:
		p.Frame = 0
	}

	return outcome
}

// collidableMove applies the velocity along one axis. On contact it backs
// off by the whole motion length until clear, then zeroes that axis.
func (p *Player) collidableMove(f *Frame, level *Level, axis gamemath.Vec) {
	motion := p.Velocity.Mul(axis).Scale(f.DT)
	p.Position = p.Position.Add(motion)

	if !p.Collides(level) {
		if motion.X != 0 || f.Input.Direction() == 0 || f.Input.GripReleased {
			p.WallHolding = false
		}
		return
	}

	back := gamemath.Vec{X: gamemath.Sign(p.Velocity.X), Y: gamemath.Sign(p.Velocity.Y)}.
		Mul(axis).
		Scale(motion.Length())
	for i := 0; i < maxBackoffSteps; i++ {
		p.Position = p.Position.Sub(back)
		if !p.Collides(level) {
			break
		}
	}

	if axis.X != 0 {
		if f.Input.Direction() == gamemath.Sign(motion.X) && f.Input.Grip {
			p.WallHolding = true
		}
		p.Velocity.X = 0
	}
	if axis.Y != 0 {
		p.Velocity.Y = 0
		if motion.Y > 0 {
			p.Jumps = p.MaxJumps
		}
	}
}

// checkInteractables handles number pickups and spikes. A wrong number and
// each touched spike tile are independent checks, and every one of them ends
// the attempt with its own burst and sound.
func (p *Player) checkInteractables(f *Frame, level *Level) Outcome {
	outcome := OutcomeNone
	box := p.Rect()

	if i := level.NumberAt(box); i >= 0 {
		if int(level.Numbers[i].Value) != level.Required {
			outcome = p.gameOver(f, level)
		} else {
			level.PickUp(i)
			f.Play(config.SoundNumber)
		}
	}

	tiles := box.Scale(config.Physics.TileSize).Inset(config.Player.SpikeInset)
	x0, y0, x1, y1 := tiles.TileSpan()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if level.TileAt(x, y) == TileSpike {
				outcome = p.gameOver(f, level)
			}
		}
	}

	return outcome
}

func (p *Player) gameOver(f *Frame, level *Level) Outcome {
	fx := config.Effects
	level.Explode(p.Center(), fx.DeathCount, fx.DeathPower, fx.DeathColor)
	f.Play(config.SoundGameOver)
	return OutcomeGameOver
}

// CameraOrigin returns the top-left world position of the camera screen
// containing the player. Screens are fixed squares; the last screen of the
// level is never scrolled past horizontally.
func (p *Player) CameraOrigin(level *Level) gamemath.Vec {
	screen := config.Camera.ScreenSize
	c := p.Center().Scale(1 / screen)
	return gamemath.Vec{
		X: math.Min(math.Floor(c.X), level.Size.X/screen-1) * screen,
		Y: math.Floor(c.Y) * screen,
	}
}
