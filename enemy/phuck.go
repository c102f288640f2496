// Package enemy implements the Phuck, a flying enemy that circles the arena until shot down
package enemy

import (
	"math"

	"github.com/pipejesus/chill-out/actor"
	"github.com/pipejesus/chill-out/event"
	"github.com/pipejesus/chill-out/parameter"
	"github.com/pipejesus/chill-out/vmath"
)

type Config struct {
	Name string

	// Orbit parameters, fixed for the enemy's lifetime
	Center       vmath.Vec3F
	Radius       float64
	InitialAngle float64 // Radians

	Health    float64
	HitDamage float64
	BoxSize   float64

	FallFactor     float64
	LandingEpsilon float64
}

// DefaultConfig returns an enemy at angle 0 of the default orbit
func DefaultConfig() Config {
	return Config{
		Name:           "phuck",
		Center:         vmath.V3F(parameter.EnemyCenterX, parameter.EnemyCenterY, parameter.EnemyCenterZ),
		Radius:         parameter.EnemyOrbitRadius,
		Health:         parameter.EnemyHealth,
		HitDamage:      parameter.EnemyHitDamage,
		BoxSize:        parameter.EnemyBoxSize,
		FallFactor:     parameter.FallLerpFactor,
		LandingEpsilon: parameter.FallLandingEpsilon,
	}
}

// Phuck orbits its center while Live, tests pending shots against its box,
// and eases to the floor once its health is gone
// Observers receive EventEnemyHit, EventEnemyDown and EventEnemyGrounded
type Phuck struct {
	actor.Observers

	cfg      Config
	state    State
	position vmath.Vec3F
	rotation float64
	health   float64
	onTarget bool

	// Shot delivered by OnNotify, resolved on the next Live update
	pending  bool
	pendingR vmath.Ray
}

// New places the enemy at its orbit position for elapsed 0
func New(cfg Config) *Phuck {
	p := &Phuck{
		cfg:    cfg,
		state:  StateLive,
		health: cfg.Health,
	}
	p.position = p.orbit(0)
	p.rotation = math.Atan2(p.position.X, p.position.Z)
	return p
}

// Update dispatches to the current state's behavior
func (p *Phuck) Update(dt, elapsed float64) {
	switch p.state {
	case StateLive:
		p.updateLive(elapsed)
	case StateFalling:
		p.updateFalling()
	}
}

// OnNotify arms a hit test when the player fires while the enemy is live
func (p *Phuck) OnNotify(source actor.Actor, n event.Notification) {
	if n.Type != event.EventPlayerFire || p.state != StateLive {
		return
	}
	fire, ok := n.Payload.(event.FirePayload)
	if !ok {
		return
	}
	p.pending = true
	p.pendingR = fire.Ray
}

// Apply moves the machine along trigger t and returns the resulting state
func (p *Phuck) Apply(t Trigger) State {
	p.state = Transition(p.state, t)
	if p.state != StateLive {
		p.pending = false
	}
	return p.state
}

func (p *Phuck) updateLive(elapsed float64) {
	p.position = p.orbit(elapsed)
	p.rotation = math.Atan2(p.position.X, p.position.Z)

	if !p.pending {
		return
	}
	p.pending = false
	p.onTarget = vmath.RayHitsAABB(p.pendingR, p.Box())
	if !p.onTarget {
		return
	}

	p.health -= p.cfg.HitDamage
	p.Notify(p, event.Notification{
		Type:   event.EventEnemyHit,
		Origin: p.cfg.Name,
		Payload: event.HitPayload{
			Position: p.position,
			Damage:   p.cfg.HitDamage,
			Health:   p.health,
		},
	})

	if p.health <= 0 {
		p.Apply(TriggerKilled)
		p.Notify(p, event.Notification{
			Type:    event.EventEnemyDown,
			Origin:  p.cfg.Name,
			Payload: event.PositionPayload{Position: p.position},
		})
	}
}

func (p *Phuck) updateFalling() {
	ground := vmath.V3F(p.position.X, 0, p.position.Z)
	p.position = vmath.V3FLerp(p.position, ground, p.cfg.FallFactor)

	if p.position.Y > p.cfg.LandingEpsilon {
		return
	}
	p.position.Y = 0
	p.Apply(TriggerLanded)
	p.Notify(p, event.Notification{
		Type:    event.EventEnemyGrounded,
		Origin:  p.cfg.Name,
		Payload: event.PositionPayload{Position: p.position},
	})
}

// orbit is uniform circular motion at 1 rad/s around the center
func (p *Phuck) orbit(elapsed float64) vmath.Vec3F {
	a := p.cfg.InitialAngle + elapsed
	return vmath.V3F(
		p.cfg.Center.X+math.Cos(a)*p.cfg.Radius,
		p.cfg.Center.Y,
		p.cfg.Center.Z+math.Sin(a)*p.cfg.Radius,
	)
}

// Box is the hit volume centered on the current position
func (p *Phuck) Box() vmath.AABB {
	return vmath.BoxAround(p.position, p.cfg.BoxSize)
}

func (p *Phuck) Name() string          { return p.cfg.Name }
func (p *Phuck) State() State          { return p.state }
func (p *Phuck) Position() vmath.Vec3F { return p.position }
func (p *Phuck) Health() float64       { return p.health }
func (p *Phuck) MaxHealth() float64    { return p.cfg.Health }

// Rotation is the facing angle atan2(x, z) in radians
func (p *Phuck) Rotation() float64 { return p.rotation }

// IsOnTarget reports the result of the latest hit test
func (p *Phuck) IsOnTarget() bool { return p.onTarget }
