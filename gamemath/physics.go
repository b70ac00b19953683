package gamemath

// VerticalParams are the constants of the vertical integrator.
type VerticalParams struct {
	Ground       float64 // Resting elevation, the eye height
	Gravity      float64 // Units per second squared
	JumpStrength float64 // Units per second
}

// VerticalState is the grounded/airborne state of the player.
// Grounded implies Velocity == 0 and Elevation == Ground.
type VerticalState struct {
	Elevation float64
	Velocity  float64
	Grounded  bool
}

// VerticalEvent reports the transition taken during a step.
type VerticalEvent int

const (
	VerticalNone VerticalEvent = iota
	VerticalJumped
	VerticalLanded
	VerticalHop // jumped and landed within the same step
)

// StepVertical advances the vertical state by dt seconds.
//
// A jump is accepted only while grounded. An airborne step moves the
// elevation by the current velocity first, then applies gravity, then clamps
// to the ground. A dt <= 0 leaves the state untouched.
func StepVertical(s VerticalState, jump bool, dt float64, p VerticalParams) (VerticalState, VerticalEvent) {
	if dt <= 0 {
		return s, VerticalNone
	}

	event := VerticalNone
	if s.Grounded {
		if !jump {
			s.Elevation = p.Ground
			s.Velocity = 0
			return s, VerticalNone
		}
		s.Velocity = p.JumpStrength
		s.Grounded = false
		event = VerticalJumped
	}

	s.Elevation += s.Velocity * dt
	s.Velocity -= p.Gravity * dt

	if s.Elevation <= p.Ground {
		s.Elevation = p.Ground
		s.Velocity = 0
		s.Grounded = true
		if event == VerticalJumped {
			return s, VerticalHop
		}
		return s, VerticalLanded
	}
	return s, event
}

// ClampDelta caps a frame delta at max. Non-positive deltas become 0.
func ClampDelta(dt, max float64) float64 {
	if dt <= 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}
