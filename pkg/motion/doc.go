// Package motion holds the physics and timing behind toast animations:
// the bounce-to-spring mapping, eased and spring transitions, the frame
// driven animation Driver, the secondary squish/shake curves and the
// pausable Countdown used for pre-dismiss timing.
//
// Every spring-driven effect derives its parameters from one bounce
// intensity through SpringFromBounce, scaled per effect by SpringFor:
//
//	s := motion.SpringFor(motion.CollapseDuration, motion.CollapseDuration, 0.4)
//	// s.Stiffness = 375, s.Damping = 16, s.Mass = 0.7
//
// When springs are disabled the same effects use Smooth, a cubic
// ease-in-out at a fixed duration.
package motion
