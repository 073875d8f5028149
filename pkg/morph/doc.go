// Package morph implements the per-toast morph and timing state machine.
//
// A Controller owns everything that moves in one toast: morph progress,
// the animated pill/body size, the header reveal delay, the pre-dismiss
// countdown with hover pause, collapse and re-expand, the action success
// morph-back, and the squish, shake and header squish effects.
//
// States:
//
//	Compact ──expandable──▶ Expanding ──settled──▶ Expanded
//	   ▲                        ▲                     │ countdown, action, Dismiss
//	   │                        └──hover── Collapsing ◀┘
//	   └────────settled─────────────────────┘
//	                                        │ grace / action delay
//	                                        ▼
//	                                    Dismissed
//
// Controllers run on a schedule.Scheduler and are not safe for concurrent
// use. All inputs must be delivered on the scheduler's dispatch context.
package morph
