// Package flip holds the card flip state machine and the protocol that keeps
// it independent of whatever draws it.
//
// # Overview
//
// A State is created once per logical item and lives as long as the item.
// A Host is a short-lived visual stage owned by a recycling container. The
// state paints its truth onto whichever host is bound to it and forgets the
// host when it is unbound:
//
//	┌──────────────┐  RequestFlip / ForceTo   ┌──────────────┐
//	│  input, app  │ ───────────────────────> │    State     │
//	└──────────────┘                          │  current     │
//	                                          │  target      │
//	┌──────────────┐  Bind / Unbind           │  inProgress  │
//	│ grid adapter │ ───────────────────────> │  override    │
//	└──────────────┘                          └──────┬───────┘
//	                                   AnimateTo     │   ▲ Completion.Signal
//	                                   ShowInstant   ▼   │
//	                                          ┌──────────────┐
//	                                          │     Host     │
//	                                          └──────────────┘
//
// # States
//
//   - Idle(side): target == current, nothing running
//   - Transitioning(from, to): a hop is animating on the host, or settling
//     synchronously when no host is bound
//   - Transitioning+Override: a ForceTo arrived mid-flight; the desired side
//     is stored in target and resolved when the hop settles, possibly with a
//     corrective hop that fires no start event
//
// # Rebinding
//
// Bind and Unbind are the only cancellation path. A flight in progress on a
// departing host is resolved to its intended side instantly and reported as
// a finish; completions from the abandoned animation are dropped because
// every bind bumps an internal generation. After Bind the new host shows
// CurrentSide with matching interactivity and no animation.
//
// # Threading
//
// There are no locks. Every method, and every Completion signal, must run
// on the same event loop (the Bubble Tea Update loop in this program).
package flip
