package config

// TweenDef describes one leg of a scale or fade tween.
type TweenDef struct {
	From     float32
	To       float32
	Duration float32 // seconds
}

// FrogTweens maps a frog state to the squash-and-stretch curve played
// when the state is entered. There are no sprite sheets; all motion
// comes from these curves applied to the drawn shape.
var FrogTweens = map[StateID][]TweenDef{
	StateJumping:  {{From: 0.85, To: 1.25, Duration: 0.10}, {From: 1.25, To: 1.0, Duration: 0.18}},
	StateGrounded: {{From: 1.3, To: 0.85, Duration: 0.06}, {From: 0.85, To: 1.0, Duration: 0.14}},
	StateFloating: {{From: 1.0, To: 1.08, Duration: 0.6}, {From: 1.08, To: 1.0, Duration: 0.6}},
	StateDrowning: {{From: 1.0, To: 0.2, Duration: 0.8}},
}

// PadTweens holds the scale curves for pad behaviors, keyed by the
// behavior name rather than the pad kind so two kinds can share one.
var PadTweens = map[string][]TweenDef{
	"shrink": {{From: 1.0, To: 0.45, Duration: 3.0}},
	"regrow": {{From: 0.45, To: 1.0, Duration: 3.0}},
	"launch": {{From: 1.0, To: 1.4, Duration: 0.08}, {From: 1.4, To: 1.0, Duration: 0.25}},
	"spawn":  {{From: 0.0, To: 1.0, Duration: 0.3}},
}

// RippleTween is the ring expansion curve for water ripples.
var RippleTween = []TweenDef{{From: 0.2, To: 1.0, Duration: 0.6}}
