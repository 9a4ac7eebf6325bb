package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultToastDuration is how long a toast takes to fade out, in seconds.
const DefaultToastDuration = 1.2

// Toast is a short message that fades out after a mode change.
type Toast struct {
	Duration float32

	message string
	alpha   float32
	tween   *gween.Tween
}

// NewToast returns an idle toast.
func NewToast() *Toast {
	return &Toast{Duration: DefaultToastDuration}
}

// Show replaces the current message and restarts the fade.
func (t *Toast) Show(msg string) {
	d := t.Duration
	if d <= 0 {
		d = DefaultToastDuration
	}
	t.message = msg
	t.alpha = 1
	t.tween = gween.New(1, 0, d, ease.InQuad)
}

// Update advances the fade by dt seconds.
func (t *Toast) Update(dt float32) {
	if t.tween == nil {
		return
	}
	v, done := t.tween.Update(dt)
	t.alpha = v
	if done {
		t.tween = nil
		t.alpha = 0
	}
}

// Message returns the text being shown.
func (t *Toast) Message() string { return t.message }

// Alpha returns the current opacity in [0,1].
func (t *Toast) Alpha() float32 {
	if t.alpha < 0 {
		return 0
	}
	if t.alpha > 1 {
		return 1
	}
	return t.alpha
}

// Visible reports whether the toast should be drawn.
func (t *Toast) Visible() bool { return t.Alpha() > 0 && t.message != "" }
