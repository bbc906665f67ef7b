package vignette

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fadeAnim is a cancellable alpha interpolation. Calling start while a fade
// is in flight replaces the tween immediately; the new fade begins from the
// value the old one had reached, so interruptions snap nothing.
type fadeAnim struct {
	tween *gween.Tween
	value float64
}

// start begins a fade from the current value to the target over duration
// seconds. A non-positive duration completes instantly.
func (f *fadeAnim) start(to float64, duration float32, fn ease.TweenFunc) {
	if duration <= 0 {
		f.tween = nil
		f.value = to
		return
	}
	f.tween = gween.New(float32(f.value), float32(to), duration, fn)
}

// update advances the fade by dt seconds and reports whether it finished on
// this call. An idle fade reports false.
func (f *fadeAnim) update(dt float32) bool {
	if f.tween == nil {
		return false
	}
	v, finished := f.tween.Update(dt)
	f.value = float64(v)
	if finished {
		f.tween = nil
	}
	return finished
}

// active reports whether a fade is in flight.
func (f *fadeAnim) active() bool {
	return f.tween != nil
}
