package system

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
)

// Audio reacts to this tick's state-change events: a state with a mapped
// clip plays it from the start, a state without one stops any looping
// sound. Master volume and mute come from user settings and apply to
// every clip; entities with missing players skip playback silently.
type Audio struct {
	master float64
	muted  bool
}

func NewAudio() *Audio {
	return &Audio{master: 1}
}

// SetMasterVolume scales all clip volumes. Values clamp to [0,1].
func (s *Audio) SetMasterVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.master = v
}

// SetMuted silences playback entirely. Looping clips that are already
// playing pause on the next tick.
func (s *Audio) SetMuted(m bool) {
	s.muted = m
}

func (s *Audio) Muted() bool {
	return s.muted
}

func (s *Audio) Update(w *ecs.World) {
	s.routeEvents(w)
	s.service(w)
}

// routeEvents turns state changes into per-clip play/stop requests.
func (s *Audio) routeEvents(w *ecs.World) {
	for _, evt := range w.Events().Items() {
		if evt.Type != ecs.EventStateChanged {
			continue
		}
		change, ok := evt.Data.(ecs.StateChangeEvent)
		if !ok {
			continue
		}
		a, ok := ecs.Get(w, change.Entity, component.AudioComponent.Kind())
		if !ok {
			continue
		}
		if name, ok := a.ClipFor[change.To]; ok {
			a.Request(name)
		} else {
			a.StopLoops()
		}
	}
}

// service applies pending requests to the underlying players. Requests
// are consumed even when muted so they do not fire later on unmute.
func (s *Audio) service(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, a *component.Audio) {
		for i := range a.Names {
			var p *audio.Player
			if i < len(a.Players) {
				p = a.Players[i]
			}
			if i < len(a.Stop) && a.Stop[i] {
				a.Stop[i] = false
				if p != nil {
					p.Pause()
				}
			}
			if i < len(a.Play) && a.Play[i] {
				a.Play[i] = false
				if p != nil && !s.muted {
					if err := p.Rewind(); err == nil {
						p.SetVolume(s.clipVolume(a, i))
						p.Play()
					}
				}
			}
			// mute also pauses loops already in flight
			if s.muted && p != nil && i < len(a.Loop) && a.Loop[i] {
				p.Pause()
			}
		}
	})
}

// clipVolume is the effective playback volume for one clip.
func (s *Audio) clipVolume(a *component.Audio, i int) float64 {
	if s.muted {
		return 0
	}
	vol := s.master
	if i < len(a.Volume) && a.Volume[i] > 0 {
		vol *= a.Volume[i]
	}
	return vol
}
