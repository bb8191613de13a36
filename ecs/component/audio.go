package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds an entity's named sound players plus per-tick play/stop
// requests. ClipFor maps a character state to the clip that plays on
// entry; states absent from the table silently skip playback.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Loop    []bool
	Play    []bool
	Stop    []bool

	ClipFor map[CharacterState]string
}

var AudioComponent = NewComponent[Audio]()

// Request marks the named clip to play this tick. Unknown names are
// ignored.
func (a *Audio) Request(name string) {
	if a == nil {
		return
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
		}
	}
}

// StopLoops marks all looping clips to stop this tick.
func (a *Audio) StopLoops() {
	if a == nil {
		return
	}
	for i := range a.Names {
		if i < len(a.Loop) && a.Loop[i] && i < len(a.Stop) {
			a.Stop[i] = true
		}
	}
}
