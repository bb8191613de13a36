package component

// Intent is the per-tick movement request for a character, produced by the
// player controller or the AI behavior selector and consumed by the shared
// movement resolver.
type Intent struct {
	MoveX int // -1, 0, +1
	Run   bool
}

var IntentComponent = NewComponent[Intent]()
