package system

import (
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
	"github.com/pixl9/sidebrawl/prefabs"
)

// A behavior script defines select(engine) and returns the next selector
// state by name. The dispatch line is appended so the compiled script can
// be re-run with fresh globals every tick.
const aiSelectDispatch = `
__next = select(__engine)
`

type aiScriptRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	broken     bool
}

// selectFromScript runs the entity's behavior script, if it has one, and
// returns the state it chose. Any load or runtime error disables the
// script for the entity and falls back to the built-in selector.
func (s *AI) selectFromScript(e ecs.Entity, ai *component.AI, rt *component.AIRuntime, dist float64) (component.AIState, bool) {
	if strings.TrimSpace(ai.Script) == "" {
		return 0, false
	}

	srt := s.scriptRuntime(e, ai.Script)
	if srt.broken {
		return 0, false
	}

	engine := &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"distance":       &tengo.Float{Value: dist},
		"cooldown_ready": boolObject(rt.CooldownLeft <= 0),
		"state":          &tengo.String{Value: rt.State.String()},
		"state_timer":    &tengo.Float{Value: rt.StateTimer},
	}}
	if err := srt.compiled.Set("__engine", engine); err != nil {
		srt.broken = true
		log.Printf("ai: entity=%v script %q: %v", e, ai.Script, err)
		return 0, false
	}
	if err := srt.compiled.Run(); err != nil {
		srt.broken = true
		log.Printf("ai: entity=%v script %q: %v", e, ai.Script, err)
		return 0, false
	}

	next, ok := parseAIState(srt.compiled.Get("__next").String())
	if !ok {
		return 0, false
	}
	return next, true
}

// scriptRuntime returns the entity's cached runtime, compiling the script
// on first use. Load and compile failures are cached as broken so they log
// once instead of every tick.
func (s *AI) scriptRuntime(e ecs.Entity, path string) *aiScriptRuntime {
	if s.scripts == nil {
		s.scripts = map[ecs.Entity]*aiScriptRuntime{}
	}
	if srt, ok := s.scripts[e]; ok && srt.scriptPath == path {
		return srt
	}

	srt := &aiScriptRuntime{scriptPath: path}
	s.scripts[e] = srt

	src, err := prefabs.LoadScript(path)
	if err != nil {
		srt.broken = true
		log.Printf("ai: entity=%v load script %q: %v", e, path, err)
		return srt
	}

	script := tengo.NewScript(append(src, []byte(aiSelectDispatch)...))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__next", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		srt.broken = true
		log.Printf("ai: entity=%v compile script %q: %v", e, path, err)
		return srt
	}

	srt.compiled = compiled
	return srt
}

func parseAIState(name string) (component.AIState, bool) {
	switch strings.TrimSpace(strings.Trim(name, "\"")) {
	case "idle":
		return component.AIIdle, true
	case "wander":
		return component.AIWander, true
	case "chase":
		return component.AIChase, true
	case "attack":
		return component.AIAttack, true
	default:
		return 0, false
	}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
