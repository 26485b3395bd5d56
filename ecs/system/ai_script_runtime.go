package system

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
	"github.com/milk9111/scrollshooter/prefabs"
)

// aiScriptRuntime is one entity's compiled script plus the state map the
// script keeps between ticks.
type aiScriptRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	stateData  *tengo.Map
}

const aiDispatchScript = `
if __run {
	update(__engine, __state)
}
`

// aiScriptContext is what the engine functions read and write during one
// update call.
type aiScriptContext struct {
	Entity ecs.Entity
	AI     *component.AI
	Mobile *component.Mobile
	Self   common.Vec2i
	Player common.Vec2i
	Frame  int
	Rand   *rand.Rand
}

func compileAIScript(path string) (*tengo.Compiled, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty script path")
	}
	scriptBytes, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	src := string(scriptBytes) + "\n" + aiDispatchScript
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__run", false)
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	// Run the top level once so definitions are checked before first use.
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("run %s: %w", path, err)
	}
	if !compiled.IsDefined("update") {
		return nil, fmt.Errorf("%s: no update function", path)
	}
	return compiled, nil
}

func (rt *aiScriptRuntime) run(engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if err := rt.compiled.Set("__run", true); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func vecObject(v common.Vec2i) tengo.Object {
	return &tengo.Array{Value: []tengo.Object{&tengo.Int{Value: int64(v.X)}, &tengo.Int{Value: int64(v.Y)}}}
}

func buildAIScriptEngine(ctx *aiScriptContext) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vecObject(ctx.Self), nil
	}}

	values["player_position"] = &tengo.UserFunction{Name: "player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vecObject(ctx.Player), nil
	}}

	values["velocity"] = &tengo.UserFunction{Name: "velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: ctx.Mobile.VX}, &tengo.Float{Value: ctx.Mobile.VY}}}, nil
	}}

	values["set_velocity"] = &tengo.UserFunction{Name: "set_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		vx, ok := tengo.ToFloat64(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "vx", Expected: "float", Found: args[0].TypeName()}
		}
		vy, ok := tengo.ToFloat64(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "vy", Expected: "float", Found: args[1].TypeName()}
		}
		ctx.Mobile.VX = vx
		ctx.Mobile.VY = vy
		return tengo.UndefinedValue, nil
	}}

	values["fire"] = &tengo.UserFunction{Name: "fire", Value: func(args ...tengo.Object) (tengo.Object, error) {
		ctx.AI.WantsFire = true
		return tengo.TrueValue, nil
	}}

	values["frame"] = &tengo.UserFunction{Name: "frame", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(ctx.Frame)}, nil
	}}

	values["rand"] = &tengo.UserFunction{Name: "rand", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.Rand.Float64()}, nil
	}}

	values["move_speed"] = &tengo.UserFunction{Name: "move_speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.AI.MoveSpeed}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
