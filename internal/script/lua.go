package script

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	lua "github.com/yuin/gopher-lua"

	"robotchallenge/internal/robot"
)

const (
	entryPoint     = "decide"
	DefaultTimeout = 2 * time.Second
)

var ErrBadCommand = errors.New("script returned an unusable command")

// Algorithm runs a Lua chunk that defines
//
//	function decide(robots, index, stations) ... end
//
// robots and stations are arrays of {owner, energy, x, y} / {energy, x, y}
// tables and index is 1-based. The function returns {kind="move", x=.., y=..},
// {kind="collect"} or {kind="create"}.
type Algorithm struct {
	author string
	source string

	// Timeout bounds one decide() call; zero means DefaultTimeout.
	Timeout time.Duration
}

var _ robot.Algorithm = (*Algorithm)(nil)

// New checks that source compiles and defines decide.
func New(author, source string) (*Algorithm, error) {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoString(source); err != nil {
		return nil, fmt.Errorf("compile strategy script: %w", err)
	}
	if L.GetGlobal(entryPoint).Type() != lua.LTFunction {
		return nil, fmt.Errorf("strategy script does not define %s()", entryPoint)
	}
	return &Algorithm{author: author, source: source, Timeout: DefaultTimeout}, nil
}

func Load(author, path string) (*Algorithm, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read strategy script %q: %w", path, err)
	}
	return New(author, string(b))
}

func (a *Algorithm) Author() string { return a.author }

// DoStep runs the script in a fresh interpreter so nothing survives between turns.
func (a *Algorithm) DoStep(robots []robot.Robot, index int, m robot.Map) (robot.Command, error) {
	if index < 0 || index >= len(robots) {
		return nil, fmt.Errorf("index %d out of range for %d robots", index, len(robots))
	}
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)
	if err := L.DoString(a.source); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("load strategy script: %w", ctx.Err())
		}
		return nil, fmt.Errorf("load strategy script: %w", err)
	}

	err := L.CallByParam(lua.P{
		Fn:      L.GetGlobal(entryPoint),
		NRet:    1,
		Protect: true,
	}, robotsTable(L, robots), lua.LNumber(index+1), stationsTable(L, m))
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("run strategy script: %w", ctx.Err())
		}
		return nil, fmt.Errorf("run strategy script: %w", err)
	}
	ret := L.Get(-1)
	L.Pop(1)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: got %s, expected table", ErrBadCommand, ret.Type().String())
	}
	return toCommand(tbl)
}

func robotsTable(L *lua.LState, robots []robot.Robot) *lua.LTable {
	out := L.NewTable()
	for _, r := range robots {
		t := L.NewTable()
		t.RawSetString("owner", lua.LString(r.Owner))
		t.RawSetString("energy", lua.LNumber(r.Energy))
		t.RawSetString("x", lua.LNumber(r.Position.X))
		t.RawSetString("y", lua.LNumber(r.Position.Y))
		out.Append(t)
	}
	return out
}

func stationsTable(L *lua.LState, m robot.Map) *lua.LTable {
	out := L.NewTable()
	for _, st := range m.Stations {
		t := L.NewTable()
		t.RawSetString("energy", lua.LNumber(st.Energy))
		t.RawSetString("x", lua.LNumber(st.Position.X))
		t.RawSetString("y", lua.LNumber(st.Position.Y))
		out.Append(t)
	}
	return out
}

func toCommand(tbl *lua.LTable) (robot.Command, error) {
	kind := tbl.RawGetString("kind")
	if kind.Type() != lua.LTString {
		return nil, fmt.Errorf("%w: missing kind", ErrBadCommand)
	}
	switch lua.LVAsString(kind) {
	case "create":
		return robot.CreateNewRobot{}, nil
	case "collect":
		return robot.CollectEnergy{}, nil
	case "move":
		x, errX := coord(tbl, "x")
		if errX != nil {
			return nil, errX
		}
		y, errY := coord(tbl, "y")
		if errY != nil {
			return nil, errY
		}
		return robot.Move{To: robot.Position{X: x, Y: y}}, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrBadCommand, lua.LVAsString(kind))
}

// coord reads a whole-number grid coordinate from a move table.
func coord(tbl *lua.LTable, key string) (int, error) {
	v := tbl.RawGetString(key)
	if v.Type() != lua.LTNumber {
		return 0, fmt.Errorf("%w: move needs numeric %s", ErrBadCommand, key)
	}
	f := float64(lua.LVAsNumber(v))
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s=%v is not a grid coordinate", ErrBadCommand, key, f)
	}
	return int(f), nil
}
