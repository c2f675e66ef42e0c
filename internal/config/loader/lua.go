package loader

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultLuaTimeout bounds how long a configuration script may run.
const DefaultLuaTimeout = 2 * time.Second

// LuaLoader evaluates a Lua script and reads the table it returns, or the
// global "config" table when the script returns nothing:
//
//	return {
//	  logging = { level = "debug" },
//	  keys = { normal = { ["C-s"] = ":write" } },
//	}
//
// Scripts run with only the base, table, string and math libraries.
type LuaLoader struct {
	fs      FileSystem
	path    string
	timeout time.Duration
}

// NewLuaLoader creates a Lua loader for the given path.
func NewLuaLoader(path string) *LuaLoader {
	return NewLuaLoaderWithFS(DefaultFS(), path)
}

// NewLuaLoaderWithFS creates a Lua loader with a custom file system.
func NewLuaLoaderWithFS(fs FileSystem, path string) *LuaLoader {
	return &LuaLoader{fs: fs, path: path, timeout: DefaultLuaTimeout}
}

// SetTimeout changes the script time limit.
func (l *LuaLoader) SetTimeout(d time.Duration) {
	l.timeout = d
}

// Load reads configuration from the configured path.
func (l *LuaLoader) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads configuration from a specific path.
func (l *LuaLoader) LoadFrom(path string) (map[string]any, error) {
	data, err := readFile(l.fs, path)
	if err != nil || data == nil {
		return nil, err
	}
	return l.eval(path, string(data))
}

// LoadFromReader reads configuration from an io.Reader.
func (l *LuaLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return l.eval("<reader>", string(data))
}

func (l *LuaLoader) eval(source, code string) (result map[string]any, err error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	if l.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()
		L.SetContext(ctx)
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = nil, &ParseError{Path: source, Message: fmt.Sprintf("lua panic: %v", r)}
		}
	}()

	top := L.GetTop()
	if err := L.DoString(code); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		if apiErr, ok := err.(*lua.ApiError); ok && apiErr.Object != nil {
			perr.Message = apiErr.Object.String()
		}
		return nil, perr
	}

	value := lua.LValue(lua.LNil)
	if L.GetTop() > top {
		value = L.Get(top + 1)
	}
	if value == lua.LNil {
		value = L.GetGlobal("config")
	}

	tbl, ok := value.(*lua.LTable)
	if !ok {
		if value == lua.LNil {
			return make(map[string]any), nil
		}
		return nil, &ParseError{
			Path:    source,
			Message: fmt.Sprintf("script must return a table, got %s", value.Type()),
		}
	}

	converted, ok := fromLua(tbl, make(map[*lua.LTable]bool)).(map[string]any)
	if !ok {
		return nil, &ParseError{Path: source, Message: "top-level table must have string keys"}
	}
	return converted, nil
}

// fromLua converts a Lua value into the common value tree. Tables with
// contiguous integer keys from 1 become lists; others become maps.
func fromLua(lv lua.LValue, visited map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if visited[v] {
			return nil
		}
		visited[v] = true
		defer delete(visited, v)
		return tableFromLua(v, visited)
	}
	return nil
}

func tableFromLua(t *lua.LTable, visited map[*lua.LTable]bool) any {
	count, maxN := 0, 0
	isArray := true
	t.ForEach(func(k, _ lua.LValue) {
		count++
		if kn, ok := k.(lua.LNumber); ok {
			if n := int(kn); float64(n) == float64(kn) && n > 0 {
				maxN = max(maxN, n)
				return
			}
		}
		isArray = false
	})

	if isArray && maxN > 0 && count == maxN {
		arr := make([]any, maxN)
		for i := 1; i <= maxN; i++ {
			arr[i-1] = fromLua(t.RawGetInt(i), visited)
		}
		return arr
	}

	m := make(map[string]any, count)
	t.ForEach(func(k, v lua.LValue) {
		var key string
		switch kv := k.(type) {
		case lua.LString:
			key = string(kv)
		case lua.LNumber:
			key = strconv.FormatFloat(float64(kv), 'f', -1, 64)
		default:
			key = k.String()
		}
		m[key] = fromLua(v, visited)
	})
	return m
}
