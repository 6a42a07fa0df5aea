package levels

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var errNoScriptGrid = errors.New("script must define a global 'grid' array")

// decodeScript runs a tengo script and reads its global grid, an array of
// int arrays.
func decodeScript(fsys fs.FS, name string) ([][]int, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return nil, err
	}

	v := compiled.Get("grid")
	if v == nil || v.IsUndefined() {
		return nil, errNoScriptGrid
	}
	rowsAny, ok := v.Value().([]any)
	if !ok {
		return nil, errNoScriptGrid
	}

	rows := make([][]int, len(rowsAny))
	for r, rowAny := range rowsAny {
		cells, ok := rowAny.([]any)
		if !ok {
			return nil, fmt.Errorf("grid row %d must be an array", r)
		}
		rows[r] = make([]int, len(cells))
		for c, cell := range cells {
			code, err := toInt(cell)
			if err != nil {
				return nil, fmt.Errorf("grid[%d][%d]: %w", r, c, err)
			}
			rows[r][c] = code
		}
	}
	return rows, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case int:
		return n, nil
	case float64:
		return int(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("cell must be a number, got %T", v)
	}
}
