package levels

import (
	"io/fs"

	"gopkg.in/yaml.v3"
)

// File is the YAML level format: a literal grid, row 0 at the top.
type File struct {
	Name string  `yaml:"name"`
	Grid [][]int `yaml:"grid"`
}

func decodeYAML(fsys fs.FS, name string) ([][]int, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Grid, nil
}
