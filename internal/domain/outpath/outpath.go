package outpath

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultStem names the output when none was requested.
const DefaultStem = "Output"

// Result is the outcome of Resolve.
type Result struct {
	Requested string
	Path      string
	Renamed   bool
}

// Default returns output unchanged, or DefaultStem with the input's extension
// when output is empty. An output ending in "." takes the input's extension.
func Default(input, output string) string {
	if output == "" {
		return DefaultStem + filepath.Ext(input)
	}
	if strings.HasSuffix(output, ".") {
		return strings.TrimSuffix(output, ".") + filepath.Ext(input)
	}
	return output
}

// Resolve returns the first path that does not exist, starting with
// requested and then trying {stem}1{.ext}, {stem}2{.ext}, ... in the same
// directory. Stem and extension always come from requested. The first
// probe error stops the search.
func Resolve(requested string, exists func(string) (bool, error)) (Result, error) {
	dir, base := filepath.Split(requested)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	res := Result{Requested: requested, Path: requested}
	for c := 1; ; c++ {
		taken, err := exists(res.Path)
		if err != nil {
			return Result{}, fmt.Errorf("check %s: %w", res.Path, err)
		}
		if !taken {
			return res, nil
		}
		res.Path = dir + stem + strconv.Itoa(c) + ext
		res.Renamed = true
	}
}
