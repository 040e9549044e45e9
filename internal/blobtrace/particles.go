package blobtrace

import (
	"bufio"
	"fmt"
	"os"
)

// ReadParticles parses a line-oriented ASCII particle file: each
// non-blank, well-formed line holds three whitespace-separated floats
// "x y z". Blank and malformed lines are skipped rather than aborting
// the read. Returns ErrEmptyParticleList if no line yielded a valid
// center.
func ReadParticles(path string) ([]V3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening particle file %q: %w", path, err)
	}
	defer f.Close()

	var centers []V3
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var x, y, z Real
		n, err := fmt.Sscan(scanner.Text(), &x, &y, &z)
		if err != nil || n != 3 {
			continue
		}
		centers = append(centers, V3{x, y, z})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading particle file %q: %w", path, err)
	}
	if len(centers) == 0 {
		return nil, ErrEmptyParticleList
	}
	return centers, nil
}
