package blobtrace

import (
	"bufio"
	"fmt"
	"os"
)

// WritePPM writes a binary P6 PPM image: header "P6\n{W} {H}\n255\n"
// followed by row-major RGB bytes. Each component is truncated to an
// integer and taken mod 256, matching the reference WriteToFile.
//
// pixels must be indexed pixels[row][col], row in [0,height), col in
// [0,width), already in the row-major order the file expects.
func WritePPM(path string, width, height int, pixels [][]RGB) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("writing %q header: %w", path, err)
	}

	buf := make([]byte, 0, width*3)
	for row := 0; row < height; row++ {
		buf = buf[:0]
		for col := 0; col < width; col++ {
			c := pixels[row][col]
			buf = append(buf,
				byte(((int64(c.R))%256+256)%256),
				byte(((int64(c.G))%256+256)%256),
				byte(((int64(c.B))%256+256)%256),
			)
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing %q row %d: %w", path, row, err)
		}
	}
	return w.Flush()
}
