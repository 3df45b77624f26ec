package palette

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/rgbkmeans/internal/conv"
	"github.com/hupe1980/rgbkmeans/rgb"
)

// WriteColormap writes one "r g b" line per color, truncating each channel
// toward zero.
func WriteColormap(w io.Writer, p *Palette) error {
	bw := bufio.NewWriter(w)
	for _, c := range p.Colors {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n",
			conv.ChannelToInt(c.R()), conv.ChannelToInt(c.G()), conv.ChannelToInt(c.B())); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadColormap parses the format written by WriteColormap.
// Blank lines are skipped.
func ReadColormap(r io.Reader) (*Palette, error) {
	var colors []rgb.Pixel

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != rgb.Channels {
			return nil, fmt.Errorf("%w: line %d: want %d values, got %d", ErrCorrupt, line, rgb.Channels, len(fields))
		}

		var px rgb.Pixel
		for ch, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrCorrupt, line, err)
			}
			px[ch] = float32(v)
		}
		colors = append(colors, px)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return &Palette{Colors: colors}, nil
}
