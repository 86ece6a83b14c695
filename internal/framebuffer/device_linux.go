//go:build linux

package framebuffer

import (
	"fmt"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
)

func openDevice(path string) (draw.Image, func(), error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	return dev, func() { dev.Close() }, nil
}
