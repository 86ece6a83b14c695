//go:build !linux

package framebuffer

import (
	"fmt"
	"image/draw"
)

func openDevice(path string) (draw.Image, func(), error) {
	return nil, nil, fmt.Errorf("open framebuffer %s: only supported on linux", path)
}
