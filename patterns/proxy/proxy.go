// Package proxy demonstrates the Proxy pattern: a stand-in object that
// controls access to an expensive real object, loading it lazily.
package proxy

import "fmt"

// Image can be displayed. Both the real image and its proxy satisfy it.
type Image interface {
	Display() string
}

// RealImage loads its pixel data from disk when constructed.
type RealImage struct {
	filename string
}

// LoadImage simulates an expensive load from disk.
func LoadImage(filename string) *RealImage {
	return &RealImage{filename: filename}
}

func (r *RealImage) Display() string {
	return fmt.Sprintf("displaying %s", r.filename)
}

// ImageProxy defers the expensive load until the first Display call.
type ImageProxy struct {
	filename string
	real     *RealImage
	loads    int
}

// NewImageProxy creates a proxy without touching the disk.
func NewImageProxy(filename string) *ImageProxy {
	return &ImageProxy{filename: filename}
}

func (p *ImageProxy) Display() string {
	if p.real == nil {
		p.real = LoadImage(p.filename)
		p.loads++
	}
	return p.real.Display()
}

// Loads reports how many times the real image was loaded.
func (p *ImageProxy) Loads() int {
	return p.loads
}
