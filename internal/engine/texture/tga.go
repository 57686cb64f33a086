// Package texture provides image decoding for GPU upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // registers the PNG decoder for Decode
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder registration
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

// Decode decodes an image by file name, using DecodeTGA for .tga files and
// the registered image decoders otherwise. The result is always RGBA.
func Decode(name string, data []byte) (*image.RGBA, error) {
	var img image.Image
	var err error

	if strings.HasSuffix(strings.ToLower(name), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return ToRGBA(img), nil
}

// ToRGBA returns img as *image.RGBA, converting only when needed.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}

// DecodeTGA decodes a TGA image file.
// Supports uncompressed true-color (type 2) and RLE compressed (type 10) files.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	// Bytes 3-11 hold the color map fields and image origin, unused here
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty TGA image %dx%d", width, height)
	}
	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}

	d := &tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		pixels:      data[offset:],
		width:       width,
		height:      height,
		bpp:         bpp / 8,
		topToBottom: descriptor&0x20 != 0,
	}

	if imageType == TGATypeUncompressed {
		if len(d.pixels) < width*height*d.bpp {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}
		for n := 0; n < width*height; n++ {
			c, _ := d.next()
			d.set(n, c)
		}
	} else {
		d.decodeRLE()
	}

	return d.img, nil
}

// tgaDecoder walks BGR(A) pixel data and writes it into an RGBA image.
type tgaDecoder struct {
	img         *image.RGBA
	pixels      []byte
	pos         int
	width       int
	height      int
	bpp         int
	topToBottom bool
}

// next reads one pixel. ok is false when the data runs out.
func (d *tgaDecoder) next() (c color.RGBA, ok bool) {
	if d.pos+d.bpp > len(d.pixels) {
		return c, false
	}
	p := d.pixels[d.pos:]
	c = color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bpp == 4 {
		c.A = p[3]
	}
	d.pos += d.bpp
	return c, true
}

// set stores the n-th pixel in file order, flipping rows for bottom-up files.
func (d *tgaDecoder) set(n int, c color.RGBA) {
	x := n % d.width
	y := n / d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

// decodeRLE expands run-length packets. Truncated data leaves the rest of
// the image transparent.
func (d *tgaDecoder) decodeRLE() {
	total := d.width * d.height
	n := 0

	for n < total && d.pos < len(d.pixels) {
		header := d.pixels[d.pos]
		d.pos++
		count := int(header&0x7F) + 1

		if header&0x80 != 0 {
			c, ok := d.next()
			if !ok {
				return
			}
			for i := 0; i < count && n < total; i++ {
				d.set(n, c)
				n++
			}
			continue
		}

		for i := 0; i < count && n < total; i++ {
			c, ok := d.next()
			if !ok {
				return
			}
			d.set(n, c)
			n++
		}
	}
}
