package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

// tgaHeader builds an 18-byte TGA header.
func tgaHeader(imageType byte, w, h, bpp int, topToBottom bool) []byte {
	hdr := make([]byte, 18)
	hdr[2] = imageType
	hdr[12] = byte(w)
	hdr[13] = byte(w >> 8)
	hdr[14] = byte(h)
	hdr[15] = byte(h >> 8)
	hdr[16] = byte(bpp)
	if topToBottom {
		hdr[17] = 0x20
	}
	return hdr
}

func TestDecodeTGA_Uncompressed(t *testing.T) {
	// 2x2, 24-bit, bottom-up: first row in file is the bottom row
	data := tgaHeader(TGATypeUncompressed, 2, 2, 24, false)
	data = append(data,
		0, 0, 255, 0, 255, 0, // bottom: red, green
		255, 0, 0, 255, 255, 255, // top: blue, white
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 1, color.RGBA{255, 0, 0, 255}},
		{1, 1, color.RGBA{0, 255, 0, 255}},
		{0, 0, color.RGBA{0, 0, 255, 255}},
		{1, 0, color.RGBA{255, 255, 255, 255}},
	}
	rgba := img.(*image.RGBA)
	for _, tt := range tests {
		if got := rgba.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDecodeTGA_RLE32TopDown(t *testing.T) {
	data := tgaHeader(TGATypeRLE, 3, 1, 32, true)
	data = append(data,
		0x81, 10, 20, 30, 40, // run of 2
		0x00, 1, 2, 3, 4, // raw packet of 1
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	rgba := img.(*image.RGBA)

	run := color.RGBA{30, 20, 10, 40}
	if rgba.RGBAAt(0, 0) != run || rgba.RGBAAt(1, 0) != run {
		t.Errorf("run pixels = %v %v, want %v", rgba.RGBAAt(0, 0), rgba.RGBAAt(1, 0), run)
	}
	if got := rgba.RGBAAt(2, 0); got != (color.RGBA{3, 2, 1, 4}) {
		t.Errorf("raw pixel = %v", got)
	}
}

func TestDecodeTGA_Errors(t *testing.T) {
	colorMapped := tgaHeader(TGATypeUncompressed, 1, 1, 24, false)
	colorMapped[1] = 1

	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte{0, 0, 2}},
		{"color mapped", colorMapped},
		{"grayscale type", tgaHeader(3, 1, 1, 24, false)},
		{"zero width", tgaHeader(TGATypeUncompressed, 0, 1, 24, false)},
		{"zero height", tgaHeader(TGATypeRLE, 1, 0, 32, false)},
		{"16 bit", tgaHeader(TGATypeUncompressed, 1, 1, 16, false)},
		{"truncated pixels", append(tgaHeader(TGATypeUncompressed, 2, 2, 24, false), 1, 2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecode_ByExtension(t *testing.T) {
	tga := append(tgaHeader(TGATypeUncompressed, 1, 1, 24, true), 0, 0, 255)
	img, err := Decode("tunnelUnit.TGA", tga)
	if err != nil {
		t.Fatalf("Decode tga failed: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("tga pixel = %v", got)
	}

	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.NRGBA{0, 0, 255, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	img, err = Decode("tunnel.png", buf.Bytes())
	if err != nil {
		t.Fatalf("Decode png failed: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("png pixel = %v", got)
	}

	buf.Reset()
	src.Set(0, 0, color.NRGBA{0, 255, 0, 255})
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("bmp encode failed: %v", err)
	}
	img, err = Decode("tunnel.bmp", buf.Bytes())
	if err != nil {
		t.Fatalf("Decode bmp failed: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("bmp pixel = %v", got)
	}

	if _, err := Decode("broken.png", []byte("nope")); err == nil {
		t.Error("expected error for invalid png")
	}
}
