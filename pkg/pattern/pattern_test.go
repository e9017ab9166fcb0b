package pattern

import (
	"bytes"
	"image/color"
	stdpng "image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfielding/pngen.go/pkg/png"
)

func TestCheckerboard_Squares(t *testing.T) {
	// 8x4 with 2 squares: side 2
	img, err := Checkerboard(8, 4, 2, png.Truecolour, White, Black)
	require.NoError(t, err)
	require.NoError(t, img.Validate(png.Truecolour))

	w, b := png.RGB(255, 255, 255), png.RGB(0, 0, 0)
	want := png.Image{
		{b, b, w, w, b, b, w, w},
		{b, b, w, w, b, b, w, w},
		{w, w, b, b, w, w, b, b},
		{w, w, b, b, w, w, b, b},
	}
	assert.Equal(t, want, img)
}

func TestCheckerboard_FractionalSide(t *testing.T) {
	// side 2.5: columns 0-2 off, 3-4 on, 5-7 off (5.0 starts a new pair)
	img, err := Checkerboard(10, 5, 2, png.Truecolour, White, Black)
	require.NoError(t, err)

	var got []uint8
	for _, px := range img[0] {
		got = append(got, px[0])
	}
	assert.Equal(t, []uint8{0, 0, 0, 255, 255, 0, 0, 0, 255, 255}, got)
	assert.Equal(t, uint8(255), img[3][0][0], "row 3 is past 2.5 so starts on")
}

func TestCheckerboard_Alpha(t *testing.T) {
	img, err := Checkerboard(4, 4, 2, png.TruecolourWithAlpha, colorOf(t, "red"), color.NRGBA{B: 255, A: 128})
	require.NoError(t, err)
	require.NoError(t, img.Validate(png.TruecolourWithAlpha))
	assert.Equal(t, png.RGBA(0, 0, 255, 128), img[0][0])
	assert.Equal(t, png.RGBA(255, 0, 0, 255), img[0][2])
}

func TestCheckerboard_Errors(t *testing.T) {
	_, err := Checkerboard(0, 10, 2, png.Truecolour, White, Black)
	assert.Error(t, err)
	_, err = Checkerboard(10, 10, 0, png.Truecolour, White, Black)
	assert.Error(t, err)
	_, err = Checkerboard(10, 10, 2, png.Greyscale, White, Black)
	assert.ErrorIs(t, err, png.ErrUnsupportedColorType)
}

func TestCheckerboard_Encodes(t *testing.T) {
	for _, ct := range []png.ColorType{png.Truecolour, png.TruecolourWithAlpha} {
		t.Run(ct.String(), func(t *testing.T) {
			img, err := Checkerboard(1024, 768, 15, ct, White, Black)
			require.NoError(t, err)

			var buf bytes.Buffer
			n, err := png.Write(&buf, ct, img)
			require.NoError(t, err)
			assert.Greater(t, n, int64(0))

			decoded, err := stdpng.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, 1024, decoded.Bounds().Dx())
			assert.Equal(t, 768, decoded.Bounds().Dy())
		})
	}
}

func TestSolid(t *testing.T) {
	img, err := Solid(3, 2, png.Truecolour, colorOf(t, "#102030"))
	require.NoError(t, err)
	for _, row := range img {
		for _, px := range row {
			assert.Equal(t, png.RGB(0x10, 0x20, 0x30), px)
		}
	}

	_, err = Solid(3, -1, png.Truecolour, Black)
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"black", Black, false},
		{"White", White, false},
		{"cornflowerblue", color.NRGBA{R: 0x64, G: 0x95, B: 0xed, A: 0xff}, false},
		{"#ff8000", color.NRGBA{R: 0xff, G: 0x80, A: 0xff}, false},
		{"#ff800040", color.NRGBA{R: 0xff, G: 0x80, A: 0x40}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
		{"notacolor", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func colorOf(t *testing.T, s string) color.NRGBA {
	t.Helper()
	c, err := ParseColor(s)
	require.NoError(t, err)
	return c
}
