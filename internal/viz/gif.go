package viz

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"os"
)

const (
	gifCharW = 8
	gifCharH = 16
)

// GIFRecorder collects canvas frames as paletted images.
type GIFRecorder struct {
	Background color.RGBA
	// Delay between frames in 100ths of a second.
	Delay  int
	frames []*image.Paletted
}

func NewGIFRecorder(bg color.RGBA, fps int) *GIFRecorder {
	delay := 2
	if fps > 0 {
		delay = max(1, 100/fps)
	}
	return &GIFRecorder{Background: bg, Delay: delay}
}

func (r *GIFRecorder) Len() int { return len(r.frames) }

func (r *GIFRecorder) Reset() { r.frames = nil }

// Capture rasterizes every Braille dot of c as a block in its cell color.
func (r *GIFRecorder) Capture(c *Canvas) {
	imgW, imgH := c.Width*gifCharW, c.Height*gifCharH
	pal := color.Palette(palette.Plan9)
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), pal)
	bg := uint8(pal.Index(r.Background))
	for i := range img.Pix {
		img.Pix[i] = bg
	}
	dotW, dotH := gifCharW/2, gifCharH/4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := int(c.Grid[row][col] - brailleBlank)
			if pattern <= 0 {
				continue
			}
			idx := uint8(pal.Index(c.Colors[row][col]))
			baseX, baseY := col*gifCharW, row*gifCharH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, idx)
						}
					}
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

// Encode writes the captured frames as a looping GIF.
func (r *GIFRecorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

// Save encodes the recording to path.
func (r *GIFRecorder) Save(path string) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
