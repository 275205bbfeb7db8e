package image2cell

import (
	"testing"

	i2stypes "image2svg/type"
)

func TestSampleRate(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want int
	}{
		{"tiny", 10, 10, 1},
		{"exact 400", 400, 400, 1},
		{"just above", 401, 800, 1},
		{"double", 800, 800, 2},
		{"triple", 1200, 1200, 3},
		{"short side wins", 4000, 399, 1},
		{"tall", 400, 1200, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SampleRate(tt.w, tt.h); got != tt.want {
				t.Errorf("SampleRate(%d, %d) = %d, want %d", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint8
		want       i2stypes.ColorKey
	}{
		{"pure red", 255, 0, 0, 255, i2stypes.ColorKey{R: 254, G: 0, B: 0, A: 1}},
		{"even channel", 100, 100, 100, 255, i2stypes.ColorKey{R: 100, G: 100, B: 100, A: 1}},
		{"odd channel", 101, 101, 101, 255, i2stypes.ColorKey{R: 100, G: 100, B: 100, A: 1}},
		{"black", 0, 0, 0, 255, i2stypes.ColorKey{R: 0, G: 0, B: 0, A: 1}},
		{"half alpha", 10, 20, 30, 128, i2stypes.ColorKey{R: 10, G: 20, B: 30, A: 0.5}},
		{"low alpha", 2, 4, 6, 13, i2stypes.ColorKey{R: 2, G: 4, B: 6, A: 0.05}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.r, tt.g, tt.b, tt.a); got != tt.want {
				t.Errorf("Quantize(%d, %d, %d, %d) = %+v, want %+v", tt.r, tt.g, tt.b, tt.a, got, tt.want)
			}
		})
	}
}

// 相邻的奇偶通道值必须落入同一个颜色桶
func TestQuantizeBucketStability(t *testing.T) {
	k1 := Quantize(100, 100, 100, 255)
	k2 := Quantize(101, 101, 101, 255)
	if k1 != k2 {
		t.Errorf("keys differ: %+v vs %+v", k1, k2)
	}
}

func TestColorKeyFill(t *testing.T) {
	tests := []struct {
		key  i2stypes.ColorKey
		want string
	}{
		{i2stypes.ColorKey{R: 254, G: 0, B: 0, A: 1}, "rgba(254,0,0,1)"},
		{i2stypes.ColorKey{R: 100, G: 100, B: 100, A: 0.5}, "rgba(100,100,100,0.5)"},
		{i2stypes.ColorKey{R: 0, G: 0, B: 0, A: 0.05}, "rgba(0,0,0,0.05)"},
		{i2stypes.ColorKey{R: 10, G: 20, B: 30, A: 0.15}, "rgba(10,20,30,0.15)"},
	}
	for _, tt := range tests {
		if got := tt.key.Fill(); got != tt.want {
			t.Errorf("Fill() = %q, want %q", got, tt.want)
		}
	}
}

func solidBuffer(w, h int, r, g, b, a uint8) *i2stypes.PixelBuffer {
	pix := make([]uint8, w*h*4)
	for i := 0; i < w*h; i++ {
		pix[i*4] = r
		pix[i*4+1] = g
		pix[i*4+2] = b
		pix[i*4+3] = a
	}
	return &i2stypes.PixelBuffer{Width: w, Height: h, Pix: pix}
}

func TestSampleTransparencyExcluded(t *testing.T) {
	buf := solidBuffer(4, 4, 255, 0, 0, 0)
	if got := Sample(buf, 1); len(got) != 0 {
		t.Errorf("fully transparent buffer produced %d samples", len(got))
	}
}

func TestSampleRowMajorOrder(t *testing.T) {
	buf := solidBuffer(3, 3, 10, 20, 30, 255)
	samples := Sample(buf, 2)

	wantAnchors := []i2stypes.Rect{
		{X: 0, Y: 0, Width: 2, Height: 2},
		{X: 2, Y: 0, Width: 2, Height: 2},
		{X: 0, Y: 2, Width: 2, Height: 2},
		{X: 2, Y: 2, Width: 2, Height: 2},
	}
	if len(samples) != len(wantAnchors) {
		t.Fatalf("got %d samples, want %d", len(samples), len(wantAnchors))
	}
	for i, want := range wantAnchors {
		if samples[i].Rect != want {
			t.Errorf("sample %d rect = %+v, want %+v", i, samples[i].Rect, want)
		}
	}
}

// 边缘格不裁剪：宽高恒为步长
func TestSampleEdgeCellsKeepStride(t *testing.T) {
	buf := solidBuffer(5, 5, 10, 20, 30, 255)
	for _, s := range Sample(buf, 3) {
		if s.Rect.Width != 3 || s.Rect.Height != 3 {
			t.Errorf("cell %+v not stride-sized", s.Rect)
		}
	}
}

func TestSampleMixedAlpha(t *testing.T) {
	buf := solidBuffer(2, 1, 255, 0, 0, 255)
	// 右像素全透明
	buf.Pix[7] = 0
	samples := Sample(buf, 1)
	if len(samples) != 1 {
		t.Fatalf("got %d samples, want 1", len(samples))
	}
	if samples[0].Rect.X != 0 || samples[0].Rect.Y != 0 {
		t.Errorf("unexpected sample %+v", samples[0].Rect)
	}
}
