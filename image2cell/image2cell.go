package image2cell

import (
	"math"

	i2stypes "image2svg/type"
)

// SampleRate 根据图像尺寸计算采样步长
// 短边不超过 400px 时逐像素采样，更大的图按比例加大步长以控制输出规模
func SampleRate(width, height int) int {
	short := width
	if height < short {
		short = height
	}
	rate := short / 400
	if rate < 1 {
		rate = 1
	}
	return rate
}

// Quantize 将一个像素量化为颜色桶
// RGB 各通道向下取整到偶数，alpha 取整到 1/20 步长
func Quantize(r, g, b, a uint8) i2stypes.ColorKey {
	return i2stypes.ColorKey{
		R: r &^ 1,
		G: g &^ 1,
		B: b &^ 1,
		A: quantizeAlpha(a),
	}
}

func quantizeAlpha(a uint8) float64 {
	return math.Round(float64(a)/255*20) / 20
}

// Sample 以固定步长遍历缓冲区，逐格采样锚点像素
// 全透明像素直接丢弃；边缘格不裁剪，宽高恒为步长
// 返回序列保持行优先扫描顺序
func Sample(buf *i2stypes.PixelBuffer, stride int) []i2stypes.Sample {
	if stride < 1 {
		stride = 1
	}
	var samples []i2stypes.Sample
	for y := 0; y < buf.Height; y += stride {
		for x := 0; x < buf.Width; x += stride {
			r, g, b, a := buf.At(x, y)
			if a == 0 {
				continue
			}
			samples = append(samples, i2stypes.Sample{
				Rect: i2stypes.Rect{X: x, Y: y, Width: stride, Height: stride},
				Key:  Quantize(r, g, b, a),
			})
		}
	}
	return samples
}
