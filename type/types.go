package i2stypes

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidInput 输入缓冲区为空或尺寸非法
	ErrInvalidInput = errors.New("invalid input buffer")
	// ErrConversionFailed 解码或转换失败（对外统一错误）
	ErrConversionFailed = errors.New("conversion failed")
)

// PixelBuffer 表示解码后的像素缓冲区
// 行优先的 RGBA 字节序列，每像素 4 字节，alpha 未预乘
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// Validate 校验缓冲区尺寸与数据长度
func (p *PixelBuffer) Validate() error {
	if p == nil || p.Width <= 0 || p.Height <= 0 || len(p.Pix) == 0 {
		return ErrInvalidInput
	}
	if len(p.Pix) < p.Width*p.Height*4 {
		return fmt.Errorf("%w: pixel data too short for %dx%d", ErrInvalidInput, p.Width, p.Height)
	}
	return nil
}

// At 读取 (x, y) 处的 RGBA 四通道
func (p *PixelBuffer) At(x, y int) (r, g, b, a uint8) {
	i := (y*p.Width + x) * 4
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3]
}

// ColorKey 量化后的颜色桶：分组的唯一依据
// R/G/B 已取整到偶数，A 已取整到 1/20 步长
type ColorKey struct {
	R, G, B uint8
	A       float64
}

// Fill 渲染为 CSS rgba() 颜色值
func (k ColorKey) Fill() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)",
		k.R, k.G, k.B, strconv.FormatFloat(k.A, 'f', -1, 64))
}

// Rect 矩形：采样格（宽高均为步长）与合并后的矩形共用此结构
type Rect struct {
	X, Y          int
	Width, Height int
}

// Sample 一次采样结果：一个格子与其颜色桶
type Sample struct {
	Rect Rect
	Key  ColorKey
}

// ColorGroup 某颜色桶下的全部矩形，顺序为发现顺序
type ColorGroup struct {
	Key   ColorKey
	Rects []Rect
}

// FrameDocument 视频单帧的转换结果
type FrameDocument struct {
	Index int
	SVG   string
}
