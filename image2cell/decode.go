package image2cell

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	i2stypes "image2svg/type"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Decode 解码图片字节流，支持 PNG/JPEG/GIF/WebP
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image failed: %w", err)
	}
	return img, nil
}

// Resize 将图片等比缩小到长边不超过 maxDim
// maxDim <= 0 或图片本身不超限时原样返回
func Resize(img image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	long := w
	if h > long {
		long = h
	}
	if long <= maxDim {
		return img
	}
	scale := float64(maxDim) / float64(long)
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// FromImage 将解码结果拷贝为未预乘的像素缓冲区
func FromImage(img image.Image) *i2stypes.PixelBuffer {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != image.Pt(0, 0) || nrgba.Stride != b.Dx()*4 {
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		nrgba = dst
	}
	return &i2stypes.PixelBuffer{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    nrgba.Pix,
	}
}

// DecodeBuffer 解码并缩放，产出核心消费的像素缓冲区
func DecodeBuffer(data []byte, maxDim int) (*i2stypes.PixelBuffer, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return FromImage(Resize(img, maxDim)), nil
}
