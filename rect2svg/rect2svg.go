package rect2svg

import (
	"bytes"
	"fmt"
	"io"

	i2stypes "image2svg/type"

	svg "github.com/ajstarks/svgo"
	"github.com/klauspost/compress/gzip"
)

// Write 将合并结果渲染为 SVG 文档写入 w
// 文档声明 width/height 与 viewBox="0 0 w h"，每个矩形一条 rect 指令
// 颜色顺序为发现顺序，输出完全确定
func Write(w io.Writer, width, height int, groups []i2stypes.ColorGroup) {
	canvas := svg.New(w)
	canvas.Startview(width, height, 0, 0, width, height)
	for _, g := range groups {
		fill := fmt.Sprintf("fill=%q", g.Key.Fill())
		for _, r := range g.Rects {
			canvas.Rect(r.X, r.Y, r.Width, r.Height, fill)
		}
	}
	canvas.End()
}

// Document 渲染为字符串
func Document(width, height int, groups []i2stypes.ColorGroup) string {
	var buf bytes.Buffer
	Write(&buf, width, height, groups)
	return buf.String()
}

// WriteGzip 渲染为 gzip 压缩的 SVG（.svgz）
func WriteGzip(w io.Writer, width, height int, groups []i2stypes.ColorGroup) error {
	zw := gzip.NewWriter(w)
	Write(zw, width, height, groups)
	if err := zw.Close(); err != nil {
		return fmt.Errorf("gzip svg failed: %w", err)
	}
	return nil
}
