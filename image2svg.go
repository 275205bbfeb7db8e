package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"image2svg/cell2rect"
	"image2svg/image2cell"
	"image2svg/rect2svg"
	"image2svg/svg2json"
	i2stypes "image2svg/type"
	"image2svg/video2svg"
)

// Convert 核心转换：像素缓冲区 -> SVG 文档
// 步长由图像尺寸自动确定；输入非法时返回 ErrInvalidInput，不产出部分文档
func Convert(buf *i2stypes.PixelBuffer) (string, error) {
	if err := buf.Validate(); err != nil {
		return "", err
	}
	return ConvertWithStride(buf, image2cell.SampleRate(buf.Width, buf.Height))
}

// ConvertWithStride 指定步长的转换，输入相同则输出字节级一致
func ConvertWithStride(buf *i2stypes.PixelBuffer, stride int) (string, error) {
	if err := buf.Validate(); err != nil {
		return "", err
	}
	samples := image2cell.Sample(buf, stride)
	groups := cell2rect.GroupAndMerge(samples)
	return rect2svg.Document(buf.Width, buf.Height, groups), nil
}

// ConvertImage 解码图片字节流（必要时缩小到 maxDim）后转换
// 解码失败统一折叠为 ErrConversionFailed
func ConvertImage(data []byte, maxDim int) (string, error) {
	buf, groups, err := convertGroups(data, maxDim)
	if err != nil {
		return "", err
	}
	return rect2svg.Document(buf.Width, buf.Height, groups), nil
}

// convertGroups 解码并执行采样与合并，供序列化为普通或压缩形式
func convertGroups(data []byte, maxDim int) (*i2stypes.PixelBuffer, []i2stypes.ColorGroup, error) {
	buf, err := image2cell.DecodeBuffer(data, maxDim)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", i2stypes.ErrConversionFailed, err)
	}
	if err := buf.Validate(); err != nil {
		return nil, nil, err
	}
	samples := image2cell.Sample(buf, image2cell.SampleRate(buf.Width, buf.Height))
	return buf, cell2rect.GroupAndMerge(samples), nil
}

// generateFrameDocs 视频模式：逐帧提取并并行转换
func generateFrameDocs(ctx context.Context, videoPath string, fps, maxWidth, parallel int) ([]i2stypes.FrameDocument, error) {
	if total, err := video2svg.TotalFrames(videoPath); err == nil {
		log.Printf("Source reports %d frames\n", total)
	}
	log.Println("Extracting frames from video...")
	frames, err := video2svg.ExtractFrames(ctx, videoPath, fps, maxWidth)
	if err != nil {
		return nil, err
	}
	log.Printf("Extracted %d frames\n", len(frames))

	if parallel <= 0 {
		parallel = 1
	}
	docs := make([]i2stypes.FrameDocument, len(frames))
	errs := make(chan error, len(frames))
	sem := make(chan struct{}, parallel)

	var wg sync.WaitGroup
	for i, f := range frames {
		wg.Add(1)
		go func(idx int, frame video2svg.Frame) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			doc, err := Convert(frame.Buffer)
			if err != nil {
				errs <- fmt.Errorf("frame %d: %w", frame.Index, err)
				return
			}
			docs[idx] = i2stypes.FrameDocument{Index: frame.Index, SVG: doc}
		}(i, f)
	}
	wg.Wait()
	close(errs)

	// 返回第一个错误（如果有）
	for err := range errs {
		return nil, err
	}
	return docs, nil
}

// writeFrameDocs 将各帧文档写为 outputPath_N.svg
func writeFrameDocs(docs []i2stypes.FrameDocument, outputPath string) error {
	for _, d := range docs {
		name := outputPath + "_" + strconv.Itoa(d.Index) + ".svg"
		if err := os.WriteFile(name, []byte(d.SVG), 0644); err != nil {
			return fmt.Errorf("write %s failed: %w", name, err)
		}
	}
	return nil
}

// writeDocJSON 将文档的矩形列表另存为 JSON
func writeDocJSON(path, doc string) error {
	data, err := svg2json.ParseJSON(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s failed: %w", path, err)
	}
	return nil
}

// writeFrameJSON 并行解析各帧文档并写为 outputPath_N.json
func writeFrameJSON(docs []i2stypes.FrameDocument, outputPath string, parallel int) error {
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.SVG
	}
	parsed, err := svg2json.ParseAll(texts, parallel)
	if err != nil {
		return err
	}
	for i, p := range parsed {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		name := outputPath + "_" + strconv.Itoa(docs[i].Index) + ".json"
		if err := os.WriteFile(name, data, 0644); err != nil {
			return fmt.Errorf("write %s failed: %w", name, err)
		}
	}
	return nil
}
