package svg2json

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"sync"

	rustyozsvg "github.com/rustyoz/svg"
)

// RectData 单个矩形指令
type RectData struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Fill   string `json:"fill"`
}

// DocumentData 文档的 JSON 形式
type DocumentData struct {
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	ViewBox [4]int     `json:"viewBox"`
	Rects   []RectData `json:"rects"`
}

// Parse 解析生成的 SVG 文档，提取 viewBox 与全部 rect 指令
func Parse(svgText string) (DocumentData, error) {
	parsed, err := rustyozsvg.ParseSvg(svgText, "doc", 1.0)
	if err != nil {
		return DocumentData{}, fmt.Errorf("parse svg failed: %w", err)
	}

	// 从 viewBox 读取 4 个整数
	var box [4]int
	split := strings.Fields(parsed.ViewBox)
	if len(split) != 4 {
		return DocumentData{}, fmt.Errorf("bad viewBox %q", parsed.ViewBox)
	}
	for i, s := range split {
		box[i], err = strconv.Atoi(s)
		if err != nil {
			return DocumentData{}, fmt.Errorf("bad viewBox %q: %w", parsed.ViewBox, err)
		}
	}

	rects, err := extractRects(svgText)
	if err != nil {
		return DocumentData{}, err
	}
	return DocumentData{
		Width:   box[2],
		Height:  box[3],
		ViewBox: box,
		Rects:   rects,
	}, nil
}

// ParseJSON 返回 JSON 字节串
func ParseJSON(svgText string) ([]byte, error) {
	doc, err := Parse(svgText)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ParseAll 并行解析多个文档，parallel 为并发上限
func ParseAll(docs []string, parallel int) ([]DocumentData, error) {
	if parallel <= 0 {
		parallel = 1
	}
	results := make([]DocumentData, len(docs))
	errs := make(chan error, len(docs))
	sem := make(chan struct{}, parallel)

	var wg sync.WaitGroup
	for i, d := range docs {
		wg.Add(1)
		go func(idx int, svgText string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			doc, err := Parse(svgText)
			if err != nil {
				errs <- fmt.Errorf("document %d: %w", idx, err)
				return
			}
			results[idx] = doc
		}(i, d)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		return nil, err
	}
	return results, nil
}

// extractRects 从 SVG 字符串中提取所有 <rect> 的属性
func extractRects(svgText string) ([]RectData, error) {
	type rectElem struct {
		X      int    `xml:"x,attr"`
		Y      int    `xml:"y,attr"`
		Width  int    `xml:"width,attr"`
		Height int    `xml:"height,attr"`
		Fill   string `xml:"fill,attr"`
	}
	type svgElem struct {
		Rects []rectElem `xml:"rect"`
	}

	var s svgElem
	if err := xml.Unmarshal([]byte(svgText), &s); err != nil {
		return nil, fmt.Errorf("unmarshal svg failed: %w", err)
	}
	rects := make([]RectData, len(s.Rects))
	for i, r := range s.Rects {
		rects[i] = RectData(r)
	}
	return rects, nil
}
