package video2svg

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"strconv"

	"image2svg/image2cell"
	i2stypes "image2svg/type"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame 一帧解码结果
type Frame struct {
	Index  int
	Buffer *i2stypes.PixelBuffer
}

// ExtractFrames 用 ffmpeg 按 fps 抽帧并缩放到 maxWidth，解码为像素缓冲区
func ExtractFrames(ctx context.Context, videoPath string, fps, maxWidth int) ([]Frame, error) {
	if fps <= 0 {
		fps = 1
	}

	r, w := io.Pipe()

	cmd := ffmpeg.Input(videoPath).
		Output("pipe:1", ffmpeg.KwArgs{
			"format": "image2pipe",
			"vcodec": "png",
			"r":      strconv.Itoa(fps),
			"vf":     fmt.Sprintf("scale=%d:-1", maxWidth),
		}).
		WithOutput(w).
		WithErrorOutput(os.Stderr)
	cmd.Context = ctx

	go func() {
		w.CloseWithError(cmd.Run())
	}()

	var frames []Frame
	reader := bufio.NewReader(r)
	index := 0

	for {
		img, _, err := image.Decode(reader)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode frame %d failed: %w", index, err)
		}
		frames = append(frames, Frame{Index: index, Buffer: image2cell.FromImage(img)})
		index++
	}

	if len(frames) == 0 {
		return nil, errors.New("no frames extracted")
	}

	return frames, nil
}
