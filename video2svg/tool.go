package video2svg

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// VideoProbe 只关心视频流
type VideoProbe struct {
	Streams []struct {
		CodecType    string `json:"codec_type"`
		NbFrames     string `json:"nb_frames"`      // 有些视频是字符串
		AvgFrameRate string `json:"avg_frame_rate"` // fallback
	} `json:"streams"`
}

// TotalFrames 从 probe 数据解析总帧数
func TotalFrames(videoPath string) (int, error) {
	probeStr, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return 0, fmt.Errorf("ffprobe error: %w", err)
	}
	return parseTotalFrames(probeStr)
}

func parseTotalFrames(probeStr string) (int, error) {
	var probe VideoProbe
	if err := json.Unmarshal([]byte(probeStr), &probe); err != nil {
		return 0, fmt.Errorf("json unmarshal error: %w", err)
	}

	for _, stream := range probe.Streams {
		if stream.CodecType == "video" {
			if stream.NbFrames != "" && stream.NbFrames != "0" {
				// nb_frames 存在则直接返回
				n, err := strconv.Atoi(stream.NbFrames)
				if err == nil {
					return n, nil
				}
			}
			// 如果 nb_frames 不存在，则使用 avg_frame_rate 估算
			if stream.AvgFrameRate != "" && stream.AvgFrameRate != "0/0" {
				parts := strings.Split(stream.AvgFrameRate, "/")
				if len(parts) == 2 {
					num, _ := strconv.ParseFloat(parts[0], 64)
					den, _ := strconv.ParseFloat(parts[1], 64)
					if den != 0 {
						return int(num / den), nil
					}
				}
			}
		}
	}

	return 0, fmt.Errorf("no video stream found or cannot determine frame count")
}
