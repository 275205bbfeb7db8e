package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"image2svg/config"
	"image2svg/rect2svg"
	"image2svg/store"
)

func main() {

	inputPath := flag.String("input", "", "输入图片或视频路径")
	outputPath := flag.String("output", "", "输出文件路径，默认与输入同名")
	maxDim := flag.Int("maxdim", 1200, "转换前长边缩放上限，0 表示不缩放")
	gzipOut := flag.Bool("gzip", false, "输出 gzip 压缩的 .svgz")
	jsonOut := flag.Bool("json", false, "同时输出矩形列表 JSON")
	serve := flag.Bool("serve", false, "以 HTTP 服务模式运行")
	configPath := flag.String("config", "image2svg.yaml", "配置文件路径")
	video := flag.Bool("video", false, "视频模式：逐帧输出 SVG")
	fps := flag.Int("fps", 10, "视频模式每秒帧数")
	maxWidth := flag.Int("width", 96, "视频模式帧最大宽度")
	parallel := flag.Int("parallel", 4, "并行处理的最大协程数")
	s3Bucket := flag.String("s3", "", "上传结果到指定 S3 bucket")
	s3Prefix := flag.String("s3prefix", "", "S3 对象前缀")

	help := flag.Bool("help", false, "显示帮助信息")
	flag.Parse()
	if *help {
		flag.Usage()
		return
	}

	if *serve {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		log.Fatal(runServer(cfg))
	}

	if *inputPath == "" {
		flag.Usage()
		return
	}

	ctx := context.Background()

	if *video {
		docs, err := generateFrameDocs(ctx, *inputPath, *fps, *maxWidth, *parallel)
		if err != nil {
			log.Fatal(err)
		}
		out := *outputPath
		if out == "" {
			out = strings.TrimSuffix(*inputPath, filepath.Ext(*inputPath))
		}
		if err := writeFrameDocs(docs, out); err != nil {
			log.Fatal(err)
		}
		if *jsonOut {
			if err := writeFrameJSON(docs, out, *parallel); err != nil {
				log.Fatal(err)
			}
		}
		log.Printf("Wrote %d frame documents\n", len(docs))
		return
	}

	convertFile(*inputPath, *outputPath, *maxDim, *gzipOut, *jsonOut, *s3Bucket, *s3Prefix)
}

// convertFile 单张图片转换并落盘，可选上传 S3
func convertFile(inputPath, outputPath string, maxDim int, gzipOut, jsonOut bool, s3Bucket, s3Prefix string) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatal(err)
	}

	buf, groups, err := convertGroups(data, maxDim)
	if err != nil {
		log.Fatal(err)
	}

	out := outputPath
	if out == "" {
		ext := ".svg"
		if gzipOut {
			ext = ".svgz"
		}
		out = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ext
	}

	f, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	if gzipOut {
		err = rect2svg.WriteGzip(f, buf.Width, buf.Height, groups)
	} else {
		rect2svg.Write(f, buf.Width, buf.Height, groups)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s\n", out)

	if jsonOut {
		doc := rect2svg.Document(buf.Width, buf.Height, groups)
		jsonPath := strings.TrimSuffix(out, filepath.Ext(out)) + ".json"
		if err := writeDocJSON(jsonPath, doc); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s\n", jsonPath)
	}

	if s3Bucket != "" {
		s3, err := store.New(s3Bucket, s3Prefix)
		if err != nil {
			log.Fatal(err)
		}
		doc := rect2svg.Document(buf.Width, buf.Height, groups)
		loc, err := s3.Put(filepath.Base(out), strings.NewReader(doc))
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Uploaded %s\n", loc)
	}
}
