package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"image2svg/config"
	"image2svg/store"
	i2stypes "image2svg/type"
)

type server struct {
	cfg   *config.Config
	store *store.S3Store
	sem   chan struct{}
}

func newServer(cfg *config.Config) *server {
	parallel := cfg.Parallel
	if parallel < 1 {
		parallel = 1
	}
	return &server{
		cfg: cfg,
		sem: make(chan struct{}, parallel),
	}
}

// runServer 启动上传转换服务
func runServer(cfg *config.Config) error {
	srv := newServer(cfg)
	if cfg.S3Bucket != "" {
		s3, err := store.New(cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return err
		}
		srv.store = s3
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/convert", srv.handleConvert)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	log.Printf("Listening on %s\n", cfg.Listen)
	return http.ListenAndServe(cfg.Listen, mux)
}

// handleConvert 接收 multipart 单文件上传，返回 {"svg": ...}
// 任何解码或转换失败统一折叠为 500，不暴露失败阶段
func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image file")
		return
	}

	// 按配置的 parallel 限制同时进行的转换数
	s.sem <- struct{}{}
	doc, err := ConvertImage(data, s.cfg.MaxDimension)
	<-s.sem
	if err != nil {
		if errors.Is(err, i2stypes.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid image")
			return
		}
		log.Printf("convert failed: %v\n", err)
		writeError(w, http.StatusInternalServerError, "conversion failed")
		return
	}

	if s.store != nil {
		name := fmt.Sprintf("convert-%d.svg", time.Now().UnixNano())
		if loc, err := s.store.Put(name, strings.NewReader(doc)); err != nil {
			log.Printf("store failed: %v\n", err)
		} else {
			log.Printf("stored %s\n", loc)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"svg": doc})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
