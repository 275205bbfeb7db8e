package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

// Config 服务与转换的运行参数
type Config struct {
	Listen         string `yaml:"listen"`
	MaxUploadBytes int64  `yaml:"maxUploadBytes"`
	MaxDimension   int    `yaml:"maxDimension"`
	Parallel       int    `yaml:"parallel"`
	S3Bucket       string `yaml:"s3Bucket"`
	S3Prefix       string `yaml:"s3Prefix"`
}

// Default 默认配置：监听 :8080，上传上限 10MB，长边缩到 1200px
func Default() *Config {
	return &Config{
		Listen:         ":8080",
		MaxUploadBytes: 10 << 20,
		MaxDimension:   1200,
		Parallel:       4,
	}
}

// Load 读取 YAML 配置文件，文件不存在时返回默认配置
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Configuration file '%s' not found. Using defaults.", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read configuration file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file '%s': %w", path, err)
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}
	if cfg.Parallel <= 0 {
		cfg.Parallel = 1
	}
	return cfg, nil
}
