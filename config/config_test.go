package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if *cfg != *def {
		t.Errorf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image2svg.yaml")
	data := `listen: ":9090"
maxUploadBytes: 1048576
maxDimension: 800
parallel: 8
s3Bucket: my-bucket
s3Prefix: svg/
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":9090" || cfg.MaxUploadBytes != 1<<20 || cfg.MaxDimension != 800 {
		t.Errorf("got %+v", cfg)
	}
	if cfg.Parallel != 8 || cfg.S3Bucket != "my-bucket" || cfg.S3Prefix != "svg/" {
		t.Errorf("got %+v", cfg)
	}
}

// 非法取值回退到安全默认
func TestLoadFixesZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image2svg.yaml")
	if err := os.WriteFile(path, []byte("parallel: 0\nlisten: \"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Parallel != 1 || cfg.Listen != ":8080" || cfg.MaxUploadBytes <= 0 {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image2svg.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
