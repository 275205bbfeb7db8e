package store

import (
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Store 将生成的 SVG 文档上传到 S3
type S3Store struct {
	uploader *s3manager.Uploader
	bucket   string
	prefix   string
}

// New 使用默认凭证链创建上传器
func New(bucket, prefix string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("empty bucket")
	}
	sess, err := session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("create aws session failed: %w", err)
	}
	return &S3Store{
		uploader: s3manager.NewUploader(sess),
		bucket:   bucket,
		prefix:   prefix,
	}, nil
}

// Put 上传一份文档，返回对象位置
func (s *S3Store) Put(name string, body io.Reader) (string, error) {
	key := path.Join(s.prefix, name)
	out, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String("image/svg+xml"),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s failed: %w", key, err)
	}
	return out.Location, nil
}
