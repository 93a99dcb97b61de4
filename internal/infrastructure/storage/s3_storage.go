package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"strings"

	"video-platform/pkg/helper"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Storage struct {
	client     *s3.Client
	bucketName string
	region     string
}

func NewS3Storage(bucketName, region string) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("AWS config yüklenemedi: %w", err)
	}
	return &S3Storage{
		client:     s3.NewFromConfig(cfg),
		bucketName: bucketName,
		region:     region,
	}, nil
}

func (s *S3Storage) Save(file multipart.File, folder, filename string) (string, error) {
	key := folder + "/" + filename

	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(helper.GetMimeTypeFromExtension(filename)),
	})
	if err != nil {
		return "", fmt.Errorf("S3 upload hatası: %w", err)
	}

	return s.url(key), nil
}

func (s *S3Storage) SavePath(localPath, folder, filename string) (string, error) {
	src, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer src.Close()
	defer os.Remove(localPath)

	return s.Save(src, folder, filename)
}

func (s *S3Storage) Remove(publicPath string) error {
	key, ok := s.key(publicPath)
	if !ok {
		return nil
	}
	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) Exists(publicPath string) bool {
	key, ok := s.key(publicPath)
	if !ok {
		return false
	}
	_, err := s.client.HeadObject(context.TODO(), &s3.HeadObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	return err == nil
}

// Materialize: S3 üzerinde lokal yol yok; ffmpeg için geçici indirme yapılır.
func (s *S3Storage) Materialize(publicPath string) (string, func(), error) {
	key, ok := s.key(publicPath)
	if !ok {
		return "", nil, fmt.Errorf("beklenmeyen medya yolu: %s", publicPath)
	}

	resp, err := s.client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	tmpFile, err := os.CreateTemp("", "s3media-*")
	if err != nil {
		return "", nil, err
	}
	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", nil, err
	}
	tmpFile.Close()
	return tmpFile.Name(), func() { os.Remove(tmpFile.Name()) }, nil
}

func (s *S3Storage) url(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key)
}

func (s *S3Storage) key(publicPath string) (string, bool) {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucketName, s.region)
	if key, ok := strings.CutPrefix(publicPath, prefix); ok {
		return key, true
	}
	return strings.CutPrefix(publicPath, "/uploads/")
}
