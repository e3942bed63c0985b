package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"undangan.link/configs/configsapp"
	"undangan.link/models"
	"undangan.link/store"
)

// ImageError görsel yükleme hataları.
type ImageError string

func (e ImageError) Error() string { return string(e) }

const (
	ErrInvalidDataURI ImageError = "geçersiz data URI"
	ErrUploadFailed   ImageError = "görsel nesne deposuna yüklenemedi"
)

// ImageService görselleri nesne deposuna alır ve metadata kaydını images
// dilimine işler. Amaç, büyük base64 gövdelerin kalıcı JSON içinde
// yaşamak zorunda kalmamasıdır; dilimler dönen http URL'sini referans
// olarak tutabilir. data: URI'ler yine de desteklenir, boyut korumasını
// depolama adaptörü uygular.
type ImageService struct {
	client *minio.Client
	bucket string
	store  *store.WeddingStore
}

// NewImageService MinIO istemcisini kurar ve bucket'ı hazırlar.
func NewImageService(cfg configsapp.MinIOConfig, w *store.WeddingStore) (*ImageService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio istemcisi kurulamadı: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("bucket kontrol edilemedi: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("bucket oluşturulamadı: %w", err)
		}
	}

	return &ImageService{client: client, bucket: cfg.Bucket, store: w}, nil
}

// UploadDataURI "data:image/jpeg;base64,..." biçimindeki gövdeyi çözer,
// nesne deposuna yazar ve erişim URL'sini döndürür.
func (s *ImageService) UploadDataURI(ctx context.Context, dataURI, category, filename string) (string, error) {
	contentType, data, err := decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}
	return s.Upload(ctx, data, contentType, category, filename)
}

// Upload ham görsel baytlarını kategori altına yazar ve metadata kaydını
// images dilimine ekler.
func (s *ImageService) Upload(ctx context.Context, data []byte, contentType, category, filename string) (string, error) {
	if category == "" {
		category = "misc"
	}
	if filename == "" {
		filename = fmt.Sprintf("%s_%d.jpg", category, time.Now().UnixMilli())
	}
	key := fmt.Sprintf("%s/%s_%s", category, uuid.NewString(), filename)

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	scheme := "http"
	if s.client.EndpointURL().Scheme == "https" {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, key)

	s.recordMetadata(ctx, filename, url, category)
	return url, nil
}

// recordMetadata images dilimini kopyala-ve-değiştir ile günceller.
func (s *ImageService) recordMetadata(ctx context.Context, filename, uri, category string) {
	current := s.store.Images.Get()
	next := make(models.ImageSet, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	next[filename] = models.ImageRecord{
		URI:      uri,
		Category: category,
		SavedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	// Metadata yazılamazsa görsel yine de yüklenmiş durumdadır; URL döner.
	_ = s.store.Images.Update(ctx, next)
}

// decodeDataURI content type ve çözülmüş gövdeyi ayıklar.
func decodeDataURI(dataURI string) (string, []byte, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return "", nil, ErrInvalidDataURI
	}
	meta, body, found := strings.Cut(dataURI[len("data:"):], ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return "", nil, ErrInvalidDataURI
	}
	contentType := strings.TrimSuffix(meta, ";base64")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	return contentType, data, nil
}
