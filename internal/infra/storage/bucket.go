package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/infra/imaging"
)

var ErrUnavailable = errors.New("storage: bucket not configured")

type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Bucket é o bucket público de imagens (capas, galeria e avatares).
type Bucket struct {
	client    objectPutter
	bucket    string
	publicURL string
	now       func() time.Time
}

func New(cfg Config) *Bucket {
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newBucket(client, cfg)
}

func newBucket(client objectPutter, cfg Config) *Bucket {
	public := strings.TrimRight(cfg.PublicURL, "/")
	if public == "" && cfg.Endpoint != "" {
		public = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	if public == "" {
		public = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &Bucket{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: public,
		now:       time.Now,
	}
}

// Upload converte a imagem para WebP e grava com chave <unix-millis>-<uuid>.webp.
// Devolve o caminho do objeto dentro do bucket.
func (b *Bucket) Upload(ctx context.Context, body io.Reader) (string, error) {
	if b == nil {
		return "", ErrUnavailable
	}

	data, err := imaging.ToWebP(body)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%d-%s%s", b.now().UnixMilli(), uuid.NewString(), imaging.Extension)

	_, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(b.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(imaging.ContentType),
		CacheControl: aws.String("public, max-age=3600"),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}
	return key, nil
}

func (b *Bucket) PublicURL(path string) string {
	return b.publicURL + "/" + strings.TrimLeft(path, "/")
}
