package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/config"
	"github.com/barberia-app/barberia-api/internal/httperr"
)

// 3MB, igual que el limite del formulario.
const maxImageSize = 3 << 20

// Uploader guarda imagenes de catalogo (servicios y productos) en S3,
// siempre reencodificadas a webp.
type Uploader struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

func NewUploader(cfg *config.Config) *Uploader {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &Uploader{
		client:   s3.New(opts),
		bucket:   cfg.S3Bucket,
		region:   cfg.S3Region,
		endpoint: cfg.S3Endpoint,
	}
}

// SubirImagen sube la imagen del formulario y devuelve la URL publica.
func (u *Uploader) SubirImagen(ctx context.Context, fh *multipart.FileHeader, carpeta string) (string, error) {
	if fh.Size > maxImageSize {
		return "", httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "La imagen supera el tamano maximo (3MB)")
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	encoded, err := ToWebp(f)
	if err != nil {
		return "", httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Formato de imagen no permitido")
	}

	key := fmt.Sprintf("%s/%s.webp", carpeta, uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(encoded),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return u.publicURL(key), nil
}

func (u *Uploader) publicURL(key string) string {
	if u.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", u.endpoint, u.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
