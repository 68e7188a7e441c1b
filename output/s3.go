package output

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/achilleasa/lumen/log"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const UploadTimeout = 30 * time.Second

// Connection settings for an S3 compatible object store.
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string

	// Canned ACL applied to uploaded objects; empty keeps the bucket default.
	ACL string
}

// Uploads encoded frames to an S3 compatible object store.
type Uploader struct {
	logger log.Logger
	client *s3.S3
	cfg    S3Config
}

// Create a new uploader.
func NewUploader(cfg S3Config) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}

	awsCfg := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("output: failed to create S3 session: %w", err)
	}

	return &Uploader{
		logger: log.New("s3 uploader"),
		client: s3.New(sess),
		cfg:    cfg,
	}, nil
}

// Encode image and upload it under key. The format is selected by the key
// extension.
func (u *Uploader) Upload(ctx context.Context, key string, img image.Image) error {
	if key == "" {
		return ErrNoKey
	}

	format, err := FormatFromPath(key)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = Encode(&buf, img, format); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(buf.Len())
	input := &s3.PutObjectInput{
		Bucket:        aws.String(u.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(format.ContentType()),
	}
	if u.cfg.ACL != "" {
		input.ACL = aws.String(u.cfg.ACL)
	}

	if _, err = u.client.PutObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf("output: failed to upload %s: %w", key, err)
	}

	u.logger.Infof("uploaded %s to bucket %s (%d bytes)", key, u.cfg.Bucket, size)
	return nil
}
