package records

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"resume-builder/internal/telemetry"
)

// S3Store implements Store on Amazon S3 (or any S3-compatible endpoint).
// Objects carry the same <key>_resume.json naming as the filesystem store,
// under an optional prefix.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates a new S3-backed record store.
func NewS3Store(ctx context.Context, region, bucket, prefix string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: strings.Trim(strings.TrimSpace(prefix), "/"),
	}, nil
}

// Save uploads the record as a pretty-printed JSON object.
func (s *S3Store) Save(ctx context.Context, name Name, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return fmt.Errorf("encode record %q: %w", name, err)
	}

	objectKey := s.objectKey(name.FileName())
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 put object bucket=%s key=%s: %w", s.bucket, objectKey, err)
	}
	return nil
}

// Load downloads and decodes the record object. Missing objects and
// undecodable bodies both come back as ErrNotFound.
func (s *S3Store) Load(ctx context.Context, name Name) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	objectKey := s.objectKey(name.FileName())
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var noKey *s3types.NoSuchKey
		if errors.As(err, &noKey) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("s3 get object bucket=%s key=%s: %w", s.bucket, objectKey, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return Record{}, fmt.Errorf("s3 read object bucket=%s key=%s: %w", s.bucket, objectKey, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		telemetry.Error("records.load.corrupt", map[string]any{
			"bucket": s.bucket,
			"key":    objectKey,
			"error":  err.Error(),
		})
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// List pages through the bucket prefix and recovers display names from
// object keys carrying the record suffix.
func (s *S3Store) List(ctx context.Context) ([]Name, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var names []Name
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if s.prefix != "" {
		input.Prefix = aws.String(s.prefix + "/")
	}

	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list objects bucket=%s: %w", s.bucket, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if s.prefix != "" {
				key = strings.TrimPrefix(key, s.prefix+"/")
			}
			if name, ok := NameFromFileName(key); ok {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

func (s *S3Store) objectKey(fileName string) string {
	if s.prefix == "" {
		return fileName
	}
	return s.prefix + "/" + fileName
}

var _ Store = (*S3Store)(nil)
