package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/warlord-os/warlord/internal/dossier"
	"github.com/warlord-os/warlord/internal/logging"
	"github.com/warlord-os/warlord/internal/models"
	"github.com/warlord-os/warlord/internal/store"
)

// dossierObjectKey is the fixed name of the remote dossier object.
const dossierObjectKey = "warlord_dossier.json"

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	headBucket = func(c *s3.Client, ctx context.Context, in *s3.HeadBucketInput) (*s3.HeadBucketOutput, error) {
		return c.HeadBucket(ctx, in)
	}
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
)

// S3Config holds the settings of the S3-compatible bucket the dossier is
// pushed to (AWS, MinIO, or any other S3 endpoint).
type S3Config struct {
	BaseEndpoint string
	Region       string
	Bucket       string
	AccessKeyId  string
	SecretKey    string
}

// S3Adapter implements Adapter against an S3-compatible bucket. The last-sync
// timestamp is recorded in the local storage backend so it survives restarts.
type S3Adapter struct {
	cfg     S3Config
	backend store.Backend
	log     logging.Logger

	mu     sync.Mutex
	client *s3.Client
}

// NewS3Adapter returns an unlinked adapter; call Authenticate to establish
// the link.
func NewS3Adapter(cfg S3Config, backend store.Backend, log logging.Logger) *S3Adapter {
	return &S3Adapter{
		cfg:     cfg,
		backend: backend,
		log:     log.With("component", "drive"),
	}
}

func (a *S3Adapter) IsConnected() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.client != nil
}

// Authenticate builds the S3 client and verifies bucket access. Calling it
// while already connected is a no-op.
func (a *S3Adapter) Authenticate(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return nil
	}

	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(a.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			a.cfg.AccessKeyId,
			a.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return fmt.Errorf("failed to load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if a.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(a.cfg.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	if _, err := headBucket(client, ctx, &s3.HeadBucketInput{Bucket: aws.String(a.cfg.Bucket)}); err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", a.cfg.Bucket, err)
	}

	a.client = client
	return nil
}

// Sync uploads the snapshot as a dossier document. It returns ErrNotLinked
// when Authenticate has not succeeded yet.
func (a *S3Adapter) Sync(ctx context.Context, snap models.Snapshot) error {
	a.mu.Lock()
	client := a.client
	a.mu.Unlock()

	if client == nil {
		return ErrNotLinked
	}

	doc := dossier.Document{
		Cards:      snap.Cards,
		User:       snap.User,
		ExportDate: time.Now().UnixMilli(),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.cfg.Bucket),
		Key:         aws.String(dossierObjectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload dossier: %w", err)
	}

	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := a.backend.Set(ctx, store.KeyLastSync, []byte(ts)); err != nil {
		a.log.Warn(ctx, "failed to record last sync time", "error", err)
	}
	return nil
}

// Disconnect drops the client and clears the recorded last-sync timestamp.
func (a *S3Adapter) Disconnect(ctx context.Context) error {
	a.mu.Lock()
	a.client = nil
	a.mu.Unlock()

	if err := a.backend.Delete(ctx, store.KeyLastSync); err != nil {
		return fmt.Errorf("failed to clear last sync time: %w", err)
	}
	return nil
}

func (a *S3Adapter) LastSyncTime(ctx context.Context) (time.Time, bool) {
	data, err := a.backend.Get(ctx, store.KeyLastSync)
	if err != nil || len(data) == 0 {
		return time.Time{}, false
	}
	millis, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(millis), true
}
