package dataset

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
	"github.com/diillson/ecommerce-dashboard-go/internal/domain/repository"
	"github.com/diillson/ecommerce-dashboard-go/internal/shared/types"
)

// ObjectGetter é o subconjunto do cliente S3 usado para baixar o dataset.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// DatasetRepositoryImpl implementa o DatasetRepository para arquivos locais e S3,
// com cache de clientes S3 por perfil/região.
type DatasetRepositoryImpl struct {
	override    ObjectGetter
	clientCache map[string]ObjectGetter
	mu          sync.Mutex
}

// Option customiza o DatasetRepositoryImpl.
type Option func(*DatasetRepositoryImpl)

// WithS3Client injeta um cliente S3 usado para qualquer perfil/região.
func WithS3Client(client ObjectGetter) Option {
	return func(r *DatasetRepositoryImpl) { r.override = client }
}

// NewDatasetRepository cria uma nova implementação do DatasetRepository.
func NewDatasetRepository(opts ...Option) repository.DatasetRepository {
	r := &DatasetRepositoryImpl{clientCache: make(map[string]ObjectGetter)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LoadOrders lê o dataset de um caminho local ou de uma URL s3://bucket/key.
func (r *DatasetRepositoryImpl) LoadOrders(ctx context.Context, source entity.DatasetSource) ([]entity.OrderLine, error) {
	location := strings.TrimSpace(source.Location)
	if location == "" {
		return nil, fmt.Errorf("%w: empty source", types.ErrUnsupportedSource)
	}

	body, err := r.open(ctx, location, source)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	rows, err := DecodeOrders(body)
	if err != nil {
		return nil, fmt.Errorf("error loading dataset %s: %w", location, err)
	}
	return rows, nil
}

func (r *DatasetRepositoryImpl) open(ctx context.Context, location string, source entity.DatasetSource) (io.ReadCloser, error) {
	if !strings.Contains(location, "://") {
		file, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("error opening dataset file: %w", err)
		}
		return file, nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrUnsupportedSource, location, err)
	}

	switch u.Scheme {
	case "file":
		file, err := os.Open(u.Path)
		if err != nil {
			return nil, fmt.Errorf("error opening dataset file: %w", err)
		}
		return file, nil
	case "s3":
		return r.openS3(ctx, u, source)
	default:
		return nil, fmt.Errorf("%w: scheme %q", types.ErrUnsupportedSource, u.Scheme)
	}
}

func (r *DatasetRepositoryImpl) openS3(ctx context.Context, u *url.URL, source entity.DatasetSource) (io.ReadCloser, error) {
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("%w: expected s3://bucket/key, got %s", types.ErrUnsupportedSource, u.String())
	}

	client, err := r.getS3Client(ctx, source.AWSProfile, source.AWSRegion)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error downloading s3://%s/%s: %w", bucket, key, err)
	}
	return out.Body, nil
}

func (r *DatasetRepositoryImpl) getS3Client(ctx context.Context, profile, region string) (ObjectGetter, error) {
	if r.override != nil {
		return r.override, nil
	}

	cacheKey := fmt.Sprintf("%s-%s", profile, region)

	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clientCache[cacheKey]; ok {
		return client, nil
	}

	var loadOpts []func(*config.LoadOptions) error
	if profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	client := s3.NewFromConfig(cfg)
	r.clientCache[cacheKey] = client
	return client, nil
}
