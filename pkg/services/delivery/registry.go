package delivery

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gopkg.in/ini.v1"
)

const (
	TypeFile = "file"
	TypeS3   = "s3"
)

type Profile struct {
	Name   string
	Type   string
	Dir    string
	Bucket string
	Prefix string
	Region string
}

// Registry reads sink profiles from an ini file, one section per profile:
//
//	[archive]
//	type   = s3
//	bucket = reports
//	prefix = exports
//	region = eu-west-1
type Registry interface {
	GetProfiles(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, name string) (Profile, error)
	Open(ctx context.Context, name string) (Sink, error)
}

type S3ClientFactory func(ctx context.Context, region string) (PutObjectAPI, error)

type iniRegistry struct {
	cfg      *ini.File
	s3Client S3ClientFactory
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load sinks file: %w", err)
	}
	return &iniRegistry{cfg: cfg, s3Client: DefaultS3Client}, nil
}

// NewRegistryFromSource is NewRegistry for in-memory ini data and a custom S3 client factory.
func NewRegistryFromSource(data []byte, factory S3ClientFactory) (Registry, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load sinks: %w", err)
	}
	if factory == nil {
		factory = DefaultS3Client
	}
	return &iniRegistry{cfg: cfg, s3Client: factory}, nil
}

func DefaultS3Client(ctx context.Context, region string) (PutObjectAPI, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]Profile, error) {
	var profiles []Profile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		p, err := profileFrom(section)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (Profile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return Profile{}, fmt.Errorf("sink profile %s not found", name)
	}
	return profileFrom(section)
}

func (r *iniRegistry) Open(ctx context.Context, name string) (Sink, error) {
	p, err := r.GetProfile(ctx, name)
	if err != nil {
		return nil, err
	}
	switch p.Type {
	case TypeFile:
		return NewFileSink(p.Name, p.Dir), nil
	case TypeS3:
		client, err := r.s3Client(ctx, p.Region)
		if err != nil {
			return nil, err
		}
		return NewS3Sink(p.Name, client, p.Bucket, p.Prefix), nil
	}
	return nil, fmt.Errorf("sink profile %s has unknown type %q", p.Name, p.Type)
}

func profileFrom(section *ini.Section) (Profile, error) {
	p := Profile{
		Name:   section.Name(),
		Type:   section.Key("type").MustString(TypeFile),
		Dir:    section.Key("dir").String(),
		Bucket: section.Key("bucket").String(),
		Prefix: section.Key("prefix").String(),
		Region: section.Key("region").String(),
	}
	switch p.Type {
	case TypeFile:
		if p.Dir == "" {
			return Profile{}, fmt.Errorf("sink profile %s: dir is required", p.Name)
		}
	case TypeS3:
		if p.Bucket == "" {
			return Profile{}, fmt.Errorf("sink profile %s: bucket is required", p.Name)
		}
	default:
		return Profile{}, fmt.Errorf("sink profile %s has unknown type %q", p.Name, p.Type)
	}
	return p, nil
}
