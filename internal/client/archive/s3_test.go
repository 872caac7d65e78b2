package archive

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/renewadmin/internal/client/config"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func stubS3(t *testing.T, putter *fakePutter) *s3.Options {
	t.Helper()
	origLoad, origNew, origNow := loadDefaultAWSConfig, newS3ClientFromConfig, now
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, now = origLoad, origNew, origNow
	})

	applied := &s3.Options{}
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		require.Equal(t, "ap-southeast-3", lo.Region)
		require.NotNil(t, lo.Credentials)
		creds, err := lo.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		require.Equal(t, "minioadmin", creds.AccessKeyID)
		return aws.Config{Region: lo.Region}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		for _, fn := range optFns {
			fn(applied)
		}
		return putter
	}
	now = func() time.Time { return time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC) }
	return applied
}

func s3Config() *config.Config {
	return &config.Config{
		S3Bucket:       "renewadmin",
		S3Region:       "ap-southeast-3",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3AccessKey:    "minioadmin",
		S3SecretKey:    "minioadmin",
	}
}

func TestS3Sink_Put(t *testing.T) {
	putter := &fakePutter{}
	applied := stubS3(t, putter)

	sink, err := NewSinkFromConfig(context.Background(), s3Config())
	require.NoError(t, err)
	require.IsType(t, &S3Sink{}, sink)
	require.Equal(t, "http://127.0.0.1:9000", aws.ToString(applied.BaseEndpoint))
	require.True(t, applied.UsePathStyle)

	loc, err := sink.Put(context.Background(), "laporan.xlsx", "application/vnd.ms-excel", []byte("xlsx"))
	require.NoError(t, err)
	require.Equal(t, "s3://renewadmin/reports/2024/03/09/laporan.xlsx", loc)
	require.Equal(t, "renewadmin", aws.ToString(putter.in.Bucket))
	require.Equal(t, "application/vnd.ms-excel", aws.ToString(putter.in.ContentType))
	require.Equal(t, "xlsx", string(putter.body))
}

func TestS3Sink_PutError(t *testing.T) {
	boom := errors.New("access denied")
	stubS3(t, &fakePutter{err: boom})

	sink, err := NewSinkFromConfig(context.Background(), s3Config())
	require.NoError(t, err)

	_, err = sink.Put(context.Background(), "r.xlsx", "", nil)
	require.ErrorIs(t, err, boom)
}

func TestNewS3Sink_ConfigError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })
	boom := errors.New("bad profile")
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, boom
	}

	_, err := NewS3Sink(context.Background(), S3Options{Bucket: "b"})
	require.ErrorIs(t, err, boom)
}

func TestObjectKey(t *testing.T) {
	at := time.Date(2024, 12, 31, 23, 59, 0, 0, time.FixedZone("WIB", 7*3600))
	require.Equal(t, "reports/2024/12/31/a.xlsx", objectKey(at, "dir/a.xlsx"))
}
