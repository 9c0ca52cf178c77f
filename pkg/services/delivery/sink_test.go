package delivery

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func TestFileSink_Deliver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink := NewFileSink("local", dir)

	location, err := sink.Deliver(context.Background(), "Revenue_Report_Monthly_2025-05-20.pdf", "application/pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Revenue_Report_Monthly_2025-05-20.pdf"), location)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "local", sink.Name())
}

func TestFileSink_RejectsPaths(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink("local", dir)

	for _, name := range []string{"", "../escape.pdf", "nested/report.pdf"} {
		_, err := sink.Deliver(context.Background(), name, "application/pdf", []byte("x"))
		assert.Error(t, err, name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileSink_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSink("local", dir).Deliver(ctx, "a.pdf", "application/pdf", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestS3Sink_Deliver(t *testing.T) {
	client := new(mockS3)
	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		body, _ := io.ReadAll(in.Body)
		return *in.Bucket == "reports" &&
			*in.Key == "exports/Claims_Report_Yearly_2025-05-20.pdf" &&
			*in.ContentType == "application/pdf" &&
			string(body) == "pdf-bytes"
	})).Return(&s3.PutObjectOutput{}, nil)

	sink := NewS3Sink("archive", client, "reports", "exports")
	location, err := sink.Deliver(context.Background(), "Claims_Report_Yearly_2025-05-20.pdf", "application/pdf", []byte("pdf-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "s3://reports/exports/Claims_Report_Yearly_2025-05-20.pdf", location)
	client.AssertExpectations(t)
}

func TestS3Sink_UploadError(t *testing.T) {
	client := new(mockS3)
	client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	_, err := NewS3Sink("archive", client, "reports", "").Deliver(context.Background(), "a.pdf", "application/pdf", nil)
	assert.ErrorContains(t, err, "s3://reports/a.pdf")
}
