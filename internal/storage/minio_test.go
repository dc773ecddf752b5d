package storage

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "missing object",
			err:  minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."},
			want: ErrNotFound,
		},
		{
			name: "missing bucket",
			err:  minio.ErrorResponse{Code: "NoSuchBucket", Message: "The specified bucket does not exist."},
			want: ErrNotFound,
		},
		{
			name: "access denied",
			err:  minio.ErrorResponse{Code: "AccessDenied", Message: "Access Denied."},
			want: ErrPermission,
		},
		{
			name: "bad access key",
			err:  minio.ErrorResponse{Code: "InvalidAccessKeyId", Message: "The access key ID you provided does not exist."},
			want: ErrAuth,
		},
		{
			name: "bad signature",
			err:  minio.ErrorResponse{Code: "SignatureDoesNotMatch", Message: "Signature mismatch."},
			want: ErrAuth,
		},
		{
			name: "unknown backend code",
			err:  minio.ErrorResponse{Code: "SlowDown", Message: "Please reduce your request rate."},
			want: ErrTransport,
		},
		{
			name: "plain network error",
			err:  errors.New("dial tcp: connection refused"),
			want: ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
