package s3_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/na2na-p/defectrack/internal/infrastructure/s3"
)

// fakeS3API はS3APIの呼び出しを記録する簡易実装
type fakeS3API struct {
	putInput    *awss3.PutObjectInput
	getErr      error
	deleteInput *awss3.DeleteObjectInput
	headErr     error
}

func (f *fakeS3API) PutObject(_ context.Context, input *awss3.PutObjectInput, _ ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	f.putInput = input
	return &awss3.PutObjectOutput{}, nil
}

func (f *fakeS3API) GetObject(_ context.Context, _ *awss3.GetObjectInput, _ ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &awss3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("content"))}, nil
}

func (f *fakeS3API) DeleteObject(_ context.Context, input *awss3.DeleteObjectInput, _ ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error) {
	f.deleteInput = input
	return &awss3.DeleteObjectOutput{}, nil
}

func (f *fakeS3API) HeadBucket(_ context.Context, _ *awss3.HeadBucketInput, _ ...func(*awss3.Options)) (*awss3.HeadBucketOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &awss3.HeadBucketOutput{}, nil
}

func TestS3Client_PutObject(t *testing.T) {
	t.Run("正常系: バケットとキーとサイズが引き渡される", func(t *testing.T) {
		fake := &fakeS3API{}
		client := s3.NewS3Client(fake, "defectrack")

		body := strings.NewReader("content")
		if err := client.PutObject(context.Background(), "attachments/7/abc/log.txt", body, 7); err != nil {
			t.Fatalf("want no error, but got %v", err)
		}

		if fake.putInput == nil {
			t.Fatal("PutObject was not called")
		}
		if got := *fake.putInput.Bucket; got != "defectrack" {
			t.Errorf("Bucket = %v, want defectrack", got)
		}
		if got := *fake.putInput.Key; got != "attachments/7/abc/log.txt" {
			t.Errorf("Key = %v", got)
		}
		if got := *fake.putInput.ContentLength; got != 7 {
			t.Errorf("ContentLength = %v, want 7", got)
		}
	})
}

func TestS3Client_GetObject(t *testing.T) {
	t.Run("正常系: 本体のストリームが返る", func(t *testing.T) {
		client := s3.NewS3Client(&fakeS3API{}, "defectrack")

		body, err := client.GetObject(context.Background(), "attachments/7/abc/log.txt")
		if err != nil {
			t.Fatalf("want no error, but got %v", err)
		}
		defer body.Close()

		content, err := io.ReadAll(body)
		if err != nil {
			t.Fatalf("failed to read body: %v", err)
		}
		if string(content) != "content" {
			t.Errorf("body = %q, want %q", content, "content")
		}
	})

	t.Run("異常系: NoSuchKeyはIsNotFoundで判別できる", func(t *testing.T) {
		client := s3.NewS3Client(&fakeS3API{getErr: &types.NoSuchKey{}}, "defectrack")

		_, err := client.GetObject(context.Background(), "attachments/7/abc/missing.txt")
		if err == nil {
			t.Fatal("want error, but got nil")
		}
		if !s3.NewErrorChecker().IsNotFound(err) {
			t.Errorf("IsNotFound() = false, want true")
		}
	})
}

func TestErrorCheckerImpl_IsNotFound(t *testing.T) {
	checker := s3.NewErrorChecker()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "正常系: NoSuchKey", err: &types.NoSuchKey{}, want: true},
		{name: "正常系: NotFound", err: &types.NotFound{}, want: true},
		{name: "正常系: APIエラーコードNoSuchKey", err: &smithy.GenericAPIError{Code: "NoSuchKey"}, want: true},
		{name: "正常系: nilはfalse", err: nil, want: false},
		{name: "正常系: その他のエラーはfalse", err: errors.New("boom"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.want)
			}
		})
	}
}
