package s3

import (
	"context"
	"io"
	"strings"
	"testing"

	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeClient struct {
	putKey    string
	putCT     string
	putBody   string
	deleteKey string
	putErr    error
}

func (f *fakeClient) PutObject(_ context.Context, in *s3aws.PutObjectInput, _ ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.putKey = *in.Key
	f.putCT = *in.ContentType
	b, _ := io.ReadAll(in.Body)
	f.putBody = string(b)
	return &s3aws.PutObjectOutput{}, nil
}

func (f *fakeClient) DeleteObject(_ context.Context, in *s3aws.DeleteObjectInput, _ ...func(*s3aws.Options)) (*s3aws.DeleteObjectOutput, error) {
	f.deleteKey = *in.Key
	return &s3aws.DeleteObjectOutput{}, nil
}

func TestStore_Upload(t *testing.T) {
	t.Parallel()
	fc := &fakeClient{}
	s := NewWithClient(fc, Config{Bucket: "blog", Region: "eu-west-1"})

	url, err := s.Upload(context.Background(), "posts/abc.png", "image/png", strings.NewReader("img-bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	want := "https://blog.s3.eu-west-1.amazonaws.com/posts/abc.png"
	if url != want {
		t.Fatalf("url = %q, want %q", url, want)
	}
	if fc.putKey != "posts/abc.png" || fc.putCT != "image/png" || fc.putBody != "img-bytes" {
		t.Fatalf("unexpected put: %+v", fc)
	}
}

func TestStore_Upload_CustomBaseURL(t *testing.T) {
	t.Parallel()
	fc := &fakeClient{}
	s := NewWithClient(fc, Config{Bucket: "blog", Region: "eu-west-1", BaseURL: "https://cdn.example.com/"})

	url, err := s.Upload(context.Background(), "posts/abc.png", "image/png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://cdn.example.com/posts/abc.png" {
		t.Fatalf("url = %q", url)
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()
	fc := &fakeClient{}
	s := NewWithClient(fc, Config{Bucket: "blog", Region: "eu-west-1", BaseURL: "https://cdn.example.com"})

	if err := s.Delete(context.Background(), "https://cdn.example.com/posts/abc.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if fc.deleteKey != "posts/abc.png" {
		t.Fatalf("delete key = %q", fc.deleteKey)
	}

	// Foreign URLs are ignored, not deleted.
	fc.deleteKey = ""
	if err := s.Delete(context.Background(), "https://elsewhere.example.com/x.png"); err != nil {
		t.Fatalf("Delete foreign: %v", err)
	}
	if fc.deleteKey != "" {
		t.Fatalf("foreign URL was deleted: %q", fc.deleteKey)
	}
}
