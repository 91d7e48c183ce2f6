package storage

import (
	"io"
	"net/http"
	"strconv"

	"postline/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	bucket   string
	s3Client *s3.S3
	uploader *s3manager.Uploader
}

func NewS3Storage() API {
	awsConfig := aws.Config{
		Region: aws.String(config.S3_REGION),
	}
	if config.S3_ENDPOINT != "" {
		awsConfig.Endpoint = aws.String(config.S3_ENDPOINT)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if config.S3_KEY != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.S3_KEY, config.S3_SECRET, "")
	}
	sess := session.Must(session.NewSession(&awsConfig))
	client := s3.New(sess)
	return &S3Storage{
		bucket:   config.S3_BUCKET,
		s3Client: client,
		uploader: s3manager.NewUploaderWithClient(client),
	}
}

type countingReader struct {
	reader io.Reader
	count  int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.count += int64(n)
	return n, err
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	counting := &countingReader{reader: reader}
	_, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
		Body:   counting,
	})
	if err != nil {
		return 0, err
	}
	return counting.count, nil
}

func (s *S3Storage) Load(path string, writer io.Writer) (int64, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(writer, resp.Body)
}

func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err != nil {
		http.NotFound(writer, request)
		return
	}
	defer resp.Body.Close()
	if resp.ContentType != nil {
		writer.Header().Set("Content-Type", *resp.ContentType)
	}
	if resp.ContentLength != nil {
		writer.Header().Set("Content-Length", strconv.FormatInt(*resp.ContentLength, 10))
	}
	_, _ = io.Copy(writer, resp.Body)
}

func (s *S3Storage) Delete(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	return err
}
