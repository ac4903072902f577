package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/codebyfaisal/e-store-pos/internal/server/invoicepdf"
	"github.com/codebyfaisal/e-store-pos/internal/server/models"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/repomanager"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/codebyfaisal/e-store-pos/internal/server/config"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
)

// InvoiceDetailsResult is an invoice with the tax rate the frontend needs to
// show the money lines.
type InvoiceDetailsResult struct {
	models.InvoiceDetails
	Tax float64 `json:"tax"`
}

// InvoiceService reads invoices, renders the printable document, and keeps a
// PDF copy of every rendered invoice in the S3 archive.
type InvoiceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	renderer    invoicepdf.Renderer
	config      *sc.Config
}

func NewInvoiceService(db *sql.DB, m repomanager.RepositoryManager, renderer invoicepdf.Renderer, cfg *sc.Config) *InvoiceService {
	return &InvoiceService{db: db, repomanager: m, renderer: renderer, config: cfg}
}

func (s *InvoiceService) List(ctx context.Context) ([]models.InvoiceListItem, error) {
	return s.repomanager.Invoices(s.db).List(ctx)
}

func (s *InvoiceService) Details(ctx context.Context, invoiceID string) (*InvoiceDetailsResult, error) {
	d, err := s.repomanager.Invoices(s.db).Details(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return &InvoiceDetailsResult{InvoiceDetails: *d, Tax: s.config.TaxRate}, nil
}

// RenderPDF produces the invoice PDF and stores a copy in the archive bucket.
// An archive failure does not fail the download, the copy is best effort.
func (s *InvoiceService) RenderPDF(ctx context.Context, invoiceID string) ([]byte, error) {
	d, err := s.repomanager.Invoices(s.db).Details(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	html, err := invoicepdf.RenderHTML(d, s.config.TaxRate)
	if err != nil {
		return nil, err
	}

	pdf, err := s.renderer.Render(ctx, html)
	if err != nil {
		return nil, err
	}

	if client, err := s.getS3Client(); err == nil {
		key := archiveKey(invoiceID)
		_, _ = putObject(client, ctx, &s3.PutObjectInput{
			Bucket:      &s.config.S3Bucket,
			Key:         &key,
			Body:        bytes.NewReader(pdf),
			ContentType: aws.String("application/pdf"),
		})
	}

	return pdf, nil
}

// ArchiveURL returns a short-lived presigned GET for an archived invoice PDF.
func (s *InvoiceService) ArchiveURL(ctx context.Context, invoiceID string) (string, error) {
	client, err := s.getS3Client()
	if err != nil {
		return "", err
	}

	key := archiveKey(invoiceID)
	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &s.config.S3Bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func archiveKey(invoiceID string) string {
	return fmt.Sprintf("invoices/%s.pdf", invoiceID)
}

func (s *InvoiceService) getS3Client() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}
