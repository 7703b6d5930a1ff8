// Package pdfview holds the small helpers behind the PDF pane: resolving the
// stored source URI into something a renderer can fetch, and the zoom /
// fit-to-viewport calculation.
package pdfview

import (
	"fmt"
	"strings"
)

const s3Scheme = "s3://"

// DefaultS3Region is where the report bucket lives.
const DefaultS3Region = "ap-northeast-2"

// ResolveSourceURL rewrites an s3://bucket/key URI to the equivalent HTTPS
// object URL for the given region. Ingestion stores raw s3:// URIs, which PDF
// renderers cannot fetch. Any URI not in that scheme passes through
// unchanged, as do malformed s3 URIs with a missing bucket or key.
func ResolveSourceURL(raw, region string) string {
	if !strings.HasPrefix(raw, s3Scheme) {
		return raw
	}
	if region == "" {
		region = DefaultS3Region
	}

	rest := strings.TrimPrefix(raw, s3Scheme)
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return raw
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}
