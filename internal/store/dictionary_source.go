package store

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// patternPrefix marks a dictionary line as a regular expression rather than
// a literal password.
const patternPrefix = "re:"

// S3ObjectGetter is the subset of *s3.Client used to fetch a dictionary.
type S3ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// NewDictionarySource picks a source for uri:
//   - "" keeps the built-in dictionary;
//   - "s3://bucket/key" reads an object through client, or through a client
//     built from the default AWS configuration when client is nil;
//   - "file:///path" or a bare path reads a local file.
func NewDictionarySource(ctx context.Context, uri string, client S3ObjectGetter) (DictionarySource, error) {
	if uri == "" {
		return builtinSource{}, nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedDictionarySource, err)
	}

	switch u.Scheme {
	case "":
		return fileSource{path: uri}, nil
	case "file":
		return fileSource{path: u.Path}, nil
	case "s3":
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return nil, fmt.Errorf("%w: %q needs a bucket and a key", ErrUnsupportedDictionarySource, uri)
		}
		if client == nil {
			cfg, err := awsconfig.LoadDefaultConfig(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to load AWS config: %w", err)
			}
			client = s3.NewFromConfig(cfg)
		}
		return s3Source{client: client, bucket: u.Host, key: key}, nil
	default:
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedDictionarySource, u.Scheme)
	}
}

type builtinSource struct{}

func (builtinSource) Load(context.Context) (*strength.Dictionary, error) {
	return strength.DefaultDictionary(), nil
}

type fileSource struct {
	path string
}

func (s fileSource) Load(context.Context) (*strength.Dictionary, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("error opening dictionary file: %w", err)
	}
	defer f.Close()

	return ParseDictionary(f)
}

type s3Source struct {
	client S3ObjectGetter
	bucket string
	key    string
}

func (s s3Source) Load(ctx context.Context) (*strength.Dictionary, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching dictionary s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	return ParseDictionary(out.Body)
}

// ParseDictionary reads one entry per line and extends the built-in
// dictionary with them. Blank lines and lines starting with '#' are skipped;
// a line starting with "re:" is compiled as a pattern.
func ParseDictionary(r io.Reader) (*strength.Dictionary, error) {
	var words, patterns []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "", strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, patternPrefix):
			patterns = append(patterns, strings.TrimSpace(strings.TrimPrefix(line, patternPrefix)))
		default:
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dictionary: %w", err)
	}

	return strength.DefaultDictionary().Extend(words, patterns)
}
