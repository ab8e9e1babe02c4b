package storage

import (
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Local stores blobs under baseDir/<bucket>/<path> and issues signed URLs
// backed by short-lived HS256 tokens. The /storage handler checks the token
// before serving anything.
type Local struct {
	baseDir string
	secret  []byte
	baseURL string // URL prefix the handler is mounted on, e.g. "/storage"
}

func NewLocal(baseDir, secret, baseURL string) *Local {
	if baseDir == "" {
		baseDir = "./storage"
	}
	if baseURL == "" {
		baseURL = "/storage"
	}
	return &Local{
		baseDir: baseDir,
		secret:  []byte(secret),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type urlClaims struct {
	Bucket string `json:"bucket"`
	Path   string `json:"path"`
	jwtlib.RegisteredClaims
}

func (l *Local) Save(bucket, path string, r io.Reader) error {
	abs, err := l.absPath(bucket, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("storage: create dir: %w", err)
	}

	dst, err := os.Create(abs)
	if err != nil {
		return fmt.Errorf("storage: create object: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		_ = os.Remove(abs)
		return fmt.Errorf("storage: write object: %w", err)
	}
	return nil
}

// List enumerates every object in a bucket. A bucket directory that does not
// exist yet lists as empty, not as an error.
func (l *Local) List(bucket string) ([]ObjectInfo, error) {
	if bucket == "" {
		return nil, ErrInvalidRef
	}
	if strings.ContainsAny(bucket, `/\`) {
		return nil, ErrUnsafePath
	}
	root := filepath.Join(l.baseDir, bucket)

	var out []ObjectInfo
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if os.IsNotExist(walkErr) && p == root {
				return nil
			}
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		out = append(out, ObjectInfo{
			Path:       filepath.ToSlash(rel),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Local) Delete(bucket, path string) error {
	abs, err := l.absPath(bucket, path)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// SignedURL mints a pre-authorized link for one object. The token binds the
// exact bucket+path, so a leaked URL grants nothing else.
func (l *Local) SignedURL(bucket, path string, expiresIn time.Duration) (string, error) {
	if bucket == "" || path == "" {
		return "", ErrInvalidRef
	}
	if !safeRelPath(path) {
		return "", ErrUnsafePath
	}

	now := time.Now()
	claims := urlClaims{
		Bucket: bucket,
		Path:   path,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(l.secret)
	if err != nil {
		return "", fmt.Errorf("storage: sign url: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s?token=%s", l.baseURL, url.PathEscape(bucket), escapePath(path), url.QueryEscape(token)), nil
}

// VerifyToken checks that token authorizes exactly this bucket+path and has
// not expired.
func (l *Local) VerifyToken(token, bucket, path string) error {
	parsed, err := jwtlib.ParseWithClaims(token, &urlClaims{}, func(t *jwtlib.Token) (any, error) {
		return l.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*urlClaims)
	if !ok || claims.Bucket != bucket || claims.Path != path {
		return ErrInvalidToken
	}
	return nil
}

// AbsPath resolves an object reference to a filesystem path, rejecting
// anything that would escape the bucket directory.
func (l *Local) AbsPath(bucket, path string) (string, error) {
	return l.absPath(bucket, path)
}

func (l *Local) absPath(bucket, path string) (string, error) {
	if bucket == "" || path == "" {
		return "", ErrInvalidRef
	}
	if strings.ContainsAny(bucket, `/\`) || !safeRelPath(path) {
		return "", ErrUnsafePath
	}
	return filepath.Join(l.baseDir, bucket, filepath.FromSlash(path)), nil
}

func safeRelPath(path string) bool {
	if strings.HasPrefix(path, "/") || strings.Contains(path, `\`) {
		return false
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}
	return true
}

func escapePath(path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
