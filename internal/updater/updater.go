package updater

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/Masterminds/semver/v3"
)

const (
	// Repo is the GitHub repository releases are published to.
	Repo       = "ryan-rushton/omni"
	binaryName = "omni"
)

// Client talks to GitHub releases. The zero value is not usable; call New.
type Client struct {
	HTTP *http.Client
	// APIBase and DownloadBase are overridden in tests.
	APIBase      string
	DownloadBase string
	Repo         string
}

func New() *Client {
	return &Client{
		HTTP:         &http.Client{Timeout: 30 * time.Second},
		APIBase:      "https://api.github.com",
		DownloadBase: "https://github.com",
		Repo:         Repo,
	}
}

type release struct {
	TagName string `json:"tag_name"`
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.HTTP.Do(req)
}

// LatestRelease fetches the latest release tag from GitHub.
func (c *Client) LatestRelease(ctx context.Context) (string, error) {
	resp, err := c.get(ctx, fmt.Sprintf("%s/repos/%s/releases/latest", c.APIBase, c.Repo))
	if err != nil {
		return "", fmt.Errorf("fetching latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github API returned status %d", resp.StatusCode)
	}

	var r release
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("decoding release response: %w", err)
	}

	if r.TagName == "" {
		return "", errors.New("empty tag_name in release response")
	}

	return r.TagName, nil
}

// IsNewer reports whether latest is a higher semantic version than current.
// Dev builds and unparsable versions are never out of date.
func IsNewer(current, latest string) bool {
	if current == "dev" {
		return false
	}
	cur, err := semver.NewVersion(current)
	if err != nil {
		return false
	}
	next, err := semver.NewVersion(latest)
	if err != nil {
		return false
	}
	return next.GreaterThan(cur)
}

// AssetName is the GoReleaser archive name for a platform.
func AssetName(goos, goarch string) string {
	osName := goos
	archName := goarch
	switch goarch {
	case "amd64":
		archName = "x86_64"
	case "386":
		archName = "i386"
	}
	switch goos {
	case "darwin":
		osName = "Darwin"
	case "linux":
		osName = "Linux"
	case "windows":
		osName = "Windows"
	}
	return fmt.Sprintf("%s_%s_%s.tar.gz", binaryName, osName, archName)
}

// DownloadAndReplace downloads the release tarball for the given tag and
// replaces the running executable with the new binary.
func (c *Client) DownloadAndReplace(ctx context.Context, tag string) error {
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("finding executable path: %w", err)
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return fmt.Errorf("resolving symlinks: %w", err)
	}
	return c.Replace(ctx, tag, execPath)
}

// Replace downloads tag for the current platform and atomically swaps it in
// at execPath.
func (c *Client) Replace(ctx context.Context, tag, execPath string) error {
	url := fmt.Sprintf("%s/%s/releases/download/%s/%s",
		c.DownloadBase, c.Repo, tag, AssetName(runtime.GOOS, runtime.GOARCH))

	resp, err := c.get(ctx, url)
	if err != nil {
		return fmt.Errorf("downloading release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	binary, err := extractBinary(resp.Body)
	if err != nil {
		return fmt.Errorf("extracting binary: %w", err)
	}

	// Write to a temp file in the same directory, then atomically rename.
	tmp, err := os.CreateTemp(filepath.Dir(execPath), binaryName+"-update-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(binary); err != nil {
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(0o755); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, execPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing executable: %w", err)
	}

	return nil
}

// extractBinary reads a tar.gz stream and returns the contents of the omni
// binary.
func extractBinary(r io.Reader) ([]byte, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("creating gzip reader: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading tar: %w", err)
		}

		if filepath.Base(header.Name) == binaryName && header.Typeflag == tar.TypeReg {
			data, err := io.ReadAll(tr)
			if err != nil {
				return nil, fmt.Errorf("reading binary from tar: %w", err)
			}
			return data, nil
		}
	}

	return nil, fmt.Errorf("%s binary not found in archive", binaryName)
}
