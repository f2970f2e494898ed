package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("running a development build, nothing to update")
	ErrAlreadyLatest = errors.New("latest version already installed")
	ErrChecksum      = errors.New("release checksum mismatch")
)

// UpdateInput names the running version and, optionally, a specific tag to
// install instead of whatever is latest.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress is one step of the update reported back to the CLI.
type UpdateProgress struct {
	Stage   string
	Message string
}

// Update downloads the release archive for this platform, verifies it
// against the release's checksums.txt, and swaps the running binary.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		progress(UpdateProgress{Stage: "check", Message: "Looking up the latest release..."})
		result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("resolve latest release: %w", err)
		}
		if !result.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = result.LatestVersion
	}

	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}
	downloads := fmt.Sprintf("%s/%s/%s/releases/download/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag)

	progress(UpdateProgress{Stage: "download", Message: fmt.Sprintf("Fetching %s...", tag)})
	archive, err := c.fetch(ctx, downloads+"/"+asset)
	if err != nil {
		return fmt.Errorf("fetch release archive: %w", err)
	}

	progress(UpdateProgress{Stage: "verify", Message: "Checking archive integrity..."})
	sums, err := c.fetch(ctx, downloads+"/checksums.txt")
	if err != nil {
		return fmt.Errorf("fetch checksums.txt: %w", err)
	}
	want, ok := checksumFor(sums, asset)
	if !ok {
		return fmt.Errorf("checksums.txt has no entry for %s", asset)
	}
	if got := sha256Hex(archive); got != want {
		return fmt.Errorf("%w: want %s, have %s", ErrChecksum, want, got)
	}

	progress(UpdateProgress{Stage: "extract", Message: "Unpacking the new binary..."})
	binary, err := unpack(archive, asset)
	if err != nil {
		return fmt.Errorf("unpack archive: %w", err)
	}

	progress(UpdateProgress{Stage: "apply", Message: "Installing..."})
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("locate running binary: %w", err)
	}
	if err := swapBinary(binary, target); err != nil {
		return fmt.Errorf("install binary: %w", err)
	}

	progress(UpdateProgress{Stage: "done", Message: fmt.Sprintf("Now on %s", tag)})
	return nil
}

// releaseAsset maps the platform to the goreleaser archive name. Darwin
// ships a universal binary; the others are per-arch.
func releaseAsset(goos, goarch string) (string, error) {
	arches := map[string]string{"amd64": "x86_64", "arm64": "arm64", "386": "i386"}

	switch goos {
	case "darwin":
		return "techniq_Darwin_all.tar.gz", nil
	case "linux", "windows":
		arch, ok := arches[goarch]
		if !ok {
			return "", fmt.Errorf("no release build for architecture %s", goarch)
		}
		if goos == "windows" {
			return fmt.Sprintf("techniq_Windows_%s.zip", arch), nil
		}
		return fmt.Sprintf("techniq_Linux_%s.tar.gz", arch), nil
	default:
		return "", fmt.Errorf("no release build for %s", goos)
	}
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: HTTP %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor scans a goreleaser checksums.txt ("<hex>  <filename>" per
// line) for the named asset.
func checksumFor(sums []byte, asset string) (string, bool) {
	for _, line := range strings.Split(string(sums), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[1] == asset {
			return fields[0], true
		}
	}
	return "", false
}

func sha256Hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// unpack pulls the techniq binary out of the release archive, picking the
// archive format off the asset name.
func unpack(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return unpackZip(archive, "techniq.exe")
	}
	return unpackTarGz(archive, "techniq")
}

func unpackTarGz(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("archive has no %q entry", name)
}

func unpackZip(data []byte, name string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("zip: %w", err)
	}
	for _, f := range r.File {
		if filepath.Base(f.Name) == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer func() { _ = rc.Close() }()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("archive has no %q entry", name)
}

// swapBinary writes the new binary next to the target and renames it into
// place, keeping the original file mode. The rename must stay on one
// filesystem, hence the sibling temp directory.
func swapBinary(binary []byte, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	tmpDir, err := os.MkdirTemp(filepath.Dir(target), ".techniq-update-*")
	if err != nil {
		return fmt.Errorf("staging dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	staged := filepath.Join(tmpDir, "techniq-new")
	if err := os.WriteFile(staged, binary, 0600); err != nil {
		return fmt.Errorf("stage binary: %w", err)
	}

	// Re-read what landed on disk before making it the executable.
	written, err := os.ReadFile(staged)
	if err != nil {
		return fmt.Errorf("re-read staged binary: %w", err)
	}
	if !bytes.Equal(written, binary) {
		return fmt.Errorf("%w: staged binary differs from download", ErrChecksum)
	}

	if err := os.Rename(staged, target); err != nil {
		return fmt.Errorf("swap binary: %w", err)
	}
	if err := os.Chmod(target, info.Mode()); err != nil {
		return fmt.Errorf("restore mode: %w", err)
	}
	return nil
}
