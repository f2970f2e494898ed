package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
		wantErr      bool
	}{
		{"darwin", "arm64", "techniq_Darwin_all.tar.gz", false},
		{"darwin", "amd64", "techniq_Darwin_all.tar.gz", false},
		{"linux", "amd64", "techniq_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "techniq_Linux_arm64.tar.gz", false},
		{"linux", "386", "techniq_Linux_i386.tar.gz", false},
		{"windows", "amd64", "techniq_Windows_x86_64.zip", false},
		{"windows", "arm64", "techniq_Windows_arm64.zip", false},
		{"linux", "mips", "", true},
		{"plan9", "amd64", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	sums := []byte("abc123  techniq_Linux_x86_64.tar.gz\ndef456  techniq_Darwin_all.tar.gz\n\nmalformed line here extra\n")

	got, ok := checksumFor(sums, "techniq_Darwin_all.tar.gz")
	require.True(t, ok)
	assert.Equal(t, "def456", got)

	_, ok = checksumFor(sums, "techniq_Windows_x86_64.zip")
	assert.False(t, ok)
}

func TestUnpackTarGz(t *testing.T) {
	binary := []byte("#!/bin/true fake binary")
	archive := buildTarGz(t, map[string][]byte{
		"LICENSE": []byte("MIT"),
		"techniq": binary,
	})

	got, err := unpack(archive, "techniq_Linux_x86_64.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, binary, got)

	_, err = unpack(buildTarGz(t, map[string][]byte{"README.md": []byte("hi")}), "techniq_Linux_x86_64.tar.gz")
	assert.Error(t, err)
}

func TestUnpackZip(t *testing.T) {
	binary := []byte("MZ fake windows binary")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("techniq.exe")
	require.NoError(t, err)
	_, err = w.Write(binary)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	got, err := unpack(buf.Bytes(), "techniq_Windows_x86_64.zip")
	require.NoError(t, err)
	assert.Equal(t, binary, got)
}

func TestSwapBinaryKeepsMode(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "techniq")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	require.NoError(t, swapBinary([]byte("new"), target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	binary := []byte("updated techniq binary")

	t.Run("installs the latest release", func(t *testing.T) {
		name, err := releaseAsset(osArch())
		require.NoError(t, err)
		archive := archiveFor(t, name, binary)
		sum := sha256.Sum256(archive)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/techniq-app/techniq/releases/latest":
				fmt.Fprint(w, `{"tag_name": "v2.0.0"}`)
			case "/techniq-app/techniq/releases/download/v2.0.0/" + name:
				_, _ = w.Write(archive)
			case "/techniq-app/techniq/releases/download/v2.0.0/checksums.txt":
				fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(sum[:]), name)
			default:
				http.NotFound(w, r)
			}
		}))
		defer srv.Close()

		target := filepath.Join(t.TempDir(), "techniq")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return target, nil }),
		)

		var stages []string
		err = checker.Update(t.Context(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("refuses dev builds", func(t *testing.T) {
		err := NewChecker().Update(t.Context(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("reports when already latest", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"tag_name": "v1.0.0"}`)
		}))
		defer srv.Close()

		checker := NewChecker(WithBaseURL(srv.URL))
		err := checker.Update(t.Context(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("rejects a tampered archive", func(t *testing.T) {
		name, err := releaseAsset(osArch())
		require.NoError(t, err)
		archive := archiveFor(t, name, binary)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/techniq-app/techniq/releases/latest":
				fmt.Fprint(w, `{"tag_name": "v2.0.0"}`)
			case "/techniq-app/techniq/releases/download/v2.0.0/" + name:
				_, _ = w.Write(archive)
			case "/techniq-app/techniq/releases/download/v2.0.0/checksums.txt":
				fmt.Fprintf(w, "%s  %s\n", "deadbeef", name)
			default:
				http.NotFound(w, r)
			}
		}))
		defer srv.Close()

		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err = checker.Update(t.Context(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("surfaces download failures", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/techniq-app/techniq/releases/latest" {
				fmt.Fprint(w, `{"tag_name": "v2.0.0"}`)
				return
			}
			http.NotFound(w, r)
		}))
		defer srv.Close()

		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := checker.Update(t.Context(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

func buildTarGz(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: name,
			Mode: 0755,
			Size: int64(len(content)),
		}))
		_, err := tw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

// archiveFor packs the binary under whichever archive format the asset
// name calls for.
func archiveFor(t *testing.T, asset string, binary []byte) []byte {
	t.Helper()
	if filepath.Ext(asset) == ".zip" {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, err := zw.Create("techniq.exe")
		require.NoError(t, err)
		_, err = w.Write(binary)
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		return buf.Bytes()
	}
	return buildTarGz(t, map[string][]byte{"techniq": binary})
}

func osArch() (string, string) {
	return runtime.GOOS, runtime.GOARCH
}
