package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"time"

	"github.com/pkg/errors"
)

// HashingReader wraps an io.Reader and computes the SHA-256 digest and byte
// count of everything read through it. Used to fingerprint uploaded documents
// while they are streamed to blob storage, without buffering the content.
type HashingReader struct {
	reader io.Reader
	hash   hash.Hash
	read   int64
}

// NewHashingReader returns a HashingReader over r.
func NewHashingReader(r io.Reader) *HashingReader {
	return &HashingReader{
		reader: r,
		hash:   sha256.New(),
	}
}

// Read implements io.Reader.
func (h *HashingReader) Read(p []byte) (int, error) {
	n, err := h.reader.Read(p)
	if n > 0 {
		h.hash.Write(p[:n])
		h.read += int64(n)
	}

	return n, err
}

// Checksum returns the SHA-256 hex digest of the bytes read so far.
func (h *HashingReader) Checksum() string {
	return hex.EncodeToString(h.hash.Sum(nil))
}

// BytesRead returns how many bytes have been read so far.
func (h *HashingReader) BytesRead() int64 {
	return h.read
}

// CalculateChecksum calculates the SHA-256 hex digest of an entire stream.
func CalculateChecksum(r io.Reader) (string, error) {
	sha256Hash := sha256.New()

	if _, err := io.Copy(sha256Hash, r); err != nil {
		return "", errors.Wrap(err, "failed to calculate checksum")
	}

	return hex.EncodeToString(sha256Hash.Sum(nil)), nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
