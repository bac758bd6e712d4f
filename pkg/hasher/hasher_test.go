package hasher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
)

func TestCalculateHash(t *testing.T) {
	tempDir := t.TempDir()

	testContent := []byte("test content for hashing")
	testFile := filepath.Join(tempDir, "test.txt")

	if err := os.WriteFile(testFile, testContent, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	fs := afero.NewOsFs()
	hash, err := CalculateHash(fs, testFile)
	if err != nil {
		t.Fatalf("CalculateHash() error = %v", err)
	}

	if hash != xxhash.Sum64(testContent) {
		t.Errorf("CalculateHash() = %x, want %x", hash, xxhash.Sum64(testContent))
	}

	hash2, err := CalculateHash(fs, testFile)
	if err != nil {
		t.Fatalf("CalculateHash() second call error = %v", err)
	}

	if hash != hash2 {
		t.Error("Hash should be consistent for same file")
	}
}

func TestCalculateHash_DifferentContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/data/file1.txt", []byte("content1"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := afero.WriteFile(fs, "/data/file2.txt", []byte("content2"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	hash1, err := CalculateHash(fs, "/data/file1.txt")
	if err != nil {
		t.Fatalf("CalculateHash() error = %v", err)
	}

	hash2, err := CalculateHash(fs, "/data/file2.txt")
	if err != nil {
		t.Fatalf("CalculateHash() error = %v", err)
	}

	if hash1 == hash2 {
		t.Error("Different content should produce different hashes")
	}
}

func TestCalculateHash_NonExistentFile(t *testing.T) {
	_, err := CalculateHash(afero.NewMemMapFs(), "/non/existent/file.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestCalculateHash_LargeFile(t *testing.T) {
	tempDir := t.TempDir()

	largeFile := filepath.Join(tempDir, "large.txt")
	const fileSize = 10 * 1024 * 1024

	file, err := os.Create(largeFile)
	if err != nil {
		t.Fatalf("Failed to create large file: %v", err)
	}

	data := make([]byte, 4096)
	for i := 0; i < fileSize/4096; i++ {
		if _, err := file.Write(data); err != nil {
			file.Close()
			t.Fatalf("Failed to write to large file: %v", err)
		}
	}
	file.Close()

	hash, err := CalculateHash(afero.NewOsFs(), largeFile)
	if err != nil {
		t.Fatalf("CalculateHash() error = %v", err)
	}

	if hash != xxhash.Sum64(make([]byte, fileSize)) {
		t.Error("Streaming hash should equal one-shot hash")
	}
}

func TestChecksum(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/empty", nil, 0644); err != nil {
		t.Fatal(err)
	}

	sum, err := Checksum(fs, "/empty")
	if err != nil {
		t.Fatalf("Checksum() error = %v", err)
	}
	if len(sum) != 16 {
		t.Errorf("Checksum() length = %d, want 16", len(sum))
	}
	if sum != Format(xxhash.Sum64(nil)) {
		t.Errorf("Checksum() = %s", sum)
	}
}

func TestFormat_PadsLeadingZeros(t *testing.T) {
	if got := Format(0xabc); got != "0000000000000abc" {
		t.Errorf("Format() = %s", got)
	}
}
