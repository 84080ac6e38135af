package skeleton

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Placeholder markers every skeleton template must contain. The first is
// replaced with the user's code, the second with the generated
// verification code.
const (
	UserCodeMarker = "<<<SIGNATURE_PLACEHOLDER>>>"
	TestCodeMarker = "<<<TEST_CASES_PLACEHOLDER>>>"
)

// DiskStore loads skeleton templates from a directory. Templates are named
// <language>_skeleton.txt (lowercase); a .zst-compressed variant is picked
// up when the plain file is absent.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

func (s *DiskStore) Load(language string) (string, error) {
	path := filepath.Join(s.dir, strings.ToLower(language)+"_skeleton.txt")

	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read skeleton template %s: %w", path, err)
	}

	compressed, zerr := os.ReadFile(path + ".zst")
	if zerr != nil {
		return "", fmt.Errorf("failed to read skeleton template %s: %w", path, err)
	}
	d, zerr := zstd.NewReader(bytes.NewReader(compressed))
	if zerr != nil {
		return "", fmt.Errorf("failed to create zstd reader for %s: %w", path, zerr)
	}
	defer d.Close()
	decoded, zerr := io.ReadAll(d)
	if zerr != nil {
		return "", fmt.Errorf("failed to decompress skeleton template %s: %w", path, zerr)
	}
	return string(decoded), nil
}

// Render substitutes both placeholder markers in the skeleton.
func Render(skeletonCode, userCode, testCode string) string {
	out := strings.ReplaceAll(skeletonCode, UserCodeMarker, userCode)
	return strings.ReplaceAll(out, TestCodeMarker, testCode)
}
