package storage // import "github.com/herhimstory-source/Reading-Log/internal/storage"

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/herhimstory-source/Reading-Log/internal/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var supportedTypes = []string{"xlsx", "epub"}

func CheckSupportedType(fileName string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	for _, t := range supportedTypes {
		if ext == t {
			return true
		}
	}
	return false
}

// LocalStorage keeps export files in a directory. Existing files are never
// overwritten.
type LocalStorage struct {
	// Path to the storage directory
	Path string
}

// Save writes reader to fileName inside the storage directory, or to the next
// free name_N variant, and returns the path written.
func (s *LocalStorage) Save(fileName string, reader io.Reader) (string, error) {
	if !CheckSupportedType(fileName) {
		return "", &model.ValidationError{Field: "file", Message: fmt.Sprintf("unsupported file type %q", filepath.Ext(fileName))}
	}

	if err := os.MkdirAll(s.Path, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "failed to create storage directory")
	}

	filePath := util.GenerateNewFileName(filepath.Join(s.Path, filepath.Base(fileName)))
	outFile, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errors.Wrap(err, "failed to create file")
	}
	defer outFile.Close()

	hash := sha256.New()
	n, err := io.Copy(io.MultiWriter(outFile, hash), reader)
	if err != nil {
		os.Remove(filePath)
		return "", errors.Wrap(err, "failed to write file")
	}

	log.Debug("Stored file",
		zap.String("path", filePath),
		zap.Int64("size", n),
		zap.String("hash", hex.EncodeToString(hash.Sum(nil))))
	return filePath, nil
}

// Open opens an import file after checking its type.
func (s *LocalStorage) Open(filePath string) (*os.File, error) {
	if !CheckSupportedType(filePath) || strings.EqualFold(filepath.Ext(filePath), ".epub") {
		return nil, &model.FormatError{Err: errors.Errorf("%s is not an .xlsx workbook", filepath.Base(filePath))}
	}
	if !filepath.IsAbs(filePath) && s.Path != "" {
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			filePath = filepath.Join(s.Path, filePath)
		}
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, &model.FormatError{Err: err}
	}
	return f, nil
}
