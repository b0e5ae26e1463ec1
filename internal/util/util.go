package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// HasPrefixes returns true if the string s has any of the given prefixes.
func HasPrefixes(src string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(src, prefix) {
			return true
		}
	}
	return false
}

func GenUUID() string {
	return uuid.New().String()
}

// GenerateNewFileName returns filePath when nothing exists there yet, otherwise
// the next free name of the form name_N.ext.
func GenerateNewFileName(filePath string) string {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return filePath
	}

	dir := filepath.Dir(filePath)
	base := filepath.Base(filePath)
	ext := filepath.Ext(base)
	fileName := strings.TrimSuffix(base, ext)

	existingFiles, err := filepath.Glob(filepath.Join(dir, fileName+"_*[0-9]"+ext))
	if err != nil {
		return filePath
	}

	index := 1
	for _, existingFile := range existingFiles {
		existingName := strings.TrimSuffix(filepath.Base(existingFile), ext)
		suffix := existingName[strings.LastIndex(existingName, "_")+1:]
		existingIndex, err := strconv.Atoi(suffix)
		if err == nil && existingIndex >= index {
			index = existingIndex + 1
		}
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%d%s", fileName, index, ext))
}
