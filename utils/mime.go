package utils

import (
	"github.com/gabriel-vasile/mimetype"
)

const ZIP_MIME_TYPE = "application/zip"

// DetectContentType sniffs the file header and returns its MIME type.
func DetectContentType(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	return mt.String(), nil
}

// IsZipArchive reports whether the file is a zip or a zip-based format.
func IsZipArchive(path string) (bool, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return false, err
	}

	for m := mt; m != nil; m = m.Parent() {
		if m.Is(ZIP_MIME_TYPE) {
			return true, nil
		}
	}
	return false, nil
}
