package types

import "time"

// UploadResult is the outcome of a single dSYM upload. A nil Err means the
// server accepted the file with a 2xx status.
type UploadResult struct {
	Path        string
	SizeInBytes int64
	StatusCode  int
	Hash        string // blake3 fingerprint of the bytes sent
	Duration    time.Duration
	Err         error
}

// Ok reports whether the upload succeeded.
func (r UploadResult) Ok() bool {
	return r.Err == nil
}

// RunSummary lists the uploads of a successful run in the order they were sent.
type RunSummary struct {
	Uploads  []UploadResult
	Duration time.Duration
}

// TotalBytes sums the size of every uploaded file.
func (s *RunSummary) TotalBytes() int64 {
	var total int64
	for _, u := range s.Uploads {
		total += u.SizeInBytes
	}
	return total
}
