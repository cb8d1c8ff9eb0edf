package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Hack-Nocturne/dsymup/types"
	"github.com/Hack-Nocturne/dsymup/vars"
)

// Connection is an authenticated handle on the dSYM ingestion endpoint.
// Building one does no network I/O.
type Connection struct {
	URL         string
	AccountName string

	licenseKey types.Secret
	client     *http.Client
}

// BuildConnection returns a Connection for {host}/eumaggregator/crash-reports/iOSDSym
// authenticating with HTTP Basic auth. A timeout of 0 means no limit.
func BuildConnection(host, accountName string, licenseKey types.Secret, timeout time.Duration) *Connection {
	return &Connection{
		URL:         strings.TrimSuffix(host, "/") + vars.UPLOAD_ENDPOINT_PATH,
		AccountName: accountName,
		licenseKey:  licenseKey,
		client: &http.Client{
			Timeout: timeout,
			// Redirects are replayed by Put so the method, body and credentials survive every hop.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Put streams the file at path to the endpoint. It never returns a raw
// transport error: every failure ends up in UploadResult.Err.
func (c *Connection) Put(path string) (result types.UploadResult) {
	start := time.Now()
	result.Path = path
	defer func() { result.Duration = time.Since(start) }()

	hash, err := FingerprintFile(path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Hash = hash

	target, err := url.Parse(c.URL)
	if err != nil {
		result.Err = fmt.Errorf("parsing upload url: %w", err)
		return result
	}

	for hops := 0; ; hops++ {
		resp, size, err := c.send(target, path)
		if err != nil {
			result.Err = err
			return result
		}
		result.SizeInBytes = size
		result.StatusCode = resp.StatusCode

		if isRedirect(resp.StatusCode) {
			location := resp.Header.Get("Location")
			discard(resp)

			if location == "" {
				result.Err = &types.APIError{StatusCode: resp.StatusCode, Message: "redirect without Location header"}
				return result
			}
			if hops >= vars.MAX_REDIRECTS {
				result.Err = fmt.Errorf("stopped after %d redirects", vars.MAX_REDIRECTS)
				return result
			}

			next, err := target.Parse(location)
			if err != nil {
				result.Err = fmt.Errorf("invalid redirect location %q: %w", location, err)
				return result
			}
			target = next
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, vars.MAX_ERROR_BODY_SIZE))
			resp.Body.Close()
			result.Err = &types.APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
			return result
		}

		discard(resp)
		return result
	}
}

// send issues one PUT of the file to target. The file is reopened on every
// call so each redirect hop replays the full body.
func (c *Connection) send(target *url.URL, path string) (*http.Response, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, 0, err
	}

	var body io.Reader = f
	if info.Size() == 0 {
		body = http.NoBody
	}

	req, err := http.NewRequest(http.MethodPut, target.String(), body)
	if err != nil {
		return nil, 0, err
	}
	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", vars.UPLOAD_CONTENT_TYPE)
	req.Header.Set("User-Agent", "dsymup/"+vars.VERSION)
	req.SetBasicAuth(c.AccountName, c.licenseKey.Reveal())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}

	return resp, info.Size(), nil
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

// discard drains a small response body so the connection can be reused, then closes it.
func discard(resp *http.Response) {
	io.Copy(io.Discard, io.LimitReader(resp.Body, vars.MAX_ERROR_BODY_SIZE))
	resp.Body.Close()
}
