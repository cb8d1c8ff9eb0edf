// Package dsymup uploads dSYM debug symbol archives to the AppDynamics
// crash report ingestion API.
package dsymup

import (
	"path/filepath"
	"time"

	"github.com/Hack-Nocturne/dsymup/types"
	"github.com/Hack-Nocturne/dsymup/utils"
)

// UploadOne sends a single file over conn. Failures are reported in the
// result, never returned or panicked.
func UploadOne(path string, conn *utils.Connection) types.UploadResult {
	return conn.Put(path)
}

// Run validates cfg, resolves and checks every dSYM path, then uploads the
// files one after another. Nothing is uploaded unless every path exists, and
// the first failed upload ends the run with a *types.UploadError.
func Run(cfg *UploadConfig, ui *utils.UI) (*types.RunSummary, error) {
	if ui == nil {
		ui = utils.NewUI(nil)
	}
	start := time.Now()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		return nil, err
	}

	if err := ValidatePaths(paths); err != nil {
		return nil, err
	}

	summary := &types.RunSummary{Uploads: make([]types.UploadResult, 0, len(paths))}
	if len(paths) == 0 {
		ui.Warn("No dSYM paths configured, nothing to upload")
	}

	for _, path := range paths {
		if isZip, err := utils.IsZipArchive(path); err == nil && !isZip {
			detected, _ := utils.DetectContentType(path)
			ui.Warn("%s does not look like a zip archive (detected %s), AppDynamics expects App.dSYM.zip", path, detected)
		}

		ui.Message("Uploading %s", path)
		conn := utils.BuildConnection(cfg.APIHost, cfg.AccountName, cfg.LicenseKey, cfg.Timeout)

		result := UploadOne(path, conn)
		if !result.Ok() {
			return nil, &types.UploadError{Path: path, Err: result.Err}
		}

		ui.Success("Uploaded %s [%s, blake3 %s] %s",
			filepath.Base(path), utils.FormatSize(result.SizeInBytes), result.Hash[:12], utils.FormatTime(result.Duration))
		summary.Uploads = append(summary.Uploads, result)
	}

	summary.Duration = time.Since(start)
	ui.Done("dSYMs successfully uploaded to AppDynamics! (%s, %s) %s",
		utils.Plural(len(summary.Uploads), "file"), utils.FormatSize(summary.TotalBytes()), utils.FormatTime(summary.Duration))

	return summary, nil
}
