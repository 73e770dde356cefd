package helper

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
)

// PrepareModel downloads the model into modelDir if it doesn't exist yet
// and returns the local model path. Model names with a namespace
// ("org/model") are sanitized to "org_model" on disk.
func PrepareModel(modelDir string, modelName string, onnxFilePath string) (string, error) {
	modelPath := filepath.Join(modelDir, strings.ReplaceAll(modelName, "/", "_"))

	// Check if model exists, if not download it
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		if err := os.MkdirAll(modelDir, 0755); err != nil {
			return "", NewError("create model directory", err)
		}
		downloadOptions := hugot.NewDownloadOptions()
		if onnxFilePath != "" {
			downloadOptions.OnnxFilePath = onnxFilePath
		}
		downloadedPath, err := hugot.DownloadModel(modelName, modelDir, downloadOptions)
		if err != nil {
			return "", NewError("download model", err)
		}
		modelPath = downloadedPath
	}

	return modelPath, nil
}
