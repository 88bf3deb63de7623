package uploads

import (
	"safetybot-backend/internal/config"
)

var uploadService = createUploadService()
var uploadController = &UploadController{uploadService}

// createUploadService returns nil when object storage is not configured;
// the controller answers 503 in that case.
func createUploadService() *UploadService {
	env := config.GetEnv()
	if env.MinioEndpoint == "" {
		log.Warn("MINIO_ENDPOINT is not set, uploads are disabled")
		return nil
	}

	service, err := NewUploadService(
		env.MinioEndpoint,
		env.MinioAccessKey,
		env.MinioSecretKey,
		env.MinioBucket,
		env.MinioUseSSL,
	)
	if err != nil {
		log.Error("Failed to initialize object storage client", "error", err)
		return nil
	}

	return service
}

func GetUploadService() *UploadService {
	return uploadService
}

func GetUploadController() *UploadController {
	return uploadController
}
