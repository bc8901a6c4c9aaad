package v1

import (
	"rsa_vault_service/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, keyVaultService keys.KeyVaultService) {
	v1 := r.Group(BasePath)

	keyHandler := NewKeyHandler(keyVaultService)
	v1.POST("/keys", keyHandler.GenerateKeys)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.GET("/keys/:id/file", keyHandler.DownloadByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)
}
