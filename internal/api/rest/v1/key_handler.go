package v1

import (
	"fmt"
	"net/http"
	"time"

	"rsa_vault_service/internal/domain/keys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	GenerateKeys(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type keyHandler struct {
	keyVaultService keys.KeyVaultService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyVaultService keys.KeyVaultService) KeyHandler {
	return &keyHandler{
		keyVaultService: keyVaultService,
	}
}

// GenerateKeys handles the POST request to generate and store an RSA key pair
// @Summary Generate an RSA key pair
// @Description Generate a safe-prime RSA key pair of the requested modulus size and store both serialized halves.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key generation parameters"
// @Success 201 {array} KeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKeys(ctx *gin.Context) {
	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid key data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	userID := uuid.New().String()

	keyMetas, err := handler.keyVaultService.GenerateKeyPair(ctx, userID, request.Bits)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error generating key pair: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	listResponse := []KeyMetaResponse{}
	for _, keyMeta := range keyMetas {
		listResponse = append(listResponse, toKeyMetaResponse(keyMeta))
	}

	ctx.JSON(http.StatusCreated, listResponse)
}

// ListMetadata handles the GET request to list key metadata with optional query parameters
// @Summary List key metadata based on query parameters
// @Description Fetch stored key metadata filtered by type and creation date, with pagination and sorting options.
// @Tags Key
// @Accept json
// @Produce json
// @Param type query string false "Key Type (public or private)"
// @Param dateTimeCreated query string false "Key Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewKeyQuery()

	if keyType := ctx.Query("type"); len(keyType) > 0 {
		query.Type = keyType
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsed, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid dateTimeCreated format: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		query.DateTimeCreated = parsed
	}

	if err := bindPagination(ctx, query); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	keyMetas, err := handler.keyVaultService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error listing key metadata: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	listResponse := []KeyMetaResponse{}
	for _, keyMeta := range keyMetas {
		listResponse = append(listResponse, toKeyMetaResponse(keyMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to fetch the metadata of one stored key
// @Summary Get key metadata by id
// @Description Fetch the metadata of a single stored key half.
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} KeyMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	keyMeta, err := handler.keyVaultService.GetByID(ctx, keyID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error fetching key metadata: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toKeyMetaResponse(keyMeta))
}

// DownloadByID handles the GET request to download the serialized key material
// @Summary Download key material by id
// @Description Fetch the base64 blob of a stored key half.
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} KeyMaterialResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/file [get]
func (handler *keyHandler) DownloadByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	material, err := handler.keyVaultService.DownloadByID(ctx, keyID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error downloading key: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, KeyMaterialResponse{ID: keyID, Material: material})
}

// DeleteByID handles the DELETE request to remove a stored key
// @Summary Delete a key by id
// @Description Delete a stored key half and its metadata.
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.keyVaultService.DeleteByID(ctx, keyID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting key: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted key %s", keyID)})
}

func toKeyMetaResponse(keyMeta *keys.KeyMeta) KeyMetaResponse {
	return KeyMetaResponse{
		ID:              keyMeta.ID,
		KeyPairID:       keyMeta.KeyPairID,
		Type:            keyMeta.Type,
		Bits:            keyMeta.Bits,
		DateTimeCreated: keyMeta.DateTimeCreated,
		UserID:          keyMeta.UserID,
	}
}

func bindPagination(ctx *gin.Context, query *keys.KeyQuery) error {
	var params struct {
		Limit     int    `form:"limit"`
		Offset    int    `form:"offset"`
		SortBy    string `form:"sortBy"`
		SortOrder string `form:"sortOrder"`
	}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		return fmt.Errorf("invalid pagination parameters: %w", err)
	}

	if params.Limit > 0 {
		query.Limit = params.Limit
	}
	if params.Offset > 0 {
		query.Offset = params.Offset
	}
	if params.SortBy != "" {
		query.SortBy = params.SortBy
	}
	if params.SortOrder != "" {
		query.SortOrder = params.SortOrder
	}

	return nil
}
