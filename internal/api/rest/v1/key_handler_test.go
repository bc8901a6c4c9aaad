//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rsa_vault_service/internal/domain/keys"
	rsaDomain "rsa_vault_service/internal/domain/rsa"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(service keys.KeyVaultService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, service)
	return r
}

func sampleMetas() []*keys.KeyMeta {
	pairID := uuid.New().String()
	userID := uuid.New().String()
	now := time.Now().UTC()
	return []*keys.KeyMeta{
		{ID: uuid.New().String(), KeyPairID: pairID, Type: rsaDomain.KeyTypePrivate, Bits: 1024, DateTimeCreated: now, UserID: userID},
		{ID: uuid.New().String(), KeyPairID: pairID, Type: rsaDomain.KeyTypePublic, Bits: 1024, DateTimeCreated: now, UserID: userID},
	}
}

func TestKeyHandlerGenerateKeys(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		service := new(MockKeyVaultService)
		service.On("GenerateKeyPair", mock.Anything, mock.Anything, uint32(1024)).
			Return(sampleMetas(), nil)

		router := setupRouter(service)

		body, _ := json.Marshal(GenerateKeyRequest{Bits: 1024})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, BasePath+"/keys", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response []KeyMetaResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 2)
		assert.Equal(t, response[0].KeyPairID, response[1].KeyPairID)

		service.AssertExpectations(t)
	})

	t.Run("RejectsUnsupportedBits", func(t *testing.T) {
		service := new(MockKeyVaultService)
		router := setupRouter(service)

		body, _ := json.Marshal(GenerateKeyRequest{Bits: 1000})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, BasePath+"/keys", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "GenerateKeyPair")
	})

	t.Run("RejectsMalformedBody", func(t *testing.T) {
		service := new(MockKeyVaultService)
		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, BasePath+"/keys", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ServiceFailure", func(t *testing.T) {
		service := new(MockKeyVaultService)
		service.On("GenerateKeyPair", mock.Anything, mock.Anything, uint32(2048)).
			Return(nil, errors.New("generation failed"))

		router := setupRouter(service)

		body, _ := json.Marshal(GenerateKeyRequest{Bits: 2048})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, BasePath+"/keys", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response.Message, "generation failed")
	})
}

func TestKeyHandlerListMetadata(t *testing.T) {
	t.Run("ListsWithFilters", func(t *testing.T) {
		service := new(MockKeyVaultService)
		service.On("List", mock.Anything, mock.MatchedBy(func(q *keys.KeyQuery) bool {
			return q.Type == rsaDomain.KeyTypePublic && q.Limit == 5
		})).Return(sampleMetas()[1:], nil)

		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, BasePath+"/keys?type=public&limit=5", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []KeyMetaResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.Equal(t, rsaDomain.KeyTypePublic, response[0].Type)

		service.AssertExpectations(t)
	})

	t.Run("RejectsBadDate", func(t *testing.T) {
		service := new(MockKeyVaultService)
		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, BasePath+"/keys?dateTimeCreated=yesterday", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestKeyHandlerByID(t *testing.T) {
	t.Run("GetMetadata", func(t *testing.T) {
		keyMeta := sampleMetas()[0]
		service := new(MockKeyVaultService)
		service.On("GetByID", mock.Anything, keyMeta.ID).Return(keyMeta, nil)

		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, BasePath+"/keys/"+keyMeta.ID, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response KeyMetaResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, keyMeta.ID, response.ID)
	})

	t.Run("GetMetadataNotFound", func(t *testing.T) {
		service := new(MockKeyVaultService)
		service.On("GetByID", mock.Anything, "missing").Return(nil, errors.New("not found"))

		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, BasePath+"/keys/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Download", func(t *testing.T) {
		service := new(MockKeyVaultService)
		service.On("DownloadByID", mock.Anything, "key-1").Return("blob-data", nil)

		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, BasePath+"/keys/key-1/file", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response KeyMaterialResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "blob-data", response.Material)
	})

	t.Run("Delete", func(t *testing.T) {
		service := new(MockKeyVaultService)
		service.On("DeleteByID", mock.Anything, "key-2").Return(nil)

		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, BasePath+"/keys/key-2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		service.AssertExpectations(t)
	})
}
