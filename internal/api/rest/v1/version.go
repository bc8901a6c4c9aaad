package v1

// BasePath is the URL prefix of API version 1.
const BasePath = "/api/v1/rsa-vault"
