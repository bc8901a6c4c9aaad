package cryptography

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	rsaDomain "rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/infrastructure/hashing"
	"rsa_vault_service/internal/infrastructure/randomness"
	"rsa_vault_service/internal/pkg/logger"
)

// rsaProcessor struct that implements the rsa.Processor interface
type rsaProcessor struct {
	oracle randomness.Oracle
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor backed
// by the operating system entropy oracle.
func NewRSAProcessor(logger logger.Logger) (rsaDomain.Processor, error) {
	return NewRSAProcessorWithOracle(randomness.NewSystemOracle(), logger)
}

// NewRSAProcessorWithOracle creates an rsaProcessor over an explicit
// entropy oracle.
func NewRSAProcessorWithOracle(oracle randomness.Oracle, logger logger.Logger) (rsaDomain.Processor, error) {
	if oracle == nil {
		return nil, errors.New("entropy oracle cannot be nil")
	}
	return &rsaProcessor{
		oracle: oracle,
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified modulus bit size.
func (r *rsaProcessor) GenerateKeys(bits int) (*rsaDomain.PrivateKey, *rsaDomain.PublicKey, error) {
	privateKey, publicKey, err := generateKeyPair(r.oracle, bits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	r.logger.Info("Generated RSA key pair of ", bits, " bits")
	return privateKey, publicKey, nil
}

// Encrypt encrypts plaintext using RSA-OAEP with the public key.
func (r *rsaProcessor) Encrypt(plainText []byte, publicKey *rsaDomain.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	k := publicKey.Size()
	stream, err := randomness.NewSeededStream(r.oracle, 8)
	if err != nil {
		return nil, fmt.Errorf("failed to seed OAEP stream: %w", err)
	}

	em, err := encodeOAEP(plainText, nil, k, stream)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	c, err := publicOp(new(big.Int).SetBytes(em), publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	cipherText, err := intToFixedBytes(c, k)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Info("RSA encryption succeeded")
	return cipherText, nil
}

// Decrypt decrypts RSA-OAEP ciphertext with the blinded-CRT private operation.
func (r *rsaProcessor) Decrypt(cipherText []byte, privateKey *rsaDomain.PrivateKey) ([]byte, error) {
	return r.DecryptWithVariant(cipherText, privateKey, rsaDomain.VariantBlindedCRT)
}

// DecryptWithVariant decrypts RSA-OAEP ciphertext using an explicit
// private-operation variant.
func (r *rsaProcessor) DecryptWithVariant(cipherText []byte, privateKey *rsaDomain.PrivateKey, variant rsaDomain.DecryptionVariant) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	c := new(big.Int).SetBytes(cipherText)
	if c.Cmp(privateKey.N) >= 0 {
		return nil, fmt.Errorf("%w: ciphertext not below modulus", rsaDomain.ErrInputTooLarge)
	}

	stream, err := randomness.NewSeededStream(r.oracle, blindingBits)
	if err != nil {
		return nil, fmt.Errorf("failed to seed blinding stream: %w", err)
	}

	m, err := privateOp(c, privateKey, variant, stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	em, err := intToFixedBytes(m, privateKey.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	plainText, cause, err := decodeOAEP(em, nil)
	if err != nil {
		// One opaque error for every padding failure; the cause stays at
		// debug level to limit padding-oracle leakage.
		r.logger.Debug("OAEP decoding failed: ", cause)
		return nil, err
	}

	r.logger.Info("RSA decryption succeeded")
	return plainText, nil
}

// Sign creates a digital signature using RSA-PSS with the private key.
func (r *rsaProcessor) Sign(data []byte, privateKey *rsaDomain.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	mHash := hashing.Sum256(data)
	emBits := privateKey.N.BitLen() - 1

	stream, err := randomness.NewSeededStream(r.oracle, 8)
	if err != nil {
		return nil, fmt.Errorf("failed to seed PSS stream: %w", err)
	}

	em, err := encodePSS(mHash[:], emBits, stream)
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}

	blindingStream, err := randomness.NewSeededStream(r.oracle, blindingBits)
	if err != nil {
		return nil, fmt.Errorf("failed to seed blinding stream: %w", err)
	}

	s := privateOpBlindedCRT(new(big.Int).SetBytes(em), privateKey, blindingStream)

	signature, err := intToFixedBytes(s, privateKey.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}

	r.logger.Info("RSA signing succeeded")
	return signature, nil
}

// Verify verifies an RSA-PSS signature using the public key. A well-formed
// but non-matching signature yields (false, nil).
func (r *rsaProcessor) Verify(data []byte, signature []byte, publicKey *rsaDomain.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, errors.New("public key cannot be nil")
	}

	// A representative outside [0, n) cannot be a signature under this key.
	s := new(big.Int).SetBytes(signature)
	if s.Cmp(publicKey.N) >= 0 {
		return false, nil
	}

	m, err := publicOp(s, publicKey)
	if err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}

	emBits := publicKey.N.BitLen() - 1
	emLen := (emBits + 7) / 8

	em, err := intToFixedBytes(m, emLen)
	if err != nil {
		return false, nil
	}

	mHash := hashing.Sum256(data)
	if !verifyPSS(mHash[:], em, emBits) {
		return false, nil
	}

	r.logger.Info("RSA signature verified successfully")
	return true, nil
}

// SavePrivateKeyToFile saves the RSA private key as a base64 blob file.
func (r *rsaProcessor) SavePrivateKeyToFile(privateKey *rsaDomain.PrivateKey, filename string) error {
	blob, err := EncodePrivateKey(privateKey)
	if err != nil {
		return fmt.Errorf("failed to encode private key: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(filename), []byte(blob), 0600); err != nil {
		return fmt.Errorf("failed to write private key file: %w", err)
	}

	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

// SavePublicKeyToFile saves the RSA public key as a base64 blob file.
func (r *rsaProcessor) SavePublicKeyToFile(publicKey *rsaDomain.PublicKey, filename string) error {
	blob, err := EncodePublicKey(publicKey)
	if err != nil {
		return fmt.Errorf("failed to encode public key: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(filename), []byte(blob), 0600); err != nil {
		return fmt.Errorf("failed to write public key file: %w", err)
	}

	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

// ReadPrivateKey reads an RSA private key from a base64 blob file.
func (r *rsaProcessor) ReadPrivateKey(privateKeyPath string) (*rsaDomain.PrivateKey, error) {
	blob, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read private key file: %w", err)
	}

	privateKey, err := DecodePrivateKey(string(blob))
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key: %w", err)
	}

	return privateKey, nil
}

// ReadPublicKey reads an RSA public key from a base64 blob file.
func (r *rsaProcessor) ReadPublicKey(publicKeyPath string) (*rsaDomain.PublicKey, error) {
	blob, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read public key file: %w", err)
	}

	publicKey, err := DecodePublicKey(string(blob))
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key: %w", err)
	}

	return publicKey, nil
}
