package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/infrastructure/cryptography"
	"rsa_vault_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// CryptCommandHandler encapsulates logic for handling RSA-OAEP encryption
// and decryption via CLI.
type CryptCommandHandler struct {
	rsaProcessor rsa.Processor
	logger       logger.Logger
}

// NewCryptCommandHandler initializes a new CryptCommandHandler with logging and an RSA processor.
func NewCryptCommandHandler() (*CryptCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &CryptCommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// EncryptCmd encrypts a message with RSA-OAEP and prints the ciphertext hex.
func (commandHandler *CryptCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return fmt.Errorf("invalid public-key flag: %w", err)
	}

	plainText := []byte(message)
	if inputFile != "" {
		plainText, err = os.ReadFile(filepath.Clean(inputFile))
		if err != nil {
			return fmt.Errorf("unable to read input file: %w", err)
		}
	}

	publicKey, err := commandHandler.rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		return err
	}

	cipherText, err := commandHandler.rsaProcessor.Encrypt(plainText, publicKey)
	if err != nil {
		return err
	}

	cmd.Println(hex.EncodeToString(cipherText))
	return nil
}

// DecryptCmd decrypts an RSA-OAEP ciphertext given as hex and prints the plaintext.
func (commandHandler *CryptCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	cipherHex, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		return fmt.Errorf("invalid ciphertext flag: %w", err)
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return fmt.Errorf("invalid private-key flag: %w", err)
	}
	variant, err := cmd.Flags().GetString("variant")
	if err != nil {
		return fmt.Errorf("invalid variant flag: %w", err)
	}

	cipherText, err := hex.DecodeString(cipherHex)
	if err != nil {
		return fmt.Errorf("ciphertext is not valid hex: %w", err)
	}

	privateKey, err := commandHandler.rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		return err
	}

	plainText, err := commandHandler.rsaProcessor.DecryptWithVariant(cipherText, privateKey, rsa.DecryptionVariant(variant))
	if err != nil {
		return err
	}

	cmd.Println(string(plainText))
	return nil
}

// InitCryptCommands registers the encryption commands with the root command.
func InitCryptCommands(rootCmd *cobra.Command) error {
	handler, err := NewCryptCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize crypt command handler: %w", err)
	}

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message with RSA-OAEP and print the ciphertext hex",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().String("message", "", "UTF-8 message to encrypt")
	encryptCmd.Flags().String("input-file", "", "File to encrypt instead of --message")
	encryptCmd.Flags().String("public-key", "", "Path to the public key blob file")
	rootCmd.AddCommand(encryptCmd)

	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt an RSA-OAEP ciphertext given as hex",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().String("ciphertext", "", "Ciphertext hex to decrypt")
	decryptCmd.Flags().String("private-key", "", "Path to the private key blob file")
	decryptCmd.Flags().String("variant", string(rsa.VariantBlindedCRT), "Private operation variant (naive, blinded, crt, blinded-crt)")
	rootCmd.AddCommand(decryptCmd)

	return nil
}
