package commands

import (
	"fmt"

	"rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/infrastructure/cryptography"
	"rsa_vault_service/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for handling key generation via CLI.
type KeyCommandHandler struct {
	rsaProcessor rsa.Processor
	logger       logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging and an RSA processor.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &KeyCommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// GenerateKeysCmd generates an RSA key pair, persists both halves as blob
// files in the selected directory and prints the base64 blobs.
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		return fmt.Errorf("invalid bits flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	uniqueID := uuid.New()

	privateKey, publicKey, err := commandHandler.rsaProcessor.GenerateKeys(bits)
	if err != nil {
		return err
	}

	privateKeyFilePath := fmt.Sprintf("%s/%s-private-key.b64", keyDir, uniqueID.String())
	if err := commandHandler.rsaProcessor.SavePrivateKeyToFile(privateKey, privateKeyFilePath); err != nil {
		return err
	}

	publicKeyFilePath := fmt.Sprintf("%s/%s-public-key.b64", keyDir, uniqueID.String())
	if err := commandHandler.rsaProcessor.SavePublicKeyToFile(publicKey, publicKeyFilePath); err != nil {
		return err
	}

	privateBlob, err := cryptography.EncodePrivateKey(privateKey)
	if err != nil {
		return err
	}
	publicBlob, err := cryptography.EncodePublicKey(publicKey)
	if err != nil {
		return err
	}

	cmd.Println("private:", privateBlob)
	cmd.Println("public:", publicBlob)
	return nil
}

// InitKeyCommands registers the key generation command with the root command.
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize key command handler: %w", err)
	}

	generateKeysCmd := &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair from safe primes",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().Int("bits", 2048, "Modulus size in bits (512, 1024, 2048, 3072 or 4096)")
	generateKeysCmd.Flags().String("key-dir", ".", "Directory to store the key blob files")
	rootCmd.AddCommand(generateKeysCmd)

	return nil
}
