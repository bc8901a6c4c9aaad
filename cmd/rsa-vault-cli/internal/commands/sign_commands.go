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

// SignCommandHandler encapsulates logic for handling RSA-PSS signatures via CLI.
type SignCommandHandler struct {
	rsaProcessor rsa.Processor
	logger       logger.Logger
}

// NewSignCommandHandler initializes a new SignCommandHandler with logging and an RSA processor.
func NewSignCommandHandler() (*SignCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &SignCommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// SignCmd signs a file using RSA-PSS and saves the signature
func (commandHandler *SignCommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	signatureFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return fmt.Errorf("invalid private-key flag: %w", err)
	}

	privateKey, err := commandHandler.rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		return fmt.Errorf("unable to read input file: %w", err)
	}

	signature, err := commandHandler.rsaProcessor.Sign(data, privateKey)
	if err != nil {
		return err
	}

	if err := os.WriteFile(signatureFilePath, signature, 0600); err != nil {
		return fmt.Errorf("unable to write signature file: %w", err)
	}

	cmd.Println(hex.EncodeToString(signature))
	return nil
}

// VerifyCmd verifies an RSA-PSS signature
func (commandHandler *SignCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	signatureFilePath, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		return fmt.Errorf("invalid signature-file flag: %w", err)
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return fmt.Errorf("invalid public-key flag: %w", err)
	}

	publicKey, err := commandHandler.rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		return fmt.Errorf("unable to read input file: %w", err)
	}

	signature, err := os.ReadFile(filepath.Clean(signatureFilePath))
	if err != nil {
		return fmt.Errorf("unable to read signature file: %w", err)
	}

	valid, err := commandHandler.rsaProcessor.Verify(data, signature, publicKey)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("signature is not valid for %s", inputFilePath)
	}

	cmd.Println("signature valid")
	return nil
}

// InitSignCommands registers the signature commands with the root command.
func InitSignCommands(rootCmd *cobra.Command) error {
	handler, err := NewSignCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize sign command handler: %w", err)
	}

	signCmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a file with RSA-PSS",
		RunE:  handler.SignCmd,
	}
	signCmd.Flags().String("input-file", "", "File to sign")
	signCmd.Flags().String("output-file", "", "Path for the signature file")
	signCmd.Flags().String("private-key", "", "Path to the private key blob file")
	rootCmd.AddCommand(signCmd)

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an RSA-PSS signature",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().String("input-file", "", "Signed file")
	verifyCmd.Flags().String("signature-file", "", "Path to the signature file")
	verifyCmd.Flags().String("public-key", "", "Path to the public key blob file")
	rootCmd.AddCommand(verifyCmd)

	return nil
}
