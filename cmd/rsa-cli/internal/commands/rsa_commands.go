package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cryptoDomain "github.com/MikaPS/PublicKeyCryptography/internal/domain/crypto"
	"github.com/MikaPS/PublicKeyCryptography/internal/infrastructure/cryptography"
	"github.com/MikaPS/PublicKeyCryptography/internal/infrastructure/entropy"
	"github.com/MikaPS/PublicKeyCryptography/internal/pkg/config"
	"github.com/MikaPS/PublicKeyCryptography/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	settings *config.Settings
	logger   logger.Logger
}

// NewRSACommandHandler returns a handler whose settings and logger are resolved by Setup.
func NewRSACommandHandler() *RSACommandHandler {
	return &RSACommandHandler{}
}

// Setup loads the settings and logger before any sub-command runs.
func (commandHandler *RSACommandHandler) Setup(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	loggerInstance, err := setupLogger(&settings.Logger)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	commandHandler.settings = settings
	commandHandler.logger = loggerInstance
	return nil
}

// keygenSettings overlays the keygen flags the user set on the file settings.
func (commandHandler *RSACommandHandler) keygenSettings(cmd *cobra.Command) (*config.KeygenSettings, error) {
	settings := commandHandler.settings.Keygen
	flags := cmd.Flags()

	var err error
	if flags.Changed("bits") {
		if settings.Bits, err = flags.GetInt("bits"); err != nil {
			return nil, fmt.Errorf("invalid bits flag: %w", err)
		}
	}
	if flags.Changed("iters") {
		if settings.Iterations, err = flags.GetInt("iters"); err != nil {
			return nil, fmt.Errorf("invalid iters flag: %w", err)
		}
	}
	if flags.Changed("seed") {
		if settings.Seed, err = flags.GetInt64("seed"); err != nil {
			return nil, fmt.Errorf("invalid seed flag: %w", err)
		}
	} else if settings.Seed == 0 {
		settings.Seed = time.Now().Unix()
	}
	if flags.Changed("pubkey") {
		if settings.PublicKeyPath, err = flags.GetString("pubkey"); err != nil {
			return nil, fmt.Errorf("invalid pubkey flag: %w", err)
		}
	}
	if flags.Changed("privkey") {
		if settings.PrivateKeyPath, err = flags.GetString("privkey"); err != nil {
			return nil, fmt.Errorf("invalid privkey flag: %w", err)
		}
	}
	if flags.Changed("key-dir") {
		if settings.KeyDir, err = flags.GetString("key-dir"); err != nil {
			return nil, fmt.Errorf("invalid key-dir flag: %w", err)
		}
	}
	if flags.Changed("identity") {
		if settings.Identity, err = flags.GetString("identity"); err != nil {
			return nil, fmt.Errorf("invalid identity flag: %w", err)
		}
	} else if settings.Identity == "" {
		settings.Identity = os.Getenv("USER")
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// GenerateKeysCmd generates an RSA key pair signed over the owner's identity and writes both key files
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	settings, err := commandHandler.keygenSettings(cmd)
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("invalid verbose flag: %w", err)
	}

	publicKeyFilePath := settings.PublicKeyPath
	privateKeyFilePath := settings.PrivateKeyPath
	if settings.KeyDir != "" {
		uniqueID := uuid.New()
		publicKeyFilePath = filepath.Join(settings.KeyDir, fmt.Sprintf("%s-%s", uniqueID.String(), cryptoDomain.DefaultPublicKeyFile))
		privateKeyFilePath = filepath.Join(settings.KeyDir, fmt.Sprintf("%s-%s", uniqueID.String(), cryptoDomain.DefaultPrivateKeyFile))
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(commandHandler.logger, entropy.New(settings.Seed))
	if err != nil {
		return fmt.Errorf("failed to create RSA processor: %w", err)
	}

	keyPair, err := rsaProcessor.GenerateKeys(settings.Bits, settings.Iterations, settings.Identity)
	if err != nil {
		return err
	}

	if verbose {
		stderr := cmd.ErrOrStderr()
		fmt.Fprintf(stderr, "seed: %d\n", settings.Seed)
		fmt.Fprintf(stderr, "username: %s\n", keyPair.Public.Identity)
		fmt.Fprintf(stderr, "user signature: %d\n", keyPair.Public.S)
		fmt.Fprintf(stderr, "p (%d bits): %d\n", keyPair.P.BitLen(), keyPair.P)
		fmt.Fprintf(stderr, "q (%d bits): %d\n", keyPair.Q.BitLen(), keyPair.Q)
		fmt.Fprintf(stderr, "n - modulus (%d bits): %d\n", keyPair.Public.N.BitLen(), keyPair.Public.N)
		fmt.Fprintf(stderr, "e - public exponent (%d bits): %d\n", keyPair.Public.E.BitLen(), keyPair.Public.E)
		fmt.Fprintf(stderr, "d - private exponent (%d bits): %d\n", keyPair.Private.D.BitLen(), keyPair.Private.D)
	}

	if err := rsaProcessor.SavePublicKeyToFile(keyPair.Public, publicKeyFilePath); err != nil {
		return err
	}
	if err := rsaProcessor.SavePrivateKeyToFile(keyPair.Private, privateKeyFilePath); err != nil {
		return err
	}

	return nil
}

// readVerifiedPublicKey reads the public key and refuses it unless its signature matches its identity
func (commandHandler *RSACommandHandler) readVerifiedPublicKey(rsaProcessor cryptoDomain.RSAProcessor, publicKeyPath string) (*cryptoDomain.PublicKey, error) {
	publicKey, err := rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		return nil, err
	}

	valid, err := rsaProcessor.Verify(publicKey)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, fmt.Errorf("couldn't verify signature of %s: %w", publicKey.Identity, cryptoDomain.ErrSignatureMismatch)
	}

	return publicKey, nil
}

// EncryptCmd encrypts the input with a verified public key
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := cmd.Flags().GetString("input")
	if err != nil {
		return fmt.Errorf("invalid input flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}
	publicKeyPath, err := cmd.Flags().GetString("pubkey")
	if err != nil {
		return fmt.Errorf("invalid pubkey flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("invalid verbose flag: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(commandHandler.logger, nil)
	if err != nil {
		return fmt.Errorf("failed to create RSA processor: %w", err)
	}

	publicKey, err := commandHandler.readVerifiedPublicKey(rsaProcessor, publicKeyPath)
	if err != nil {
		return err
	}

	if verbose {
		stderr := cmd.ErrOrStderr()
		fmt.Fprintf(stderr, "username: %s\n", publicKey.Identity)
		fmt.Fprintf(stderr, "user signature: %d\n", publicKey.S)
		fmt.Fprintf(stderr, "n - modulus (%d bits): %d\n", publicKey.N.BitLen(), publicKey.N)
		fmt.Fprintf(stderr, "e - public exponent (%d bits): %d\n", publicKey.E.BitLen(), publicKey.E)
	}

	in, closeIn, err := openInput(cmd, inputFile)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(cmd, outputFile)
	if err != nil {
		return err
	}

	if err := rsaProcessor.Encrypt(in, out, publicKey); err != nil {
		discardOutput(outputFile, closeOut)
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	return nil
}

// DecryptCmd decrypts the input with a private key
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := cmd.Flags().GetString("input")
	if err != nil {
		return fmt.Errorf("invalid input flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}
	privateKeyPath, err := cmd.Flags().GetString("privkey")
	if err != nil {
		return fmt.Errorf("invalid privkey flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("invalid verbose flag: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(commandHandler.logger, nil)
	if err != nil {
		return fmt.Errorf("failed to create RSA processor: %w", err)
	}

	privateKey, err := rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		return err
	}

	if verbose {
		stderr := cmd.ErrOrStderr()
		fmt.Fprintf(stderr, "n - modulus (%d bits): %d\n", privateKey.N.BitLen(), privateKey.N)
		fmt.Fprintf(stderr, "d - private key (%d bits): %d\n", privateKey.D.BitLen(), privateKey.D)
	}

	in, closeIn, err := openInput(cmd, inputFile)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(cmd, outputFile)
	if err != nil {
		return err
	}

	if err := rsaProcessor.Decrypt(in, out, privateKey); err != nil {
		discardOutput(outputFile, closeOut)
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	return nil
}

// VerifyCmd checks that a public key file is signed over its own identity
func (commandHandler *RSACommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	publicKeyPath, err := cmd.Flags().GetString("pubkey")
	if err != nil {
		return fmt.Errorf("invalid pubkey flag: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(commandHandler.logger, nil)
	if err != nil {
		return fmt.Errorf("failed to create RSA processor: %w", err)
	}

	publicKey, err := commandHandler.readVerifiedPublicKey(rsaProcessor, publicKeyPath)
	if errors.Is(err, cryptoDomain.ErrSignatureMismatch) {
		fmt.Fprintf(cmd.OutOrStdout(), "Signature is invalid\n")
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signature is valid for %s\n", publicKey.Identity)
	return nil
}

// InitRSACommands registers the settings flags and the RSA commands
func InitRSACommands(rootCmd *cobra.Command) error {
	if rootCmd == nil {
		return errors.New("root command cannot be nil")
	}
	handler := NewRSACommandHandler()

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML settings file with logger and keygen sections")
	rootCmd.PersistentFlags().String("env-file", ".env", "Path to a .env file with RSA_LOG_* variables")
	rootCmd.PersistentPreRunE = handler.Setup

	var keygenCmd = &cobra.Command{
		Use:   "keygen",
		Short: "Generate a public / private key pair",
		Long: `keygen generates a public / private key pair, placing the keys into the public and private
key files. The modulus n has at least the requested number of bits.`,
		Args: cobra.NoArgs,
		RunE: handler.GenerateKeysCmd,
	}
	keygenCmd.Flags().Int64P("seed", "s", 0, "Random number seed (default: current time)")
	keygenCmd.Flags().IntP("bits", "b", config.DefaultModulusBits, "Minimum number of bits in the public modulus n")
	keygenCmd.Flags().IntP("iters", "i", config.DefaultIterations, "Miller-Rabin iterations for primality testing")
	keygenCmd.Flags().StringP("pubkey", "n", cryptoDomain.DefaultPublicKeyFile, "Public key file")
	keygenCmd.Flags().StringP("privkey", "d", cryptoDomain.DefaultPrivateKeyFile, "Private key file")
	keygenCmd.Flags().String("identity", "", "Identity to sign (default: $USER)")
	keygenCmd.Flags().String("key-dir", "", "Directory to store a uniquely named key pair, overriding the key file flags")
	keygenCmd.Flags().BoolP("verbose", "v", false, "Print key material to standard error")
	rootCmd.AddCommand(keygenCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file with a public key",
		Args:  cobra.NoArgs,
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("input", "i", "", "Read input from this file (default: standard input)")
	encryptCmd.Flags().StringP("output", "o", "", "Write output to this file (default: standard output)")
	encryptCmd.Flags().StringP("pubkey", "n", cryptoDomain.DefaultPublicKeyFile, "Public key file")
	encryptCmd.Flags().BoolP("verbose", "v", false, "Print key material to standard error")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file with a private key",
		Args:  cobra.NoArgs,
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("input", "i", "", "Read input from this file (default: standard input)")
	decryptCmd.Flags().StringP("output", "o", "", "Write output to this file (default: standard output)")
	decryptCmd.Flags().StringP("privkey", "n", cryptoDomain.DefaultPrivateKeyFile, "Private key file")
	decryptCmd.Flags().BoolP("verbose", "v", false, "Print key material to standard error")
	rootCmd.AddCommand(decryptCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify the identity signature of a public key",
		Args:  cobra.NoArgs,
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("pubkey", "n", cryptoDomain.DefaultPublicKeyFile, "Public key file")
	rootCmd.AddCommand(verifyCmd)

	return nil
}
