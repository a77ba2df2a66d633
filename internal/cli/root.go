// Package cli implements aescryptctl, a command-line front end over the
// aescipher core for encrypting and decrypting files and for measuring
// throughput across independent cipher contexts.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"
)

var logLevel slog.LevelVar

var rootCmd = &cobra.Command{
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Use:   "aescryptctl",
	Short: "Encrypt and decrypt files with the aescipher AES-CBC/CTR core",
	Long: `aescryptctl drives the aescipher core cipher from the command line:
it encrypts and decrypts files under AES-CBC or AES-CTR, runs batches of
files concurrently, and benchmarks independent-context throughput.`,
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stdout, &devlog.Options{
		Level: &logLevel,
	})))

	rootCmd.PersistentFlags().Bool("debug", false, "print debug logging")
	rootCmd.PersistentFlags().String("algorithm", "aes256-ctr", "cipher algorithm (see the list-algorithms command)")
	rootCmd.PersistentFlags().Bool("passphrase", false, "derive the key from a passphrase read from the terminal, instead of --key-hex")
	rootCmd.PersistentFlags().String("key-hex", "", "raw key in hex, length matching --algorithm's key size")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("algorithm", rootCmd.PersistentFlags().Lookup("algorithm"))
	viper.BindPFlag("passphrase", rootCmd.PersistentFlags().Lookup("passphrase"))
	viper.BindPFlag("key-hex", rootCmd.PersistentFlags().Lookup("key-hex"))

	viper.SetConfigName(".aescryptctl")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // absence of a config file is not an error.

	rootCmd.AddCommand(listAlgorithmsCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(benchCmd)
}

func applyDebugFlag() {
	if viper.GetBool("debug") {
		logLevel.Set(slog.LevelDebug)
	}
}

var listAlgorithmsCmd = &cobra.Command{
	Use:   "list-algorithms",
	Short: "List the supported SSH transport cipher algorithm names",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range orderedAlgorithms() {
			cmd.Println(name)
		}
		return nil
	},
}

func orderedAlgorithms() []string {
	return []string{
		"aes128-cbc",
		"aes192-cbc",
		"aes256-cbc",
		"rijndael-cbc@lysator.liu.se",
		"aes128-ctr",
		"aes192-ctr",
		"aes256-ctr",
	}
}
