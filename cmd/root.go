package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srinathln7/merkle-tree/core"
)

var (
	logLevel         string
	logColorDisabled bool

	treeArgs struct {
		BlockSize int64  `validate:"gt=0"`
		Hash      string `validate:"oneof=keccak256 sha256 blake2b"`
	}

	rootCmd = &cobra.Command{
		Use:   "merkle-tree",
		Short: "Build merkle trees of files, generate and verify inclusion proofs",
		PersistentPreRun: func(*cobra.Command, []string) {
			initLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logrus.InfoLevel.String(), "Log level")
	rootCmd.PersistentFlags().BoolVar(&logColorDisabled, "log-color-disabled", false, "Force to disable colorful logs")
	rootCmd.PersistentFlags().Int64Var(&treeArgs.BlockSize, "block-size", core.DefaultBlockSize, "Size in bytes of the data block of each leaf")
	rootCmd.PersistentFlags().StringVar(&treeArgs.Hash, "hash", hashKeccak256, "Hash function, one of keccak256, sha256 and blake2b")
}

func initLog() {
	formatter := logrus.TextFormatter{
		FullTimestamp: true,
	}

	if logColorDisabled {
		formatter.DisableColors = true
	} else {
		formatter.ForceColors = true
	}

	logrus.SetFormatter(&formatter)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.WithError(err).WithField("level", logLevel).Fatal("Failed to parse log level")
	}

	logrus.SetLevel(level)
}

// Execute is the command line entrypoint.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
