package cmd

import (
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srinathln7/merkle-tree/core"
)

var (
	blockArgs struct {
		File  string `validate:"required"`
		Index uint64
		Out   string
	}

	blockCmd = &cobra.Command{
		Use:   "block",
		Short: "Extract a data block of a file, e.g. to verify its proof",
		Run:   extractBlock,
	}
)

func init() {
	blockCmd.Flags().StringVar(&blockArgs.File, "file", "", "File name to read block")
	blockCmd.MarkFlagRequired("file")
	blockCmd.Flags().Uint64Var(&blockArgs.Index, "index", 0, "Index of the block")
	blockCmd.MarkFlagRequired("index")
	blockCmd.Flags().StringVar(&blockArgs.Out, "out", "", "File to write the raw block, print in hex if not specified")

	rootCmd.AddCommand(blockCmd)
}

func extractBlock(*cobra.Command, []string) {
	mustValidateArgs(&blockArgs)

	file, err := core.Open(blockArgs.File)
	if err != nil {
		logrus.WithError(err).WithField("file", blockArgs.File).Fatal("Failed to open file")
	}
	defer file.Close()

	block, err := core.BlockAt(file, treeArgs.BlockSize, blockArgs.Index)
	if err != nil {
		logrus.WithError(err).WithField("index", blockArgs.Index).Fatal("Failed to read block")
	}

	if len(blockArgs.Out) == 0 {
		os.Stdout.WriteString(hexutil.Encode(block) + "\n")
		return
	}

	if err := os.WriteFile(blockArgs.Out, block, 0644); err != nil {
		logrus.WithError(err).WithField("out", blockArgs.Out).Fatal("Failed to write block")
	}

	logrus.WithFields(logrus.Fields{
		"index": blockArgs.Index,
		"size":  len(block),
		"out":   blockArgs.Out,
	}).Info("Succeeded to extract block")
}
