package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootHashArgs struct {
		File string `validate:"required"`
	}

	rootHashCmd = &cobra.Command{
		Use:   "root",
		Short: "Print the merkle root of a file",
		Run:   printRootHash,
	}
)

func init() {
	rootHashCmd.Flags().StringVar(&rootHashArgs.File, "file", "", "File name to build merkle tree")
	rootHashCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(rootHashCmd)
}

func printRootHash(*cobra.Command, []string) {
	mustValidateArgs(&rootHashArgs)

	file, tree := mustLoadTree(rootHashArgs.File)
	defer file.Close()

	logrus.WithFields(logrus.Fields{
		"file":   rootHashArgs.File,
		"leaves": tree.NumLeaves(),
		"nodes":  tree.NumNodes(),
	}).Info("Merkle tree generated")

	fmt.Println(tree.RootHash().Hex())
}
