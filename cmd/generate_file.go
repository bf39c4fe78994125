package cmd

import (
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srinathln7/merkle-tree/core"
)

var (
	genFileArgs struct {
		Size      uint64
		File      string `validate:"required"`
		Overwrite bool
	}

	genFileCmd = &cobra.Command{
		Use:   "gen",
		Short: "Generate a temp file for test purpose",
		Run:   generateTempFile,
	}
)

func init() {
	genFileCmd.Flags().Uint64Var(&genFileArgs.Size, "size", 0, "File size in bytes (default \"[1M, 10M)\")")
	genFileCmd.Flags().StringVar(&genFileArgs.File, "file", "tmp123456", "File name to generate")
	genFileCmd.Flags().BoolVar(&genFileArgs.Overwrite, "overwrite", false, "Whether to overwrite existing file")

	rootCmd.AddCommand(genFileCmd)
}

func generateTempFile(*cobra.Command, []string) {
	mustValidateArgs(&genFileArgs)

	exists, err := core.Exists(genFileArgs.File)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to check file existence")
	}

	if exists {
		if !genFileArgs.Overwrite {
			logrus.WithField("file", genFileArgs.File).Warn("File already exists")
			return
		}

		logrus.WithField("file", genFileArgs.File).Info("Overwrite file")
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if genFileArgs.Size == 0 {
		// [1M, 10M)
		genFileArgs.Size = 1024*1024 + uint64(9.0*1024*1024*r.Float64())
	}

	data := make([]byte, genFileArgs.Size)
	if n, err := r.Read(data); err != nil {
		logrus.WithError(err).Fatal("Failed to generate random data")
	} else if n != len(data) {
		logrus.WithField("n", n).Fatal("Invalid data len")
	}

	if err := os.WriteFile(genFileArgs.File, data, 0644); err != nil {
		logrus.WithError(err).Fatal("Failed to write file")
	}

	file, tree := mustLoadTree(genFileArgs.File)
	defer file.Close()

	logrus.WithFields(logrus.Fields{
		"root":   tree.RootHash(),
		"leaves": tree.NumLeaves(),
		"file":   genFileArgs.File,
	}).Info("Succeeded to write file")
}
