package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	proofArgs struct {
		File   string `validate:"required"`
		Index  int    `validate:"gte=0"`
		Out    string
		Binary bool
	}

	proofCmd = &cobra.Command{
		Use:   "proof",
		Short: "Generate the inclusion proof of a file block",
		Run:   generateProof,
	}
)

func init() {
	proofCmd.Flags().StringVar(&proofArgs.File, "file", "", "File name to build merkle tree")
	proofCmd.MarkFlagRequired("file")
	proofCmd.Flags().IntVar(&proofArgs.Index, "index", 0, "Index of the block to prove")
	proofCmd.MarkFlagRequired("index")
	proofCmd.Flags().StringVar(&proofArgs.Out, "out", "", "File to write the proof, stdout if not specified")
	proofCmd.Flags().BoolVar(&proofArgs.Binary, "binary", false, "Encode the proof in binary instead of JSON")

	rootCmd.AddCommand(proofCmd)
}

func generateProof(*cobra.Command, []string) {
	mustValidateArgs(&proofArgs)

	file, tree := mustLoadTree(proofArgs.File)
	defer file.Close()

	proof, err := tree.GenerateProof(proofArgs.Index)
	if err != nil {
		logrus.WithError(err).WithField("index", proofArgs.Index).Fatal("Failed to generate proof")
	}

	var data []byte
	if proofArgs.Binary {
		data, err = proof.MarshalBinary()
	} else {
		data, err = json.MarshalIndent(proof, "", "  ")
	}
	if err != nil {
		logrus.WithError(err).Fatal("Failed to encode proof")
	}

	logger := logrus.WithFields(logrus.Fields{
		"index": proofArgs.Index,
		"steps": len(proof.Steps),
		"root":  tree.RootHash(),
	})

	if len(proofArgs.Out) == 0 {
		if proofArgs.Binary {
			os.Stdout.Write(data)
		} else {
			fmt.Println(string(data))
		}
		logger.Debug("Succeeded to generate proof")
		return
	}

	if err := os.WriteFile(proofArgs.Out, data, 0644); err != nil {
		logrus.WithError(err).WithField("out", proofArgs.Out).Fatal("Failed to write proof")
	}

	logger.WithField("out", proofArgs.Out).Info("Succeeded to generate proof")
}
