package cmd

import (
	"encoding/json"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srinathln7/merkle-tree/core/merkle"
)

var (
	verifyArgs struct {
		Proof    string `validate:"required"`
		Root     string `validate:"required"`
		LeafFile string
		LeafHex  string
		Binary   bool
	}

	verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify the inclusion proof of a data block against a merkle root",
		Run:   verifyProof,
	}
)

func init() {
	verifyCmd.Flags().StringVar(&verifyArgs.Proof, "proof", "", "File of the proof to verify")
	verifyCmd.MarkFlagRequired("proof")
	verifyCmd.Flags().StringVar(&verifyArgs.Root, "root", "", "Trusted merkle root in hex")
	verifyCmd.MarkFlagRequired("root")
	verifyCmd.Flags().StringVar(&verifyArgs.LeafFile, "leaf-file", "", "File of the raw data block to verify")
	verifyCmd.Flags().StringVar(&verifyArgs.LeafHex, "leaf-hex", "", "Data block to verify in hex")
	verifyCmd.MarkFlagsOneRequired("leaf-file", "leaf-hex")
	verifyCmd.MarkFlagsMutuallyExclusive("leaf-file", "leaf-hex")
	verifyCmd.Flags().BoolVar(&verifyArgs.Binary, "binary", false, "Whether the proof is encoded in binary instead of JSON")

	rootCmd.AddCommand(verifyCmd)
}

func verifyProof(*cobra.Command, []string) {
	mustValidateArgs(&verifyArgs)

	root, err := parseHash(verifyArgs.Root)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to parse merkle root")
	}

	proof, err := loadProof(verifyArgs.Proof, verifyArgs.Binary)
	if err != nil {
		logrus.WithError(err).WithField("proof", verifyArgs.Proof).Fatal("Failed to load proof")
	}

	leaf, err := loadLeaf()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load data block")
	}

	hasher := mustNewHasher()
	logger := logrus.WithFields(logrus.Fields{
		"index": proof.LeafIndex,
		"root":  root,
	})

	if !merkle.VerifyProof(hasher, leaf, proof, root) {
		err := proof.Validate(hasher, root, leaf)
		logger.WithError(err).Fatal("Proof verification failed")
	}

	logger.Info("Proof verified")
}

func parseHash(value string) (common.Hash, error) {
	data, err := hexutil.Decode(value)
	if err != nil {
		return common.Hash{}, err
	}

	if len(data) != common.HashLength {
		return common.Hash{}, errors.Errorf("invalid hash length %v", len(data))
	}

	return common.BytesToHash(data), nil
}

func loadProof(filename string, binary bool) (*merkle.Proof, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var proof merkle.Proof

	if binary {
		err = proof.UnmarshalBinary(data)
	} else {
		err = json.Unmarshal(data, &proof)
	}

	if err != nil {
		return nil, errors.WithMessage(err, "failed to decode proof")
	}

	return &proof, nil
}

func loadLeaf() ([]byte, error) {
	if len(verifyArgs.LeafFile) > 0 {
		return os.ReadFile(verifyArgs.LeafFile)
	}

	return hexutil.Decode(verifyArgs.LeafHex)
}
