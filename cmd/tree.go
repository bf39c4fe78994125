package cmd

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/srinathln7/merkle-tree/core"
	"github.com/srinathln7/merkle-tree/core/merkle"
)

const (
	hashKeccak256 = "keccak256"
	hashSHA256    = "sha256"
	hashBlake2b   = "blake2b"
)

var validate = validator.New()

// newHasher returns the hasher of the specified hash function.
func newHasher(name string) (merkle.Hasher, error) {
	switch name {
	case hashKeccak256:
		return merkle.Keccak256Hasher{}, nil
	case hashSHA256:
		return merkle.SHA256Hasher{}, nil
	case hashBlake2b:
		return merkle.Blake2bHasher{}, nil
	default:
		return nil, errors.Errorf("unsupported hash function %v", name)
	}
}

// mustValidateArgs validates the global tree flags and the specified command arguments.
func mustValidateArgs(args ...interface{}) {
	for _, v := range append([]interface{}{&treeArgs}, args...) {
		if err := validate.Struct(v); err != nil {
			logrus.WithError(err).Fatal("Invalid arguments")
		}
	}
}

func mustNewHasher() merkle.Hasher {
	hasher, err := newHasher(treeArgs.Hash)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create hasher")
	}

	return hasher
}

// mustLoadTree opens the file and builds its merkle tree. The caller should close the returned file.
func mustLoadTree(filename string) (*core.File, *merkle.Tree) {
	file, err := core.Open(filename)
	if err != nil {
		logrus.WithError(err).WithField("file", filename).Fatal("Failed to open file")
	}

	tree, err := core.MerkleTree(file, treeArgs.BlockSize, mustNewHasher())
	if err != nil {
		file.Close()
		logrus.WithError(err).WithField("file", filename).Fatal("Failed to generate merkle tree")
	}

	logrus.WithFields(logrus.Fields{
		"file":   filename,
		"size":   file.Size(),
		"leaves": tree.NumLeaves(),
		"height": tree.Height(),
		"hash":   treeArgs.Hash,
	}).Debug("Merkle tree generated")

	return file, tree
}
