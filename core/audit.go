package core

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	mtcommon "github.com/srinathln7/merkle-tree/common"
	"github.com/srinathln7/merkle-tree/common/parallel"
	"github.com/srinathln7/merkle-tree/common/util"
	"github.com/srinathln7/merkle-tree/core/merkle"
)

const defaultAuditReportInterval = 5 * time.Second

// AuditOption configures Audit.
type AuditOption struct {
	Parallel       parallel.SerialOption
	ReportInterval time.Duration
	LogOption      mtcommon.LogOption
}

// AuditResult summarizes an audit of all leaves of a tree.
type AuditResult struct {
	Leaves   int   `json:"leaves"`
	Verified int   `json:"verified"`
	Failed   []int `json:"failed,omitempty"`
}

// OK returns true if every leaf is verified.
func (result *AuditResult) OK() bool {
	return result.Leaves > 0 && result.Verified == result.Leaves
}

// auditor generates and verifies the proof of every block in parallel.
type auditor struct {
	tree      *merkle.Tree
	data      IterableData
	blockSize int64
	result    AuditResult
	reminder  *util.Reminder
}

var _ parallel.Interface = (*auditor)(nil)

// Audit reads every block of data, generates its proof from the tree and
// verifies it against the tree root.
func Audit(ctx context.Context, tree *merkle.Tree, data IterableData, blockSize int64, option ...AuditOption) (*AuditResult, error) {
	var opt AuditOption
	if len(option) > 0 {
		opt = option[0]
	}

	if opt.ReportInterval == 0 {
		opt.ReportInterval = defaultAuditReportInterval
	}

	numBlocks, err := NumBlocks(data, blockSize)
	if err != nil {
		return nil, err
	}

	if int(numBlocks) != tree.NumLeaves() {
		return nil, errors.Errorf("number of blocks mismatch, tree = %v, data = %v", tree.NumLeaves(), numBlocks)
	}

	logger := mtcommon.NewLogger()
	if opt.LogOption != (mtcommon.LogOption{}) {
		logger = mtcommon.NewLogger(opt.LogOption)
	}

	a := auditor{
		tree:      tree,
		data:      data,
		blockSize: blockSize,
		result:    AuditResult{Leaves: tree.NumLeaves()},
		reminder:  util.NewReminder(logger, opt.ReportInterval),
	}

	start := time.Now()
	if err := parallel.Serial(ctx, &a, tree.NumLeaves(), opt.Parallel); err != nil {
		return nil, errors.WithMessage(err, "failed to audit merkle tree")
	}

	logger.WithFields(logrus.Fields{
		"leaves":   a.result.Leaves,
		"verified": a.result.Verified,
		"failed":   len(a.result.Failed),
		"duration": time.Since(start),
	}).Info("Merkle tree audit completed")

	return &a.result, nil
}

// ParallelDo implements parallel.Interface.
func (a *auditor) ParallelDo(ctx context.Context, routine, task int) (interface{}, error) {
	block, err := BlockAt(a.data, a.blockSize, uint64(task))
	if err != nil {
		return nil, err
	}

	proof, err := a.tree.GenerateProof(task)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to generate proof of leaf %v", task)
	}

	return merkle.VerifyProof(a.tree.Hasher(), block, proof, a.tree.RootHash()), nil
}

// ParallelCollect implements parallel.Interface.
func (a *auditor) ParallelCollect(result *parallel.Result) error {
	if result.Value.(bool) {
		a.result.Verified++
	} else {
		a.result.Failed = append(a.result.Failed, result.Task)
	}

	a.reminder.Remind("Audit progress", logrus.Fields{
		"completed": result.Task + 1,
		"total":     a.result.Leaves,
	})

	return nil
}
