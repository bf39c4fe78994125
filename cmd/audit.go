package cmd

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	mtcommon "github.com/srinathln7/merkle-tree/common"
	"github.com/srinathln7/merkle-tree/common/parallel"
	"github.com/srinathln7/merkle-tree/core"
)

var (
	auditArgs struct {
		File           string        `validate:"required"`
		Routines       int           `validate:"gte=0"`
		ReportInterval time.Duration `validate:"gte=0"`
		Timeout        time.Duration `validate:"gte=0"`
	}

	auditCmd = &cobra.Command{
		Use:   "audit",
		Short: "Generate and verify the inclusion proof of every block of a file",
		Run:   audit,
	}
)

func init() {
	auditCmd.Flags().StringVar(&auditArgs.File, "file", "", "File name to audit")
	auditCmd.MarkFlagRequired("file")
	auditCmd.Flags().IntVar(&auditArgs.Routines, "routines", 0, "Number of routines to verify proofs, defaults to the number of CPUs")
	auditCmd.Flags().DurationVar(&auditArgs.ReportInterval, "report-interval", 5*time.Second, "Interval to report progress")
	auditCmd.Flags().DurationVar(&auditArgs.Timeout, "timeout", 0, "cli task timeout, 0 for no timeout")

	rootCmd.AddCommand(auditCmd)
}

func audit(*cobra.Command, []string) {
	mustValidateArgs(&auditArgs)

	ctx := context.Background()
	var cancel context.CancelFunc
	if auditArgs.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, auditArgs.Timeout)
		defer cancel()
	}

	file, tree := mustLoadTree(auditArgs.File)
	defer file.Close()

	result, err := core.Audit(ctx, tree, file, treeArgs.BlockSize, core.AuditOption{
		Parallel:       parallel.SerialOption{Routines: auditArgs.Routines},
		ReportInterval: auditArgs.ReportInterval,
		LogOption:      mtcommon.LogOption{Logger: logrus.StandardLogger()},
	})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to audit file")
	}

	logger := logrus.WithFields(logrus.Fields{
		"file":     auditArgs.File,
		"root":     tree.RootHash(),
		"leaves":   result.Leaves,
		"verified": result.Verified,
	})

	if !result.OK() {
		logger.WithField("failed", result.Failed).Fatal("Audit failed")
	}

	logger.Info("Audit succeeded")
}
