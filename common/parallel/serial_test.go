package parallel

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type foo struct {
	t      *testing.T
	result []int
	failAt int
}

func (f *foo) ParallelDo(ctx context.Context, routine, task int) (interface{}, error) {
	if f.failAt > 0 && task == f.failAt {
		return nil, errors.Errorf("task %v failed", task)
	}

	return task * task, nil
}

func (f *foo) ParallelCollect(result *Result) error {
	assert.Nil(f.t, result.err)
	assert.Equal(f.t, len(f.result), result.Task)
	assert.Equal(f.t, result.Task*result.Task, result.Value.(int))

	f.result = append(f.result, result.Value.(int))

	return nil
}

func TestSerial(t *testing.T) {
	for _, opt := range []SerialOption{{}, {Routines: 4}, {Routines: 4, Window: 16}, {Routines: 1, Window: 1}} {
		f := foo{t: t}

		tasks := 100

		err := Serial(context.Background(), &f, tasks, opt)
		assert.Nil(t, err)
		assert.Equal(t, tasks, len(f.result))

		for i := 0; i < tasks; i++ {
			assert.Equal(t, i*i, f.result[i])
		}
	}
}

func TestSerialError(t *testing.T) {
	f := foo{t: t, failAt: 37}

	err := Serial(context.Background(), &f, 100, SerialOption{Routines: 4})
	assert.EqualError(t, err, "task 37 failed")
	assert.LessOrEqual(t, len(f.result), 37)
}

func TestSerialCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := foo{t: t}

	// routines may still complete some tasks before observing the cancellation
	err := Serial(ctx, &f, 1000, SerialOption{Routines: 2})
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestSerialNoTasks(t *testing.T) {
	f := foo{t: t}
	assert.NoError(t, Serial(context.Background(), &f, 0))
	assert.Empty(t, f.result)
}

func TestNormalize(t *testing.T) {
	opt := SerialOption{Routines: 8, Window: 4}
	opt.Normalize(100)
	assert.Equal(t, SerialOption{Routines: 8, Window: 8}, opt)

	opt = SerialOption{Routines: 8, Window: 40}
	opt.Normalize(6)
	assert.Equal(t, SerialOption{Routines: 6, Window: 6}, opt)

	opt = SerialOption{Routines: -1, Window: -1}
	opt.Normalize(1)
	assert.Equal(t, SerialOption{Routines: 1, Window: 0}, opt)
}
