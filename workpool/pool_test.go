package workpool

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllTasks(t *testing.T) {
	p := New(4)
	defer p.Close()

	var counter int64
	var tasks []*Task
	for i := 0; i < 50; i++ {
		tasks = append(tasks, p.Submit(func() error {
			atomic.AddInt64(&counter, 1)
			return nil
		}))
	}
	for _, task := range tasks {
		if err := task.Wait(); err != nil {
			t.Fatal(err)
		}
	}
	if counter != 50 {
		t.Fatalf("expected 50 completions, got %d", counter)
	}
}

func TestPoolPropagatesTaskError(t *testing.T) {
	p := New(1)
	defer p.Close()

	task := p.Submit(func() error { return errBoom })
	if err := task.Wait(); err != errBoom {
		t.Fatalf("expected errBoom, got %v", err)
	}
}

func TestPoolSingleWorkerIsFIFO(t *testing.T) {
	p := New(1)
	defer p.Close()

	var order []int
	var tasks []*Task
	for i := 0; i < 10; i++ {
		i := i
		tasks = append(tasks, p.Submit(func() error {
			order = append(order, i)
			return nil
		}))
	}
	for _, task := range tasks {
		task.Wait()
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("expected FIFO order, got %v", order)
		}
	}
}

var errBoom = &boomError{}

type boomError struct{}

func (*boomError) Error() string { return "boom" }
