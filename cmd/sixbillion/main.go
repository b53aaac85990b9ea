// Command sixbillion is a throughput smoke test for the runner package:
// 20,000 joined counter-pair tasks, submitted to a default Runner, timed
// end to end.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/joeycumines/go-taskkit/runner"
	"github.com/joeycumines/go-taskkit/task"
	"github.com/joeycumines/stumpy"
)

func countTo1000() *task.Task[uint32, struct{}] {
	var i uint32
	return task.New(func() task.State[uint32, struct{}] {
		i++
		if i == 1000 {
			return task.Resolve[uint32, struct{}](i)
		}
		return task.Pending[uint32, struct{}]()
	})
}

func countTo2000() *task.Task[uint32, struct{}] {
	var i uint32
	return task.New(func() task.State[uint32, struct{}] {
		i++
		if i == 2000 {
			return task.Resolve[uint32, struct{}](i)
		}
		return task.Pending[uint32, struct{}]()
	})
}

func main() {
	verbose := flag.Bool("v", false, "log worker queue activity via logiface/stumpy")
	flag.Parse()

	const n = 20000

	tasks := make([]task.Executable, n)
	joined := make([]*task.Task[uint32, struct{}], n)
	for i := range tasks {
		j := task.Map(task.Join(countTo1000(), countTo2000()), func(p task.Pair[uint32, uint32]) uint32 {
			return p.A * p.B
		})
		joined[i] = j
		tasks[i] = j
	}

	var opts []runner.RunnerOption
	if *verbose {
		log := stumpy.L.New(stumpy.L.WithStumpy())
		opts = append(opts, runner.WithLogger(log.Logger()))
	}

	r := runner.New(opts...)
	fmt.Println("Running...")
	start := time.Now()
	r.RunAll(tasks)
	r.Finish()
	fmt.Printf("Took %s to complete\n", time.Since(start))

	for _, j := range joined {
		if out := j.Poll(); !out.Settled || !out.Ok || out.Val != 1000*2000 {
			panic(fmt.Sprintf("sixbillion: unexpected outcome %+v", out))
		}
	}
}
