package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	vdds "github.com/nodebus/vdds"
)

func newPingCommand() *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Run a client/server ping exchange over /ping/req and /ping/rsp for a bounded duration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPing(duration)
		},
	}
	cmd.Flags().DurationVar(&duration, "duration", time.Second, "how long to run the exchange")
	return cmd
}

// runPing mirrors ping-test.cc's run_test: CLIENT0 publishes /ping/req and
// subscribes /ping/rsp, SERVER0 subscribes /ping/req and mirrors every
// request back onto /ping/rsp, both subscribers driven by a Cond notifier
// rather than busy-polling. Under sustained load for duration, neither
// queue should ever see a drop.
func runPing(duration time.Duration) error {
	d := vdds.NewDomain(domainName)

	serverNotifier := vdds.NewCond()
	reqSub, err := vdds.NewSubscriber[pingMsg](d, "SERVER0", "/ping/req", vdds.WithQueueSize(queueSize), vdds.WithNotifier(serverNotifier))
	if err != nil {
		return fmt.Errorf("new subscriber(req): %w", err)
	}
	defer reqSub.Close()

	rspPub, err := vdds.NewPublisher[pingMsg](d, "SERVER0", "/ping/rsp")
	if err != nil {
		return fmt.Errorf("new publisher(rsp): %w", err)
	}
	defer rspPub.Close()

	clientNotifier := vdds.NewCond()
	reqPub, err := vdds.NewPublisher[pingMsg](d, "CLIENT0", "/ping/req")
	if err != nil {
		return fmt.Errorf("new publisher(req): %w", err)
	}
	defer reqPub.Close()

	rspSub, err := vdds.NewSubscriber[pingMsg](d, "CLIENT0", "/ping/rsp", vdds.WithQueueSize(queueSize), vdds.WithNotifier(clientNotifier))
	if err != nil {
		return fmt.Errorf("new subscriber(rsp): %w", err)
	}
	defer rspSub.Close()

	d.Dump(vdds.Filter{TopicName: "any", DataType: "any"})

	stop := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() { // server: mirror every req onto rsp
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			for {
				m, ok := reqSub.Pop()
				if !ok {
					break
				}
				rspPub.Push(m)
			}
			serverNotifier.WaitFor(time.Millisecond)
		}
	}()

	wg.Add(1)
	var sent uint64
	go func() { // client: push a req, wait for its rsp, repeat
		defer wg.Done()
		var seq uint64
		for {
			select {
			case <-stop:
				return
			default:
			}
			seq++
			reqPub.Push(newPingMsg(seq))
			sent = seq
			clientNotifier.WaitFor(100 * time.Millisecond)
			for {
				if _, ok := rspSub.Pop(); !ok {
					break
				}
			}
		}
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()

	serverDrops := reqSub.Queue().DropCount()
	clientDrops := rspSub.Queue().DropCount()
	fmt.Printf("ping: sent=%d server-drops=%d client-drops=%d\n", sent, serverDrops, clientDrops)
	if serverDrops != 0 {
		return fmt.Errorf("server dropped %d requests", serverDrops)
	}
	if clientDrops != 0 {
		return fmt.Errorf("client dropped %d responses", clientDrops)
	}
	return nil
}
