package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	vdds "github.com/nodebus/vdds"
)

func newShutdownCommand() *cobra.Command {
	var topicName string

	cmd := &cobra.Command{
		Use:   "shutdown",
		Short: "Block a subscriber in WaitFor and show Domain.Shutdown waking it promptly",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShutdown(topicName)
		},
	}
	cmd.Flags().StringVar(&topicName, "topic", "/ping/req", "topic name")
	return cmd
}

func runShutdown(topicName string) error {
	d := vdds.NewDomain(domainName)

	n := vdds.NewCond()
	sub, err := vdds.NewSubscriber[pingMsg](d, "SUB", topicName, vdds.WithNotifier(n))
	if err != nil {
		return fmt.Errorf("new subscriber: %w", err)
	}
	defer sub.Close()

	woke := make(chan time.Duration, 1)
	go func() {
		start := time.Now()
		n.WaitFor(time.Hour)
		woke <- time.Since(start)
	}()

	time.Sleep(20 * time.Millisecond)
	fmt.Println("blocked subscriber waiting on a 1h timeout, calling Domain.Shutdown...")
	d.Shutdown(time.Millisecond, vdds.Filter{TopicName: "any", DataType: "any"})

	select {
	case elapsed := <-woke:
		fmt.Printf("subscriber woke after %v instead of waiting out its 1h timeout\n", elapsed)
	case <-time.After(2 * time.Second):
		return fmt.Errorf("subscriber did not wake within 2s of Shutdown")
	}
	return nil
}
