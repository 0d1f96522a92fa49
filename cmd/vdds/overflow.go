package main

import (
	"fmt"

	"github.com/spf13/cobra"

	vdds "github.com/nodebus/vdds"
)

func newOverflowCommand() *cobra.Command {
	var (
		topicName string
		count     int
	)

	cmd := &cobra.Command{
		Use:   "overflow",
		Short: "Push more messages than the subscriber queue can hold and report the drop count",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverflow(topicName, count)
		},
	}
	cmd.Flags().StringVar(&topicName, "topic", "/ping/req", "topic name")
	cmd.Flags().IntVar(&count, "count", 1000, "number of messages to push")
	return cmd
}

func runOverflow(topicName string, count int) error {
	d := vdds.NewDomain(domainName)

	pub, err := vdds.NewPublisher[pingMsg](d, "PUB", topicName)
	if err != nil {
		return fmt.Errorf("new publisher: %w", err)
	}
	defer pub.Close()

	sub, err := vdds.NewSubscriber[pingMsg](d, "SUB", topicName, vdds.WithQueueSize(queueSize))
	if err != nil {
		return fmt.Errorf("new subscriber: %w", err)
	}
	defer sub.Close()

	for i := 0; i < count; i++ {
		pub.Push(newPingMsg(uint64(i)))
	}

	fmt.Printf("pushed=%d queue-capacity=%d pushed-count=%d dropped=%d\n",
		count, sub.Queue().Capacity(), sub.Queue().PushCount(), sub.Queue().DropCount())
	return nil
}
