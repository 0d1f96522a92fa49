package main

import (
	"fmt"

	"github.com/spf13/cobra"

	vdds "github.com/nodebus/vdds"
)

func newFanoutCommand() *cobra.Command {
	var (
		topicName string
		subs      int
	)

	cmd := &cobra.Command{
		Use:   "fanout",
		Short: "Publish one message and confirm every subscriber receives it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFanout(topicName, subs)
		},
	}
	cmd.Flags().StringVar(&topicName, "topic", "/ping/req", "topic name")
	cmd.Flags().IntVar(&subs, "subscribers", 8, "number of subscribers")
	return cmd
}

func runFanout(topicName string, n int) error {
	d := vdds.NewDomain(domainName)

	pub, err := vdds.NewPublisher[pingMsg](d, "PUB", topicName)
	if err != nil {
		return fmt.Errorf("new publisher: %w", err)
	}
	defer pub.Close()

	subs := make([]*vdds.Subscriber[pingMsg], n)
	for i := range subs {
		s, err := vdds.NewSubscriber[pingMsg](d, fmt.Sprintf("SUB%d", i), topicName, vdds.WithQueueSize(queueSize))
		if err != nil {
			return fmt.Errorf("new subscriber %d: %w", i, err)
		}
		subs[i] = s
		defer s.Close()
	}

	pub.Push(newPingMsg(99))

	reached := 0
	for i, s := range subs {
		m, ok := s.Pop()
		if !ok {
			fmt.Printf("subscriber %d: did not receive the message\n", i)
			continue
		}
		if m.Payload().Seq == 99 {
			reached++
		}
	}
	fmt.Printf("fan-out reached %d/%d subscribers\n", reached, n)
	if reached != n {
		return fmt.Errorf("fan-out incomplete: %d/%d", reached, n)
	}
	return nil
}
