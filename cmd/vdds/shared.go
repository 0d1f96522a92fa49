package main

import (
	"fmt"

	"github.com/spf13/cobra"

	vdds "github.com/nodebus/vdds"
)

func newSharedCommand() *cobra.Command {
	var (
		topicName string
		subs      int
	)

	cmd := &cobra.Command{
		Use:   "shared",
		Short: "Publish a message carrying a shared out-of-band payload and walk through its refcount",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShared(topicName, subs)
		},
	}
	cmd.Flags().StringVar(&topicName, "topic", "/shared", "topic name")
	cmd.Flags().IntVar(&subs, "subscribers", 5, "number of subscribers")
	return cmd
}

func runShared(topicName string, n int) error {
	d := vdds.NewDomain(domainName)

	pub, err := vdds.NewPublisher[dmaMsg](d, "PUB", topicName)
	if err != nil {
		return fmt.Errorf("new publisher: %w", err)
	}
	defer pub.Close()

	subs := make([]*vdds.Subscriber[dmaMsg], n)
	for i := range subs {
		s, err := vdds.NewSubscriber[dmaMsg](d, fmt.Sprintf("SUB%d", i), topicName, vdds.WithQueueSize(queueSize))
		if err != nil {
			return fmt.Errorf("new subscriber %d: %w", i, err)
		}
		subs[i] = s
		defer s.Close()
	}

	buf := newDMAPayload([]byte("dma-buffer"))
	shared := vdds.NewShared(buf, nil)
	var msg dmaMsg
	msg.Shared = shared
	pub.Push(msg)
	fmt.Printf("buffer %s: after fan-out to %d subscribers refcount=%d\n", buf.id, n, shared.UseCount())

	for i, s := range subs {
		if i == n-1 {
			fmt.Printf("subscriber %d leaves its copy unpopped\n", i)
			continue
		}
		m, ok := s.Pop()
		if !ok {
			return fmt.Errorf("subscriber %d: expected a message", i)
		}
		m.Shared.Release()
		fmt.Printf("subscriber %d popped and released: refcount=%d\n", i, shared.UseCount())
	}

	if got := shared.UseCount(); got != 1 {
		return fmt.Errorf("final refcount = %d, want 1 (the unpopped subscriber's copy)", got)
	}
	return nil
}
