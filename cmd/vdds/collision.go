package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	vdds "github.com/nodebus/vdds"
)

func newCollisionCommand() *cobra.Command {
	var topicName string

	cmd := &cobra.Command{
		Use:   "collision",
		Short: "Show a topic rejecting a second publisher with a different message type",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollision(topicName)
		},
	}
	cmd.Flags().StringVar(&topicName, "topic", "/shared/topic", "topic name")
	return cmd
}

func runCollision(topicName string) error {
	d := vdds.NewDomain(domainName)

	pubA, err := vdds.NewPublisher[pingMsg](d, "PUB0", topicName)
	if err != nil {
		return fmt.Errorf("first publisher: %w", err)
	}
	defer pubA.Close()

	_, err = vdds.NewPublisher[otherMsg](d, "PUB1", topicName)
	if err == nil {
		return fmt.Errorf("expected a type mismatch registering a second publisher on %q, got none", topicName)
	}
	if !errors.Is(err, vdds.ErrTypeMismatch) {
		return fmt.Errorf("expected ErrTypeMismatch, got %w", err)
	}

	fmt.Printf("topic %q correctly rejected a second type: %v\n", topicName, err)
	return nil
}
