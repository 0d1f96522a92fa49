package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	vdds "github.com/nodebus/vdds"
	"github.com/nodebus/vdds/internal/fabric"
)

func newDotCommand() *cobra.Command {
	var filterTopic, filterType string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Render the topology described by --config as a Graphviz DOT digraph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(filterTopic, filterType)
		},
	}
	cmd.Flags().StringVar(&filterTopic, "filter-topic", "any", "restrict to this topic name")
	cmd.Flags().StringVar(&filterType, "filter-type", "any", "restrict to this data type name")
	return cmd
}

func runDot(filterTopic, filterType string) error {
	if scenarioCfg == "" {
		return fmt.Errorf("dot requires --config pointing at a scenario YAML file")
	}
	cfg, err := loadScenarioConfig(scenarioCfg)
	if err != nil {
		return err
	}
	d, err := buildDomain(cfg)
	if err != nil {
		return err
	}

	var di fabric.DomainInfo
	d.Query(&di, fabric.Filter{TopicName: filterTopic, DataType: filterType})

	return vdds.WriteDot(os.Stdout, di)
}
