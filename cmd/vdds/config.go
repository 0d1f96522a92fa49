package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nodebus/vdds/internal/fabric"
)

// scenarioConfig describes a static topology to build with CreateTopic and
// raw Subscribe/Publish calls, for the dump and dot subcommands when no
// seed scenario is requested. Messages aren't pushed through a topology
// loaded this way — there's no message type to bind it to — so topics are
// created with a nominal data type name of their own.
type scenarioConfig struct {
	Domain string        `yaml:"domain"`
	Topics []topicConfig `yaml:"topics"`
}

type topicConfig struct {
	Name        string   `yaml:"name"`
	DataType    string   `yaml:"dataType"`
	Publishers  []string `yaml:"publishers"`
	Subscribers []string `yaml:"subscribers"`
	QueueSize   int      `yaml:"queueSize"`
}

func loadScenarioConfig(path string) (*scenarioConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario config: %w", err)
	}
	defer f.Close()

	var cfg scenarioConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse scenario config: %w", err)
	}
	if cfg.Domain == "" {
		cfg.Domain = "DEFAULT"
	}
	return &cfg, nil
}

// buildDomain realizes cfg against a fresh fabric.Domain, for subcommands
// that only need to inspect or render a topology rather than push messages
// through it.
func buildDomain(cfg *scenarioConfig) (*fabric.Domain, error) {
	d := fabric.NewDomain(cfg.Domain)
	for _, tc := range cfg.Topics {
		dataType := tc.DataType
		if dataType == "" {
			dataType = "vdds.cli." + tc.Name
		}
		topic, err := d.CreateTopic(tc.Name, dataType)
		if err != nil {
			return nil, fmt.Errorf("topic %q: %w", tc.Name, err)
		}
		for _, p := range tc.Publishers {
			if _, err := topic.Publish(p); err != nil {
				return nil, fmt.Errorf("topic %q publisher %q: %w", tc.Name, p, err)
			}
		}
		qsize := tc.QueueSize
		if qsize == 0 {
			qsize = queueSize
		}
		for _, s := range tc.Subscribers {
			if _, err := topic.Subscribe(s, qsize, nil); err != nil {
				return nil, fmt.Errorf("topic %q subscriber %q: %w", tc.Name, s, err)
			}
		}
	}
	return d, nil
}
