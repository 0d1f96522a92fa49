package main

import (
	"strings"
	"testing"
	"time"

	vdds "github.com/nodebus/vdds"
)

func init() {
	// Subcommands read the package-level flag vars directly; give them the
	// same defaults main()'s cobra flags would.
	queueSize = 16
}

func TestRunPingRoundTrips(t *testing.T) {
	if err := runPing(50 * time.Millisecond); err != nil {
		t.Fatalf("runPing: %v", err)
	}
}

func TestRunFanoutReachesEverySubscriber(t *testing.T) {
	if err := runFanout("/ping/req", 8); err != nil {
		t.Fatalf("runFanout: %v", err)
	}
}

func TestRunOverflowDropsWithoutError(t *testing.T) {
	if err := runOverflow("/ping/req", 1000); err != nil {
		t.Fatalf("runOverflow: %v", err)
	}
}

func TestRunCollisionDetectsTypeMismatch(t *testing.T) {
	if err := runCollision("/shared/topic"); err != nil {
		t.Fatalf("runCollision: %v", err)
	}
}

func TestRunSharedConservesRefcount(t *testing.T) {
	if err := runShared("/shared", 5); err != nil {
		t.Fatalf("runShared: %v", err)
	}
}

func TestRunShutdownWakesBlockedSubscriber(t *testing.T) {
	if err := runShutdown("/ping/req"); err != nil {
		t.Fatalf("runShutdown: %v", err)
	}
}

func TestBuildDomainFromScenarioConfig(t *testing.T) {
	cfg := &scenarioConfig{
		Domain: "CLI-TEST",
		Topics: []topicConfig{
			{
				Name:        "/ping/req",
				DataType:    "vdds.cli.ping-msg",
				Publishers:  []string{"PUB0"},
				Subscribers: []string{"SUB0", "SUB1"},
				QueueSize:   4,
			},
		},
	}

	d, err := buildDomain(cfg)
	if err != nil {
		t.Fatalf("buildDomain: %v", err)
	}

	var di vdds.DomainInfo
	d.Query(&di, vdds.Filter{TopicName: "any", DataType: "any"})
	if len(di.Topics) != 1 {
		t.Fatalf("len(di.Topics) = %d, want 1", len(di.Topics))
	}
	ti := di.Topics[0]
	if len(ti.Pubs) != 1 || len(ti.Subs) != 2 {
		t.Fatalf("topic %+v, want 1 pub and 2 subs", ti)
	}

	var buf strings.Builder
	if err := vdds.WriteDot(&buf, di); err != nil {
		t.Fatalf("WriteDot: %v", err)
	}
	if !strings.Contains(buf.String(), `"PUB0"`) {
		t.Errorf("WriteDot output missing PUB0 node:\n%s", buf.String())
	}
}
