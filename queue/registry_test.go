package queue

import (
	"fmt"
	"sync"
	"testing"

	"lvlreq/db"
)

func TestChannelRegistryAddContainsSnapshot(t *testing.T) {
	reg := NewChannelRegistry()

	if reg.Contains("chan1") {
		t.Fatalf("empty registry must not contain anything")
	}

	reg.Add("chan1")
	reg.Add("chan1") // duplicate adds are fine
	reg.Add("")      // unset channels are skipped

	if !reg.Contains("chan1") {
		t.Fatalf("expected chan1 to be watched")
	}
	if reg.Contains("chan2") {
		t.Fatalf("chan2 was never added")
	}

	snapshot := reg.Snapshot()
	if len(snapshot) != 1 || snapshot[0] != "chan1" {
		t.Fatalf("expected snapshot [chan1], got %v", snapshot)
	}

	// The snapshot is a copy; mutating it must not touch the registry.
	snapshot[0] = "tampered"
	if !reg.Contains("chan1") || reg.Contains("tampered") {
		t.Fatalf("snapshot mutation leaked into the registry")
	}
}

func TestChannelRegistryConcurrentAdds(t *testing.T) {
	reg := NewChannelRegistry()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				reg.Add(fmt.Sprintf("chan%d", n))
				reg.Contains(fmt.Sprintf("chan%d", n))
			}
		}(w)
	}
	wg.Wait()

	if got := len(reg.Snapshot()); got != 100 {
		t.Fatalf("expected 100 watched channels, got %d", got)
	}
}

func TestSeedFromGuildConfigsSkipsUnsetChannels(t *testing.T) {
	setupTestDB(t)

	if err := db.SetQueueChannel("g1", "queue1"); err != nil {
		t.Fatalf("set queue channel failed: %v", err)
	}
	if _, err := db.GetOrCreateGuildConfig("g2"); err != nil { // no queue channel yet
		t.Fatalf("create config failed: %v", err)
	}
	if err := db.SetQueueChannel("g3", "queue3"); err != nil {
		t.Fatalf("set queue channel failed: %v", err)
	}

	reg := NewChannelRegistry()
	if err := reg.SeedFromGuildConfigs(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if !reg.Contains("queue1") || !reg.Contains("queue3") {
		t.Fatalf("expected both configured channels to be watched, got %v", reg.Snapshot())
	}
	if len(reg.Snapshot()) != 2 {
		t.Fatalf("expected exactly 2 watched channels, got %v", reg.Snapshot())
	}
}
