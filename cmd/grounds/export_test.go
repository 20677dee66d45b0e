package main

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

func TestWriteFeatures(t *testing.T) {
	var buf bytes.Buffer
	features := []storage.PlayerFeatures{
		{Player: "ana", ShotsHit: 9, ShotsFired: 12, Accuracy: 0.75, AvgReactionMs: 412.5},
		{Player: "bob"},
	}
	if err := writeFeatures(&buf, features); err != nil {
		t.Fatalf("writeFeatures() error = %v", err)
	}

	want := "player_id,shots_hit,shots_fired,accuracy,avg_reaction_ms,var_accuracy,var_reaction_ms,var_shots_hit,var_shots_fired\n" +
		"ana,9,12,0.7500,412.5000,0.0000,0.0000,0.0000,0.0000\n" +
		"bob,0,0,0.0000,0.0000,0.0000,0.0000,0.0000,0.0000\n"
	if got := buf.String(); got != want {
		t.Errorf("CSV =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteFeaturesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := writeFeatures(&buf, nil); err != nil {
		t.Fatalf("writeFeatures() error = %v", err)
	}
	if got := buf.String(); got != "player_id,shots_hit,shots_fired,accuracy,avg_reaction_ms,var_accuracy,var_reaction_ms,var_shots_hit,var_shots_fired\n" {
		t.Errorf("header = %q", got)
	}
}
