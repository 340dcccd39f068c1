package trace

import (
	"testing"
)

func TestTrace_Append_LevelEvents_Records(t *testing.T) {
	// GIVEN a trace at events level
	tr := New(LevelEvents)

	// WHEN records are appended
	tr.Append(Record{Time: 1.0, CustomerID: 0, Kind: KindArrival})
	tr.Append(Record{Time: 1.0, CustomerID: 0, Kind: KindServiceStart})

	// THEN both are kept in order
	if len(tr.Records) != 2 {
		t.Fatalf("Records: got %d, want 2", len(tr.Records))
	}
	if tr.Records[0].Kind != KindArrival || tr.Records[1].Kind != KindServiceStart {
		t.Errorf("record order: got %v then %v", tr.Records[0].Kind, tr.Records[1].Kind)
	}
}

func TestTrace_Append_LevelNone_NoOp(t *testing.T) {
	tr := New(LevelNone)
	tr.Append(Record{Time: 1.0, Kind: KindArrival})
	if len(tr.Records) != 0 {
		t.Errorf("LevelNone recorded %d records, want 0", len(tr.Records))
	}
	if tr.Enabled() {
		t.Error("LevelNone trace reports Enabled")
	}
}

func TestTrace_Append_NilReceiver_Safe(t *testing.T) {
	var tr *Trace
	// must not panic
	tr.Append(Record{Time: 1.0, Kind: KindArrival})
	if tr.Enabled() {
		t.Error("nil trace reports Enabled")
	}
}

func TestNew_EmptyLevelDefaultsToNone(t *testing.T) {
	tr := New("")
	if tr.Level != LevelNone {
		t.Errorf("New(\"\"): got level %q, want %q", tr.Level, LevelNone)
	}
}

func TestValidLevel(t *testing.T) {
	tests := []struct {
		level Level
		want  bool
	}{
		{LevelNone, true},
		{LevelEvents, true},
		{"", true},
		{"decisions", false},
		{"everything", false},
	}
	for _, tt := range tests {
		if got := ValidLevel(tt.level); got != tt.want {
			t.Errorf("ValidLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
