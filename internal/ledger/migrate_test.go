package ledger

import "testing"

func TestTailMigrate_Absent(t *testing.T) {
	got := TailMigrate(nil, 4)

	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	for i, rec := range got {
		if rec.Choice != nil || rec.Correct != nil {
			t.Errorf("entry %d not blank: %+v", i, rec)
		}
	}
}

func TestTailMigrate_SameLength(t *testing.T) {
	persisted := Ledger{{Choice: strPtr("A"), Correct: boolPtr(true)}}

	got := TailMigrate(persisted, 1)

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if *got[0].Choice != "A" || !*got[0].Correct {
		t.Errorf("entry changed: %+v", got[0])
	}
}

func TestTailMigrate_Append(t *testing.T) {
	persisted := Ledger{
		{Choice: strPtr("A"), Correct: boolPtr(true)},
		{Choice: strPtr("B"), Correct: boolPtr(false)},
	}

	got := TailMigrate(persisted, 5)

	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if *got[0].Choice != "A" || *got[1].Choice != "B" {
		t.Error("existing progress not preserved")
	}
	for i := 2; i < 5; i++ {
		if got[i].Choice != nil || got[i].Correct != nil {
			t.Errorf("entry %d not blank: %+v", i, got[i])
		}
	}
}

func TestTailMigrate_Truncate(t *testing.T) {
	persisted := Ledger{
		{Choice: strPtr("A"), Correct: boolPtr(true)},
		{Choice: strPtr("B"), Correct: boolPtr(false)},
		{Choice: strPtr("C"), Correct: nil},
	}

	got := TailMigrate(persisted, 2)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if *got[0].Choice != "A" || *got[1].Choice != "B" {
		t.Error("leading entries changed")
	}
}
