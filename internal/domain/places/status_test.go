package places

import "testing"

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusPending, StatusApproved) {
		t.Fatal("expected pending -> approved to be allowed")
	}
	if !CanTransition(StatusPending, StatusRejected) {
		t.Fatal("expected pending -> rejected to be allowed")
	}
	if !CanTransition(StatusApproved, StatusApproved) {
		t.Fatal("expected re-approving to be allowed")
	}
	if !CanTransition(StatusRejected, StatusRejected) {
		t.Fatal("expected re-rejecting to be allowed")
	}
	if CanTransition(StatusApproved, StatusRejected) {
		t.Fatal("unexpected approved -> rejected allowed")
	}
	if CanTransition(StatusRejected, StatusApproved) {
		t.Fatal("unexpected rejected -> approved allowed")
	}
	if CanTransition(StatusApproved, StatusPending) || CanTransition(StatusRejected, StatusPending) {
		t.Fatal("unexpected transition back to pending allowed")
	}
	if CanTransition(Status("archived"), StatusApproved) {
		t.Fatal("unexpected transition from unknown status allowed")
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Fatalf("expected %q to be valid", c)
		}
	}
	if Category("bar").Valid() {
		t.Fatal("unexpected category accepted")
	}
}
