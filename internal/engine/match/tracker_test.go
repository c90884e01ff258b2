package match

import (
	"context"
	"path/filepath"
	"testing"
)

func testTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := OpenTracker(filepath.Join(t.TempDir(), "apps", "tracker.db"))
	if err != nil {
		t.Fatalf("OpenTracker error: %v", err)
	}
	t.Cleanup(func() { tr.Close() })
	return tr
}

func TestTrackerAdd_Basic(t *testing.T) {
	tr := testTracker(t)
	ctx := context.Background()

	app, err := tr.Add(ctx, "job-1", "Senior Go Developer", "Stripe", "applied", "Applied via referral")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if app.JobID != "job-1" || app.Status != StatusApplied {
		t.Errorf("unexpected application: %+v", app)
	}
}

func TestTrackerAdd_DefaultStatus(t *testing.T) {
	tr := testTracker(t)

	app, err := tr.Add(context.Background(), "job-2", "Backend Engineer", "Acme", "", "")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if app.Status != StatusSaved {
		t.Errorf("status = %q, want saved", app.Status)
	}
}

func TestTrackerAdd_Validation(t *testing.T) {
	tr := testTracker(t)
	ctx := context.Background()

	if _, err := tr.Add(ctx, "", "Title", "Company", "", ""); err == nil {
		t.Error("expected error when job_id is missing")
	}
	if _, err := tr.Add(ctx, "job-3", "Title", "", "", ""); err == nil {
		t.Error("expected error when company is missing")
	}
	if _, err := tr.Add(ctx, "job-3", "Title", "Company", "ghosted", ""); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestTrackerAdd_UpsertSameJob(t *testing.T) {
	tr := testTracker(t)
	ctx := context.Background()

	if _, err := tr.Add(ctx, "job-4", "Engineer", "X", "saved", ""); err != nil {
		t.Fatalf("first Add error: %v", err)
	}
	if _, err := tr.Add(ctx, "job-4", "Engineer", "X", "applied", ""); err != nil {
		t.Fatalf("re-Add error: %v", err)
	}

	apps, err := tr.List(ctx, "", 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 application after upsert, got %d", len(apps))
	}
	if apps[0].Status != StatusApplied {
		t.Errorf("status = %q, want applied", apps[0].Status)
	}
}

func TestTrackerList_StatusFilter(t *testing.T) {
	tr := testTracker(t)
	ctx := context.Background()

	tr.Add(ctx, "a", "T1", "C1", "saved", "")
	tr.Add(ctx, "b", "T2", "C2", "applied", "")
	tr.Add(ctx, "c", "T3", "C3", "applied", "")

	apps, err := tr.List(ctx, "applied", 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(apps) != 2 {
		t.Errorf("expected 2 applied, got %d", len(apps))
	}

	if _, err := tr.List(ctx, "bogus", 0); err == nil {
		t.Error("expected error for invalid status filter")
	}
}

func TestTrackerUpdateStatus(t *testing.T) {
	tr := testTracker(t)
	ctx := context.Background()

	tr.Add(ctx, "job-5", "Engineer", "X", "applied", "")

	if err := tr.UpdateStatus(ctx, "job-5", "interview", "on-site scheduled"); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	apps, _ := tr.List(ctx, "interview", 0)
	if len(apps) != 1 || apps[0].Notes != "on-site scheduled" {
		t.Errorf("unexpected list after update: %+v", apps)
	}

	if err := tr.UpdateStatus(ctx, "missing-job", "applied", ""); err == nil {
		t.Error("expected error for unknown job id")
	}
}

func TestTrackerAppliedJobIDs(t *testing.T) {
	tr := testTracker(t)
	ctx := context.Background()

	tr.Add(ctx, "saved-1", "T", "C", "saved", "")
	tr.Add(ctx, "applied-1", "T", "C", "applied", "")
	tr.Add(ctx, "offer-1", "T", "C", "offer", "")

	ids, err := tr.AppliedJobIDs(ctx)
	if err != nil {
		t.Fatalf("AppliedJobIDs error: %v", err)
	}
	if ids["saved-1"] {
		t.Error("saved jobs should not count as applied")
	}
	if !ids["applied-1"] || !ids["offer-1"] {
		t.Errorf("expected applied-1 and offer-1 in %v", ids)
	}

	// The tracker output plugs straight into the filter.
	jobs := []JobPosting{{ID: "saved-1", Title: "T", Company: "C"}, {ID: "applied-1", Title: "T", Company: "C"}}
	visible := FilterJobs(jobs, JobFilters{HideAppliedJobs: true}, ids)
	if len(visible) != 1 || visible[0].ID != "saved-1" {
		t.Errorf("expected only saved-1 visible, got %+v", visible)
	}
}
