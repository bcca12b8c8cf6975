package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/LizaButReallyEliza/Formula1-project/models"
	"github.com/LizaButReallyEliza/Formula1-project/store"
	"github.com/LizaButReallyEliza/Formula1-project/testutil"
)

// TestConcurrentResultCreation verifies that simultaneous result submissions
// all land with distinct ids and no lost writes
func TestConcurrentResultCreation(t *testing.T) {
	db, st := newTestStore(t)
	handler := NewResultHandler(st)

	stage := testutil.CreateTestStage(t, db, "Monza", "Italy")
	stable := testutil.CreateTestStable(t, db, "Ferrari", "Italy")

	numDrivers := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup
	ids := make([]int64, numDrivers)

	for i := 0; i < numDrivers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := map[string]any{
				"stage_id":    stage,
				"stable_id":   stable,
				"driver_name": "Driver" + string(rune('A'+idx)),
				"race_time":   5000 + float64(idx),
				"laps":        53,
			}
			w := httptest.NewRecorder()
			handler.CreateResult(w, testutil.MakeRequest("POST", "/results/", body, nil))

			if w.Code == http.StatusCreated {
				successCount.Add(1)
				var result models.Result
				if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
					t.Errorf("Failed to decode result: %v", err)
					return
				}
				ids[idx] = result.ID
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numDrivers {
		t.Errorf("Expected %d successful creates, got %d", numDrivers, successCount.Load())
	}
	if got := testutil.CountRows(t, db, "results"); got != numDrivers {
		t.Errorf("Expected %d results in database, got %d", numDrivers, got)
	}

	seen := make(map[int64]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("Duplicate result id %d", id)
		}
		seen[id] = true
	}
}

// TestConcurrentDeleteAndCreate races a stable deletion against result
// creations pointing at it. Every result that was accepted must still
// resolve to a stable, or the delete must have been refused.
func TestConcurrentDeleteAndCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	st := store.New(db, store.Restrict)
	results := NewResultHandler(st)
	stables := NewStableHandler(st)

	stage := testutil.CreateTestStage(t, db, "Monza", "Italy")
	stable := testutil.CreateTestStable(t, db, "Sauber", "Switzerland")
	stablePath := strconv.FormatInt(stable, 10)

	var created atomic.Int32
	var deleteStatus atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			body := map[string]any{
				"stage_id":    stage,
				"stable_id":   stable,
				"driver_name": "Bottas",
				"race_time":   5100 + float64(idx),
				"laps":        53,
			}
			w := httptest.NewRecorder()
			results.CreateResult(w, testutil.MakeRequest("POST", "/results/", body, nil))
			if w.Code == http.StatusCreated {
				created.Add(1)
			}
		}(i)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		w := httptest.NewRecorder()
		stables.DeleteStable(w, withID(httptest.NewRequest("DELETE", "/stables/"+stablePath, nil), stablePath))
		deleteStatus.Store(int32(w.Code))
	}()

	wg.Wait()

	switch deleteStatus.Load() {
	case http.StatusNoContent:
		if created.Load() != 0 {
			t.Errorf("Stable deleted yet %d results were accepted for it", created.Load())
		}
	case http.StatusConflict:
		if created.Load() == 0 {
			t.Error("Delete refused although no results were accepted")
		}
	default:
		t.Errorf("Unexpected delete status %d", deleteStatus.Load())
	}

	var dangling int
	err := db.Get(&dangling, `
		SELECT COUNT(*) FROM results r
		WHERE NOT EXISTS (SELECT 1 FROM stables s WHERE s.id = r.stable_id)`)
	if err != nil {
		t.Fatalf("Failed to count dangling results: %v", err)
	}
	if dangling != 0 {
		t.Errorf("Expected no dangling results, got %d", dangling)
	}
}

// TestConcurrentLapsUpdates verifies overlapping bulk updates leave every
// matching row with one of the submitted values
func TestConcurrentLapsUpdates(t *testing.T) {
	db, st := newTestStore(t)
	handler := NewResultHandler(st)

	stage := testutil.CreateTestStage(t, db, "Spa", "Belgium")
	stable := testutil.CreateTestStable(t, db, "Aston Martin", "UK")
	for i := 0; i < 6; i++ {
		testutil.CreateTestResult(t, db, stage, stable, "Alonso", 100+float64(i), 44)
	}

	var wg sync.WaitGroup
	for _, laps := range []int{10, 20, 30} {
		wg.Add(1)
		go func(laps int) {
			defer wg.Done()
			path := "/results/update_laps/?race_time_threshold=99&new_laps=" + strconv.Itoa(laps)
			w := httptest.NewRecorder()
			handler.UpdateLaps(w, httptest.NewRequest("PUT", path, nil))
			if w.Code != http.StatusOK {
				t.Errorf("Update with %d laps failed: %d %s", laps, w.Code, w.Body.String())
			}
		}(laps)
	}
	wg.Wait()

	var distinct []int64
	if err := db.Select(&distinct, "SELECT DISTINCT laps FROM results"); err != nil {
		t.Fatalf("Failed to read laps: %v", err)
	}
	if len(distinct) != 1 {
		t.Fatalf("Expected all rows to share one laps value, got %v", distinct)
	}
	if v := distinct[0]; v != 10 && v != 20 && v != 30 {
		t.Errorf("Unexpected laps value %d", v)
	}
}
