package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/testutil"
)

func getResults(t *testing.T, handler *ResultsHandler, pollID string) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MakeRequest("GET", "/polls/"+pollID+"/results", nil)
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()
	handler.GetResults(w, req)
	return w
}

func TestGetResultsNoVotes(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewResultsHandler(st)

	p := testutil.CreateTestPoll(t, st, "Q?", "A", "B", "C")

	w := getResults(t, handler, p.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalVotes != 0 {
		t.Errorf("Expected 0 total votes, got %d", resp.TotalVotes)
	}
	if len(resp.Options) != 3 {
		t.Fatalf("Expected 3 option results, got %d", len(resp.Options))
	}
	for _, o := range resp.Options {
		if o.Percentage != 0 {
			t.Errorf("Option %d percentage = %d, expected 0", o.ID, o.Percentage)
		}
	}
	if len(resp.Code) != 7 || resp.Code[3] != '-' {
		t.Errorf("Expected dash-formatted code, got %q", resp.Code)
	}
}

func TestGetResultsWithVotes(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewResultsHandler(st)

	p := testutil.CreateTestPoll(t, st, "Best color?", "Red", "Blue")
	if err := st.Vote(p.ID, 1); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}

	w := getResults(t, handler, p.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalVotes != 1 {
		t.Errorf("Expected 1 total vote, got %d", resp.TotalVotes)
	}
	if resp.Options[0].Percentage != 0 || resp.Options[1].Percentage != 100 {
		t.Errorf("Expected percentages [0,100], got [%d,%d]",
			resp.Options[0].Percentage, resp.Options[1].Percentage)
	}
	if resp.Question != "Best color?" {
		t.Errorf("Expected the question carried through, got %q", resp.Question)
	}
}

func TestGetResultsNotFound(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewResultsHandler(st)

	testutil.AssertStatus(t, getResults(t, handler, "missing"), http.StatusNotFound)
}
