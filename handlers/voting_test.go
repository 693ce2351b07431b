package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/testutil"
)

func submitVote(t *testing.T, handler *VotingHandler, pollID string, optionID int) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MakeRequest("POST", "/polls/"+pollID+"/vote", models.VoteRequest{OptionID: optionID})
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()
	handler.SubmitVote(w, req)
	return w
}

func TestSubmitVote(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewVotingHandler(st)

	p := testutil.CreateTestPoll(t, st, "Best color?", "Red", "Blue")

	w := submitVote(t, handler, p.ID, 1)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.PollID != p.ID || resp.OptionID != 1 {
		t.Errorf("Unexpected response: %+v", resp)
	}

	got, _ := st.Get(p.ID)
	if got.Options[1].Votes != 1 {
		t.Errorf("Expected option 1 to have 1 vote, got %d", got.Options[1].Votes)
	}
	if got.Options[0].Votes != 0 {
		t.Errorf("Option 0 must stay at 0 votes, got %d", got.Options[0].Votes)
	}
}

func TestSubmitVoteTwiceConflicts(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewVotingHandler(st)

	p := testutil.CreateTestPoll(t, st, "Q?", "A", "B")

	testutil.AssertStatus(t, submitVote(t, handler, p.ID, 0), http.StatusOK)
	testutil.AssertStatus(t, submitVote(t, handler, p.ID, 1), http.StatusConflict)

	got, _ := st.Get(p.ID)
	if got.Options[0].Votes != 1 || got.Options[1].Votes != 0 {
		t.Errorf("Refused vote must leave counts unchanged: %+v", got.Options)
	}
}

func TestSubmitVoteUnknownPoll(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewVotingHandler(st)

	testutil.AssertStatus(t, submitVote(t, handler, "missing", 0), http.StatusNotFound)
}

func TestSubmitVoteUnknownOption(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewVotingHandler(st)

	p := testutil.CreateTestPoll(t, st, "Q?", "A", "B")
	testutil.AssertStatus(t, submitVote(t, handler, p.ID, 42), http.StatusNotFound)
}

func TestSubmitVoteInvalidJSON(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewVotingHandler(st)

	p := testutil.CreateTestPoll(t, st, "Q?", "A", "B")

	req := httptest.NewRequest("POST", "/polls/"+p.ID+"/vote", nil)
	req.SetPathValue("id", p.ID)
	w := httptest.NewRecorder()
	handler.SubmitVote(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
