package github

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestCreateIssue(t *testing.T) {
	c, log := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"number":1347,"title":"Found a bug","state":"open","html_url":"https://github.com/octocat/demo/issues/1347"}`))
	})

	issue, err := c.CreateIssue(context.Background(), "demo", CreateIssueOptions{
		Title: "Found a bug",
		Body:  "I'm having a problem with this.",
	})
	if err != nil {
		t.Fatalf("CreateIssue failed: %v", err)
	}
	if issue.Number != 1347 {
		t.Errorf("number = %d, want 1347", issue.Number)
	}

	req := log.at(t, 0)
	if req.Method != http.MethodPost || req.Path != "/repos/octocat/demo/issues" {
		t.Errorf("request = %s %s", req.Method, req.Path)
	}
	var body map[string]string
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["title"] != "Found a bug" || body["body"] != "I'm having a problem with this." {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestCreateIssueRequiresTitle(t *testing.T) {
	c, log := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

	if _, err := c.CreateIssue(context.Background(), "demo", CreateIssueOptions{}); err == nil {
		t.Fatal("expected validation error")
	}
	if log.count() != 0 {
		t.Errorf("%d requests sent, want 0", log.count())
	}
}

func TestListIssuesStateFilter(t *testing.T) {
	tests := []struct {
		name      string
		state     string
		wantState string
	}{
		{name: "default is open", state: "", wantState: "open"},
		{name: "closed", state: "closed", wantState: "closed"},
		{name: "all", state: "all", wantState: "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, log := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[{"number":1,"title":"t","state":"open"}]`))
			})

			if _, err := c.ListIssues(context.Background(), "demo", tt.state); err != nil {
				t.Fatalf("ListIssues failed: %v", err)
			}

			req := log.at(t, 0)
			if req.Path != "/repos/octocat/demo/issues" {
				t.Errorf("path = %q", req.Path)
			}
			if got := req.Query.Get("state"); got != tt.wantState {
				t.Errorf("state = %q, want %q", got, tt.wantState)
			}
		})
	}
}

func TestListIssuesInvalidState(t *testing.T) {
	c, log := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := c.ListIssues(context.Background(), "demo", "merged")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if log.count() != 0 {
		t.Errorf("%d requests sent, want 0 for invalid state", log.count())
	}
}

func TestListIssuesEmpty(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	issues, err := c.ListIssues(context.Background(), "demo", "closed")
	if err != nil {
		t.Fatalf("an empty listing is not a failure: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("got %d issues, want 0", len(issues))
	}
}
