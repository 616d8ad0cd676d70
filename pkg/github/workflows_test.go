package github

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestListWorkflows(t *testing.T) {
	c, log := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"total_count": 2,
			"workflows": [
				{"id": 161335, "name": "CI", "path": ".github/workflows/ci.yml", "state": "active"},
				{"id": 269289, "name": "Release", "path": ".github/workflows/release.yml", "state": "disabled_manually"}
			]
		}`))
	})

	workflows, err := c.ListWorkflows(context.Background(), "demo")
	if err != nil {
		t.Fatalf("ListWorkflows failed: %v", err)
	}
	if len(workflows) != 2 {
		t.Fatalf("got %d workflows, want 2", len(workflows))
	}
	if workflows[0].ID != 161335 || workflows[0].Name != "CI" {
		t.Errorf("unexpected workflow: %+v", workflows[0])
	}

	req := log.at(t, 0)
	if req.Path != "/repos/octocat/demo/actions/workflows" {
		t.Errorf("path = %q", req.Path)
	}
}

func TestTriggerWorkflow(t *testing.T) {
	tests := []struct {
		name     string
		workflow string
		ref      string
		wantPath string
		wantRef  string
	}{
		{
			name:     "by file name with default ref",
			workflow: "ci.yml",
			wantPath: "/repos/octocat/demo/actions/workflows/ci.yml/dispatches",
			wantRef:  "main",
		},
		{
			name:     "by id with explicit ref",
			workflow: "161335",
			ref:      "release-2.0",
			wantPath: "/repos/octocat/demo/actions/workflows/161335/dispatches",
			wantRef:  "release-2.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, log := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			if err := c.TriggerWorkflow(context.Background(), "demo", tt.workflow, tt.ref); err != nil {
				t.Fatalf("TriggerWorkflow failed: %v", err)
			}

			req := log.at(t, 0)
			if req.Method != http.MethodPost || req.Path != tt.wantPath {
				t.Errorf("request = %s %s, want POST %s", req.Method, req.Path, tt.wantPath)
			}

			var body map[string]string
			if err := json.Unmarshal(req.Body, &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["ref"] != tt.wantRef {
				t.Errorf("ref = %q, want %q", body["ref"], tt.wantRef)
			}
		})
	}
}

func TestTriggerWorkflowEmptyID(t *testing.T) {
	c, log := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

	if err := c.TriggerWorkflow(context.Background(), "demo", "", ""); err == nil {
		t.Fatal("expected validation error")
	}
	if log.count() != 0 {
		t.Errorf("%d requests sent, want 0", log.count())
	}
}
