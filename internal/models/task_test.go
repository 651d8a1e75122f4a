package models

import (
	"encoding/json"
	"testing"
)

func TestTaskValidation(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty title should fail",
			task:    Task{Title: ""},
			wantErr: true,
			errMsg:  "title: title is required",
		},
		{
			name:    "whitespace title should fail",
			task:    Task{Title: "   "},
			wantErr: true,
			errMsg:  "title: title is required",
		},
		{
			name:    "invalid priority should fail",
			task:    Task{Title: "Test", Priority: "urgent"},
			wantErr: true,
			errMsg:  "priority: priority must be 'high', 'medium', or 'low'",
		},
		{
			name:    "empty priority is allowed",
			task:    Task{Title: "Test"},
			wantErr: false,
		},
		{
			name:    "valid task should pass",
			task:    Task{Title: "Test", Priority: "medium", Category: "chores"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				} else if err.Error() != tt.errMsg {
					t.Errorf("expected error %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestTaskPatch_ApplySetFieldsOnly(t *testing.T) {
	task := Task{ID: 1, Title: "Original", Completed: true, Priority: "high", Category: "work"}

	title := "Changed"
	patch := TaskPatch{Title: &title}
	patch.Apply(&task)

	if task.Title != "Changed" {
		t.Errorf("expected title changed, got %q", task.Title)
	}
	if !task.Completed || task.Priority != "high" || task.Category != "work" {
		t.Errorf("expected unset fields untouched, got %+v", task)
	}
	if task.ID != 1 {
		t.Errorf("expected id untouched, got %d", task.ID)
	}
}

func TestTaskPatch_ExplicitZeroValuesApply(t *testing.T) {
	task := Task{ID: 1, Title: "Test", Completed: true, Priority: "high"}

	completed := false
	priority := ""
	patch := TaskPatch{Completed: &completed, Priority: &priority}
	patch.Apply(&task)

	if task.Completed {
		t.Error("expected explicit false to clear completed")
	}
	if task.Priority != "" {
		t.Errorf("expected explicit empty string to clear priority, got %q", task.Priority)
	}
}

func TestTaskPatch_DecodeDistinguishesAbsentFromZero(t *testing.T) {
	var absent TaskPatch
	if err := json.Unmarshal([]byte(`{"title":"New"}`), &absent); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if absent.Completed != nil {
		t.Error("expected absent completed to decode as nil")
	}

	var explicit TaskPatch
	if err := json.Unmarshal([]byte(`{"completed":false}`), &explicit); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if explicit.Completed == nil || *explicit.Completed {
		t.Errorf("expected explicit completed=false to decode as set, got %+v", explicit.Completed)
	}
	if explicit.Title != nil {
		t.Error("expected absent title to decode as nil")
	}
}
