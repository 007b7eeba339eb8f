package models

import "testing"

func TestScaleResolve(t *testing.T) {
	s := Scale{Items: []string{"Fail", "Pass", "Merit", "Distinction"}}

	tests := []struct {
		grade int
		want  string
	}{
		{1, "Fail"},
		{3, "Merit"},
		{4, "Distinction"},
		{0, ""},
		{5, ""},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := s.Resolve(tt.grade); got != tt.want {
			t.Errorf("Resolve(%d) = %q, want %q", tt.grade, got, tt.want)
		}
	}
}

func TestCompletionIsComplete(t *testing.T) {
	tests := []struct {
		state string
		want  bool
	}{
		{CompletionComplete, true},
		{CompletionCompletePass, true},
		{CompletionInProgress, false},
		{CompletionNone, false},
		{"", false},
	}
	for _, tt := range tests {
		c := ActivityCompletion{State: tt.state}
		if got := c.IsComplete(); got != tt.want {
			t.Errorf("IsComplete(%q) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestUserFullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Amy", "Able", "Amy Able"},
		{"", "Able", "Able"},
		{"Amy", "", "Amy"},
	}
	for _, tt := range tests {
		u := User{FirstName: tt.first, LastName: tt.last}
		if got := u.FullName(); got != tt.want {
			t.Errorf("FullName(%q,%q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestRoleHelpers(t *testing.T) {
	if !IsInstructorRole(RoleTeacher) || !IsInstructorRole(RoleEditingTeacher) {
		t.Error("teacher roles must count as instructors")
	}
	if IsInstructorRole(RoleManager) {
		t.Error("manager is not an instructor role")
	}
	if !IsManagingRole(RoleEditingTeacher) || !IsManagingRole(RoleManager) {
		t.Error("editingteacher and manager carry management capability")
	}
	if IsManagingRole(RoleTeacher) {
		t.Error("plain teacher does not carry management capability")
	}
}
