package lang

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"C", true},
		{"CPP", true},
		{"Ada", true},
		{"Blackbox_C", true},
		{"Blackbox_Device", true},
		{"SIMULINK", true},
		{"c", false},
		{"ada", false},
		{"src", false},
		{"implem", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tag, ok := Parse(tt.name)
			if ok != tt.want {
				t.Errorf("Parse(%q) ok = %v, want %v", tt.name, ok, tt.want)
			}
			if ok && string(tag) != tt.name {
				t.Errorf("Parse(%q) = %q", tt.name, tag)
			}
		})
	}
}

func TestUserFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  Tag
		fn   string
		want []string
	}{
		{C, "Pinger", []string{"pinger.c"}},
		{BlackboxC, "Driver", []string{"driver.c"}},
		{Ada, "Ctrl", []string{"ctrl.adb"}},
		{CPP, "Filter", []string{"filter.cc", "filter_state.h"}},
		{SDL, "Orchestrator", []string{"orchestrator.pr"}},
		{GUI, "Console", []string{"UserWidgets.py"}},
		{QGenC, "Model", []string{"*.slx"}},
		{QGenAda, "Model", []string{"*.slx"}},
		{Simulink, "Model", []string{"*.slx"}},
		{BlackboxDevice, "Dev", nil},
		{SimulinkLegacy, "Model", nil},
		{Tag("Rust"), "x", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.tag), func(t *testing.T) {
			t.Parallel()
			got := UserFiles(tt.tag, tt.fn)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UserFiles(%q, %q) = %v, want %v", tt.tag, tt.fn, got, tt.want)
			}
		})
	}
}

func TestTagsSorted(t *testing.T) {
	t.Parallel()

	tags := Tags()
	if len(tags) != len(Languages) {
		t.Fatalf("Tags() returned %d tags, want %d", len(tags), len(Languages))
	}
	for i := 1; i < len(tags); i++ {
		if tags[i-1] >= tags[i] {
			t.Errorf("tags not sorted: %q before %q", tags[i-1], tags[i])
		}
	}
}
