package budget

import (
	"reflect"
	"testing"

	"bcalc/internal/model"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   model.Snapshot
		want model.Snapshot
	}{
		{
			name: "nil maps become empty",
			in:   model.Snapshot{TimeFrameMonths: 12},
			want: model.Snapshot{
				Amounts:         map[string]string{},
				Colors:          map[string]string{},
				Order:           nil,
				TimeFrameMonths: 12,
			},
		},
		{
			name: "order entry without an amount is dropped",
			in: model.Snapshot{
				Amounts:         map[string]string{"bills": "100"},
				Colors:          map[string]string{"bills": "#FF6B6B"},
				Order:           []string{"bills", "ghost"},
				TimeFrameMonths: 12,
			},
			want: model.Snapshot{
				Amounts:         map[string]string{"bills": "100"},
				Colors:          map[string]string{"bills": "#FF6B6B"},
				Order:           []string{"bills"},
				TimeFrameMonths: 12,
			},
		},
		{
			name: "duplicate order entries collapse to the first",
			in: model.Snapshot{
				Amounts:         map[string]string{"bills": "100", "food": "50"},
				Colors:          map[string]string{},
				Order:           []string{"bills", "food", "bills"},
				TimeFrameMonths: 12,
			},
			want: model.Snapshot{
				Amounts:         map[string]string{"bills": "100", "food": "50"},
				Colors:          map[string]string{},
				Order:           []string{"bills", "food"},
				TimeFrameMonths: 12,
			},
		},
		{
			name: "amount with no order entry is pruned",
			in: model.Snapshot{
				Amounts:         map[string]string{"bills": "100", "stray": "7"},
				Colors:          map[string]string{"bills": "#FF6B6B", "stray": "#000000"},
				Order:           []string{"bills"},
				TimeFrameMonths: 12,
			},
			want: model.Snapshot{
				Amounts:         map[string]string{"bills": "100"},
				Colors:          map[string]string{"bills": "#FF6B6B"},
				Order:           []string{"bills"},
				TimeFrameMonths: 12,
			},
		},
		{
			name: "non-positive time frame falls back to the default",
			in: model.Snapshot{
				Amounts:         map[string]string{"bills": "100"},
				Colors:          map[string]string{},
				Order:           []string{"bills"},
				TimeFrameMonths: -1,
			},
			want: model.Snapshot{
				Amounts:         map[string]string{"bills": "100"},
				Colors:          map[string]string{},
				Order:           []string{"bills"},
				TimeFrameMonths: DefaultTimeFrameMonths,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Sanitize(&tt.in)
			if !reflect.DeepEqual(tt.in, tt.want) {
				t.Errorf("sanitized = %+v\nwant %+v", tt.in, tt.want)
			}
		})
	}
}

func TestSanitize_ValidSnapshotUnchanged(t *testing.T) {
	s := testSnapshot()
	want := s.Clone()
	Sanitize(&s)
	if !reflect.DeepEqual(s, want) {
		t.Errorf("valid snapshot changed: %+v", s)
	}
}
