package swayimg

import "testing"

func TestParseActions(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    ActionSeq
		wantErr bool
	}{
		{
			name:  "single",
			value: "reload",
			want:  ActionSeq{{Type: ActionReload}},
		},
		{
			name:  "with params",
			value: "zoom +10",
			want:  ActionSeq{{Type: ActionZoom, Params: "+10"}},
		},
		{
			name:  "sequence",
			value: "zoom fill; status filled ; next_file",
			want: ActionSeq{
				{Type: ActionZoom, Params: "fill"},
				{Type: ActionStatus, Params: "filled"},
				{Type: ActionNextFile},
			},
		},
		{
			name:  "trailing separator",
			value: "exit;",
			want:  ActionSeq{{Type: ActionExit}},
		},
		{name: "unknown action", value: "explode", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "separators only", value: " ; ; ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseActions(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseActions(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseActions(%q) = %+v, want %+v", tt.value, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("action %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
