package domain

import (
	"reflect"
	"testing"
)

func TestIntent_PersonNames(t *testing.T) {
	tests := []struct {
		name   string
		intent Intent
		want   []string
	}{
		{
			name:   "actors before directors",
			intent: Intent{Actors: []string{"Tom Hanks"}, Directors: []string{"Mel Brooks"}},
			want:   []string{"Tom Hanks", "Mel Brooks"},
		},
		{
			name:   "extraction order preserved",
			intent: Intent{Actors: []string{"Bill Murray", "Dan Aykroyd"}},
			want:   []string{"Bill Murray", "Dan Aykroyd"},
		},
		{
			name:   "duplicate across categories resolved once",
			intent: Intent{Actors: []string{"Clint Eastwood"}, Directors: []string{"Clint Eastwood"}},
			want:   []string{"Clint Eastwood"},
		},
		{
			name:   "case-insensitive duplicate",
			intent: Intent{Actors: []string{"tom hanks", "Tom Hanks"}},
			want:   []string{"tom hanks"},
		},
		{
			name:   "blank names skipped",
			intent: Intent{Actors: []string{"", "  ", "Jodie Foster"}},
			want:   []string{"Jodie Foster"},
		},
		{
			name:   "empty intent",
			intent: Intent{},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.intent.PersonNames()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PersonNames() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMovie_Year(t *testing.T) {
	tests := []struct {
		name        string
		releaseDate string
		want        string
	}{
		{"full date", "1994-07-06", "1994"},
		{"year only", "1994", "1994"},
		{"empty date", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Movie{ReleaseDate: tt.releaseDate}
			if got := m.Year(); got != tt.want {
				t.Errorf("Year() = %q, want %q", got, tt.want)
			}
		})
	}
}
