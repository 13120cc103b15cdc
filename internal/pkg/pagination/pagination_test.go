package pagination

import "testing"

func TestNewParams(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		limit        int
		defaultLimit int
		want         Params
	}{
		{"defaults", 0, 0, 20, Params{Page: 1, Limit: 20, Offset: 0}},
		{"unset default falls back", 0, 0, 0, Params{Page: 1, Limit: DefaultLimit, Offset: 0}},
		{"negative page", -3, 10, 20, Params{Page: 1, Limit: 10, Offset: 0}},
		{"limit over cap", 1, 500, 20, Params{Page: 1, Limit: MaxLimit, Offset: 0}},
		{"configured default", 1, 0, 50, Params{Page: 1, Limit: 50, Offset: 0}},
		{"offset from page", 3, 10, 25, Params{Page: 3, Limit: 10, Offset: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewParams(tt.page, tt.limit, tt.defaultLimit)
			if *got != tt.want {
				t.Errorf("NewParams(%d, %d, %d) = %+v, want %+v", tt.page, tt.limit, tt.defaultLimit, *got, tt.want)
			}
		})
	}
}

func TestGetMeta(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		limit       int
		total       int64
		wantPages   int
		wantHasNext bool
		wantHasPrev bool
	}{
		{"first of three", 1, 20, 45, 3, true, false},
		{"middle page", 2, 20, 45, 3, true, true},
		{"last page", 3, 20, 45, 3, false, true},
		{"exact fit", 2, 10, 20, 2, false, true},
		{"empty", 1, 20, 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := GetMeta(&Params{Page: tt.page, Limit: tt.limit}, tt.total)

			if meta.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.wantPages)
			}
			if meta.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", meta.HasNext, tt.wantHasNext)
			}
			if meta.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", meta.HasPrev, tt.wantHasPrev)
			}
		})
	}
}
