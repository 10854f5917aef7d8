package response

import "testing"

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		want     int
	}{
		{"empty set still has one page", 1, 20, 0, 1},
		{"exact multiple", 1, 20, 40, 2},
		{"remainder rounds up", 1, 20, 41, 3},
		{"single item", 1, 20, 1, 1},
		{"page size one", 3, 1, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.page, tt.pageSize, tt.total)
			if meta.TotalPages != tt.want {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.want)
			}
			if meta.Page != tt.page || meta.PageSize != tt.pageSize || meta.Total != tt.total {
				t.Errorf("meta echoes wrong inputs: %+v", meta)
			}
		})
	}
}
