package dto

import "testing"

func formGetter(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestParseUploadVideoRequest_CoercesFields(t *testing.T) {
	req, err := ParseUploadVideoRequest(formGetter(map[string]string{
		"title":       "  Başlık  ",
		"channel":     "kanal",
		"description": " açıklama ",
		"is_short":    "on",
		"category_id": "3",
	}))
	if err != nil {
		t.Fatalf("parse başarısız: %v", err)
	}
	if req.Title != "Başlık" {
		t.Fatalf("başlık trimlenmedi: %q", req.Title)
	}
	if !req.IsShort {
		t.Fatalf("is_short=on true olmalıydı")
	}
	if req.CategoryID == nil || *req.CategoryID != 3 {
		t.Fatalf("category_id yanlış parse edildi: %v", req.CategoryID)
	}
}

func TestParseUploadVideoRequest_RequiresTitleAndChannel(t *testing.T) {
	if _, err := ParseUploadVideoRequest(formGetter(map[string]string{"channel": "kanal"})); err == nil {
		t.Fatalf("title'sız istek geçmemeliydi")
	}
	if _, err := ParseUploadVideoRequest(formGetter(map[string]string{"title": "başlık"})); err == nil {
		t.Fatalf("channel'sız istek geçmemeliydi")
	}
}

func TestParseUploadVideoRequest_RejectsNonNumericCategory(t *testing.T) {
	_, err := ParseUploadVideoRequest(formGetter(map[string]string{
		"title":       "başlık",
		"channel":     "kanal",
		"category_id": "müzik",
	}))
	if err == nil {
		t.Fatalf("sayısal olmayan category_id geçmemeliydi")
	}
}

func TestParseUploadVideoRequest_OmitsEmptyCategory(t *testing.T) {
	req, err := ParseUploadVideoRequest(formGetter(map[string]string{
		"title":   "başlık",
		"channel": "kanal",
	}))
	if err != nil {
		t.Fatalf("parse başarısız: %v", err)
	}
	if req.CategoryID != nil {
		t.Fatalf("boş category_id nil kalmalıydı")
	}
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		pageRaw, limitRaw string
		page, limit       int
	}{
		{"", "", 1, 10},
		{"2", "5", 2, 5},
		{"abc", "-1", 1, 10},
		{"0", "0", 1, 10},
	}
	for _, tc := range cases {
		page, limit := ParsePagination(tc.pageRaw, tc.limitRaw)
		if page != tc.page || limit != tc.limit {
			t.Fatalf("ParsePagination(%q, %q) = (%d, %d), beklenen (%d, %d)",
				tc.pageRaw, tc.limitRaw, page, limit, tc.page, tc.limit)
		}
	}
}
