package usecases

import (
	"errors"
	"testing"

	"video-platform/internal/domain/entities"
	infra_repo "video-platform/internal/infrastructure/repositories"
	apperr "video-platform/pkg/errors"
)

func newEngagementService(t *testing.T) (EngagementService, *entities.Video) {
	t.Helper()
	database := newTestDB(t)
	video := seedVideo(t, database, "test", "kanal", nil, 1)

	svc := NewEngagementService(
		infra_repo.NewVideoCommentRepository(database),
		infra_repo.NewPostCommentRepository(database),
		infra_repo.NewVideoLikeRepository(database),
		infra_repo.NewPostLikeRepository(database),
		nil, // cache'siz
	)
	return svc, video
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var apiErr *apperr.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("APIError bekleniyordu, gelen: %v", err)
	}
	if apiErr.Code != code {
		t.Fatalf("beklenen kod %q, gelen %q", code, apiErr.Code)
	}
}

func TestLikeVideo_IdempotentForSameSession(t *testing.T) {
	svc, video := newEngagementService(t)
	ident := sessionIdent("tok-1")

	likes, err := svc.LikeVideo(video.ID, ident)
	if err != nil {
		t.Fatalf("like başarısız: %v", err)
	}
	if likes != 1 {
		t.Fatalf("beklenen 1 like, gelen %d", likes)
	}

	// Aynı oturum tekrar beğenirse sayı değişmemeli.
	likes, err = svc.LikeVideo(video.ID, ident)
	if err != nil {
		t.Fatalf("tekrarlanan like başarısız: %v", err)
	}
	if likes != 1 {
		t.Fatalf("tekrarlanan like sonrası beklenen 1, gelen %d", likes)
	}
}

func TestLikeVideo_DistinctIdentitiesEachCount(t *testing.T) {
	svc, video := newEngagementService(t)

	if _, err := svc.LikeVideo(video.ID, sessionIdent("tok-1")); err != nil {
		t.Fatalf("like başarısız: %v", err)
	}
	if _, err := svc.LikeVideo(video.ID, sessionIdent("tok-2")); err != nil {
		t.Fatalf("like başarısız: %v", err)
	}
	likes, err := svc.LikeVideo(video.ID, userIdent(7, false))
	if err != nil {
		t.Fatalf("like başarısız: %v", err)
	}
	if likes != 3 {
		t.Fatalf("beklenen 3 like, gelen %d", likes)
	}
}

func TestLikeVideo_WithoutIdentityRejected(t *testing.T) {
	svc, video := newEngagementService(t)

	_, err := svc.LikeVideo(video.ID, entities.Identity{})
	assertCode(t, err, "validation_error")
}

func TestUnlikeVideo_WithoutIdentityRejected(t *testing.T) {
	svc, video := newEngagementService(t)

	_, err := svc.UnlikeVideo(video.ID, entities.Identity{})
	assertCode(t, err, "validation_error")
}

func TestUnlikeVideo_RemovesOwnLikeOnly(t *testing.T) {
	svc, video := newEngagementService(t)

	if _, err := svc.LikeVideo(video.ID, sessionIdent("tok-1")); err != nil {
		t.Fatalf("like başarısız: %v", err)
	}
	if _, err := svc.LikeVideo(video.ID, sessionIdent("tok-2")); err != nil {
		t.Fatalf("like başarısız: %v", err)
	}

	likes, err := svc.UnlikeVideo(video.ID, sessionIdent("tok-1"))
	if err != nil {
		t.Fatalf("unlike başarısız: %v", err)
	}
	if likes != 1 {
		t.Fatalf("unlike sonrası beklenen 1, gelen %d", likes)
	}

	// Unlike idempotent: tekrar silmek hata değil.
	likes, err = svc.UnlikeVideo(video.ID, sessionIdent("tok-1"))
	if err != nil {
		t.Fatalf("tekrarlanan unlike başarısız: %v", err)
	}
	if likes != 1 {
		t.Fatalf("tekrarlanan unlike sonrası beklenen 1, gelen %d", likes)
	}
}

func TestLikePost_IdempotentForSameSession(t *testing.T) {
	svc, _ := newEngagementService(t)
	ident := sessionIdent("tok-1")

	if _, err := svc.LikePost(42, ident); err != nil {
		t.Fatalf("post like başarısız: %v", err)
	}
	likes, err := svc.LikePost(42, ident)
	if err != nil {
		t.Fatalf("tekrarlanan post like başarısız: %v", err)
	}
	if likes != 1 {
		t.Fatalf("beklenen 1 like, gelen %d", likes)
	}
}

func TestCreateVideoComment_TrimsContent(t *testing.T) {
	svc, video := newEngagementService(t)

	resp, err := svc.CreateVideoComment(video.ID, "  merhaba  ", sessionIdent("tok-1"))
	if err != nil {
		t.Fatalf("yorum oluşturulamadı: %v", err)
	}
	if resp.Content != "merhaba" {
		t.Fatalf("beklenen içerik %q, gelen %q", "merhaba", resp.Content)
	}
	if !resp.Anonymous {
		t.Fatalf("oturum yorumu anonim işaretlenmeli")
	}

	comments, err := svc.ListVideoComments(video.ID)
	if err != nil {
		t.Fatalf("yorumlar listelenemedi: %v", err)
	}
	if len(comments) != 1 || comments[0].Content != "merhaba" {
		t.Fatalf("beklenmeyen yorum listesi: %+v", comments)
	}
}

func TestCreateVideoComment_RejectsWhitespaceOnly(t *testing.T) {
	svc, video := newEngagementService(t)

	_, err := svc.CreateVideoComment(video.ID, "   \t  ", sessionIdent("tok-1"))
	assertCode(t, err, "validation_error")
}

func TestDeleteVideoComment_AuthorOrAdminOnly(t *testing.T) {
	svc, video := newEngagementService(t)

	comment, err := svc.CreateVideoComment(video.ID, "silinecek", userIdent(1, false))
	if err != nil {
		t.Fatalf("yorum oluşturulamadı: %v", err)
	}

	// Başka bir kullanıcı silemez.
	err = svc.DeleteVideoComment(video.ID, comment.ID, userIdent(2, false))
	assertCode(t, err, "forbidden")

	// Admin her yorumu silebilir.
	if err := svc.DeleteVideoComment(video.ID, comment.ID, userIdent(2, true)); err != nil {
		t.Fatalf("admin silemedi: %v", err)
	}

	comments, err := svc.ListVideoComments(video.ID)
	if err != nil {
		t.Fatalf("yorumlar listelenemedi: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("yorum silinmiş olmalıydı, kalan: %d", len(comments))
	}
}

func TestDeleteVideoComment_WrongVideoIsNotFound(t *testing.T) {
	svc, video := newEngagementService(t)

	comment, err := svc.CreateVideoComment(video.ID, "yorum", userIdent(1, false))
	if err != nil {
		t.Fatalf("yorum oluşturulamadı: %v", err)
	}

	err = svc.DeleteVideoComment(video.ID+1, comment.ID, userIdent(1, true))
	assertCode(t, err, "not_found")
}

func TestPostComments_RoundTrip(t *testing.T) {
	svc, _ := newEngagementService(t)

	if _, err := svc.CreatePostComment(5, "post yorumu", sessionIdent("tok-1")); err != nil {
		t.Fatalf("post yorumu oluşturulamadı: %v", err)
	}
	comments, err := svc.ListPostComments(5)
	if err != nil {
		t.Fatalf("post yorumları listelenemedi: %v", err)
	}
	if len(comments) != 1 || comments[0].Content != "post yorumu" {
		t.Fatalf("beklenmeyen yorum listesi: %+v", comments)
	}
}
