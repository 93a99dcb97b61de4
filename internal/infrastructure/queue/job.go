package queue

type JobType string

const (
	JobBackfillMedia JobType = "backfill_media"
)

// Job is an in-process unit of media work, currently only thumbnail/duration
// backfill for rows whose probing failed at upload time.
type Job struct {
	Type    JobType
	VideoID uint
}

// JobHandler is implemented by the video service; the queue package stays
// free of business logic.
type JobHandler interface {
	BackfillMedia(videoID uint) error
}
