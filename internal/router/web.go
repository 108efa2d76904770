package router

import (
	"context"
	"fmt"

	"github.com/hyperjump/kotae/internal/webpage"
	"github.com/hyperjump/kotae/internal/youtube"
	"github.com/hyperjump/kotae/pkg/utils"
	"go.uber.org/zap"
)

const (
	noYouTubeURLAnswer = "No YouTube URL found in the question."
	noURLAnswer        = "No URL found in the question."
)

// answerYouTube enriches the question with the video's title and description
// and delegates to the general answer service.
func (r *Router) answerYouTube(ctx context.Context, question string) string {
	videoURL := youtube.ExtractURL(question)
	if videoURL == "" {
		return noYouTubeURLAnswer
	}
	meta, err := r.videos.Metadata(ctx, videoURL)
	if err != nil {
		r.logger.Warn("video metadata fetch failed", zap.String("url", videoURL), zap.Error(err))
		return "Error processing YouTube video: " + err.Error()
	}
	prompt := fmt.Sprintf("%s\n\nVideo information:\nTitle: %s\nDescription: %s",
		question, meta.Title, meta.Description)
	return r.llm.Answer(ctx, prompt)
}

// answerWebpage enriches the question with an excerpt of the page's text and
// delegates to the general answer service.
func (r *Router) answerWebpage(ctx context.Context, question string) string {
	pageURL := webpage.ExtractURL(question)
	if pageURL == "" {
		return noURLAnswer
	}
	text, err := r.pages.Text(ctx, pageURL)
	if err != nil {
		r.logger.Warn("page fetch failed", zap.String("url", pageURL), zap.Error(err))
		return "Error processing webpage: " + err.Error()
	}
	excerpt := utils.Excerpt(text, r.cfg.PageExcerptLimit)
	prompt := fmt.Sprintf("%s\n\nWebpage content (excerpt):\n%s", question, excerpt)
	return r.llm.Answer(ctx, prompt)
}
