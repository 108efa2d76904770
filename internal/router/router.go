// Package router dispatches a question to the handler that can answer it,
// based on pattern matching over the question text and the attached file.
package router

import (
	"context"
	"regexp"

	"github.com/hyperjump/kotae/internal/config"
	"github.com/hyperjump/kotae/internal/llm"
	"github.com/hyperjump/kotae/internal/youtube"
	"github.com/hyperjump/kotae/pkg/utils"
	"go.uber.org/zap"
)

// PageFetcher retrieves a web page as plain text.
type PageFetcher interface {
	Text(ctx context.Context, url string) (string, error)
}

// VideoMetadataFetcher retrieves title and description for a video URL.
type VideoMetadataFetcher interface {
	Metadata(ctx context.Context, videoURL string) (*youtube.Metadata, error)
}

// Question sniffing patterns. First match wins; the YouTube check runs
// before the generic URL check, so a question carrying both goes to the
// YouTube handler.
var (
	zipMention     = regexp.MustCompile(`(?i)\.zip\b`)
	csvMention     = regexp.MustCompile(`(?i)\.csv\b`)
	pdfMention     = regexp.MustCompile(`(?i)\.pdf\b`)
	youtubeMention = regexp.MustCompile(`(?i)youtube\.com|youtu\.be`)
	anyURL         = regexp.MustCompile(`(?i)https?://\S+`)
)

// pdfStubAnswer is returned for PDF questions. PDF extraction is
// intentionally not performed; the user is asked to inline the content.
const pdfStubAnswer = "PDF processing requires additional libraries. " +
	"Please extract the relevant information from the PDF and include it in your question."

// Router routes a question to one of five handlers: CSV, PDF, YouTube,
// webpage, or the general LLM lookup.
type Router struct {
	llm    llm.Client
	pages  PageFetcher
	videos VideoMetadataFetcher
	cfg    *config.AnswerConfig
	logger *zap.Logger
}

// New creates a Router with the given dependencies.
func New(
	llmClient llm.Client,
	pages PageFetcher,
	videos VideoMetadataFetcher,
	cfg *config.AnswerConfig,
	logger *zap.Logger,
) *Router {
	return &Router{
		llm:    llmClient,
		pages:  pages,
		videos: videos,
		cfg:    cfg,
		logger: logger,
	}
}

// Route answers the question, consulting the attached file at filePath when
// one was uploaded (empty string otherwise). It never fails: handler errors
// are converted to descriptive answer text.
func (r *Router) Route(ctx context.Context, question, filePath string) string {
	hasFile := filePath != ""
	switch {
	case hasFile && (zipMention.MatchString(question) || csvMention.MatchString(question)):
		r.logQuestion("csv", question)
		return r.answerCSV(ctx, question, filePath)
	case hasFile && pdfMention.MatchString(question):
		r.logQuestion("pdf", question)
		return pdfStubAnswer
	case youtubeMention.MatchString(question):
		r.logQuestion("youtube", question)
		return r.answerYouTube(ctx, question)
	case anyURL.MatchString(question):
		r.logQuestion("webpage", question)
		return r.answerWebpage(ctx, question)
	default:
		r.logQuestion("general", question)
		return r.llm.Answer(ctx, question)
	}
}

func (r *Router) logQuestion(handler, question string) {
	r.logger.Debug("dispatching question",
		zap.String("handler", handler),
		zap.String("question", utils.Truncate(question, 120)),
	)
}
