package server

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hyperjump/kotae/internal/models"
	"go.uber.org/zap"
)

// maxUploadBytes caps the in-memory portion of a multipart upload.
const maxUploadBytes = 32 << 20

const statusUsage = "Send POST requests to / with 'question' and optional 'file'"

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, models.StatusResponse{
		Status: "API is running",
		Usage:  statusUsage,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAsk accepts a question (form field "question", optional upload
// "file"), routes it, and returns the answer. Handler failures come back as
// answer text with status 200; only request-parsing failures produce a 500.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			s.logger.Error("multipart parse failed", zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	question := r.FormValue("question")
	if question == "" {
		s.respondError(w, http.StatusBadRequest, "No question provided")
		return
	}

	filePath, cleanup, err := s.saveUpload(r)
	if err != nil {
		s.logger.Error("upload save failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cleanup()

	s.logger.Debug("ask request", zap.Int("question_len", len(question)), zap.Bool("file", filePath != ""))
	answer := s.router.Route(r.Context(), question, filePath)
	s.respondJSON(w, http.StatusOK, models.AskResponse{Answer: answer})
}

// saveUpload copies the uploaded "file" part, if any, to a temp file whose
// name keeps the original extension so the router can sniff the format. The
// returned cleanup removes the file and is safe to call when nothing was
// uploaded.
func (s *Server) saveUpload(r *http.Request) (string, func(), error) {
	noop := func() {}
	if r.MultipartForm == nil || len(r.MultipartForm.File["file"]) == 0 {
		return "", noop, nil
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", noop, err
	}
	defer file.Close()
	if header.Filename == "" {
		return "", noop, nil
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := filepath.Join(os.TempDir(), "kotae-upload-"+uuid.NewString()+ext)
	out, err := os.Create(path)
	if err != nil {
		return "", noop, err
	}
	cleanup := func() { _ = os.Remove(path) }
	if _, err := io.Copy(out, file); err != nil {
		_ = out.Close()
		cleanup()
		return "", noop, err
	}
	if err := out.Close(); err != nil {
		cleanup()
		return "", noop, err
	}
	return path, cleanup, nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, models.ErrorResponse{Error: message})
}
