// ABOUTME: This file implements transcript summarization through the language model
// ABOUTME: Builds the fixed Russian prompt, calls the generator and parses the output
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"video-digest/domain"
)

// minTranscriptRunes is the shortest transcript worth summarizing. Anything
// below it produces noise instead of a summary.
const minTranscriptRunes = 50

const summaryPromptTemplate = `Ты — профессиональный редактор. Твоя задача — сделать краткую выжимку (summary) из транскрипта YouTube видео.

Правила:
1. Язык ответа: Русский (даже если видео на английском).
2. Структура:
   - TL;DR (Одно предложение, суть видео).
   - Основные тезисы (список буллитов).
3. Стиль: Информативный, без воды.
4. Форматирование:
   - TL;DR: "TL;DR: [текст]"
   - Тезисы: "- [текст]" или "* [текст]"

Транскрипт:
%s`

// BuildSummaryPrompt renders the summarization prompt for a transcript.
func BuildSummaryPrompt(transcript string) string {
	return fmt.Sprintf(summaryPromptTemplate, transcript)
}

// SummarizerService implementation.
type summarizer struct {
	generator TextGenerator
	logger    *slog.Logger
}

// NewSummarizer creates a summarizer backed by a text generator.
func NewSummarizer(generator TextGenerator, logger *slog.Logger) SummarizerService {
	return &summarizer{
		generator: generator,
		logger:    logger,
	}
}

// Summarize generates a structured summary for the transcript. Transcripts
// shorter than the minimum are rejected before any model call is made.
func (s *summarizer) Summarize(ctx context.Context, transcript string) (*domain.SummaryResult, error) {
	if utf8.RuneCountInString(strings.TrimSpace(transcript)) < minTranscriptRunes {
		return nil, domain.ErrTranscriptTooShort
	}

	text, err := s.generator.GenerateText(ctx, BuildSummaryPrompt(transcript))
	if err != nil {
		s.logger.ErrorContext(ctx, "summary generation failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyModelResponse
	}

	result := ParseGeneratedText(text)

	s.logger.InfoContext(ctx, "summary generated",
		"sections", len(result.Sections), "has_tldr", result.TLDR != "")

	return result, nil
}
